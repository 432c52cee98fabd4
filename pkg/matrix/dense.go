package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
)

// DenseSystem stores the MNA system in dense form and solves it by
// Gaussian elimination with scaled partial pivoting: pivot candidates
// are normalized by their row's largest coefficient, which keeps a
// 10 MOhm voltmeter stamp from drowning out a milliohm shunt in the
// same system.
type DenseSystem struct {
	size     int
	a        *mat.Dense
	z        *mat.VecDense
	solution []float64
}

func NewDense(size int) *DenseSystem {
	if size < 1 {
		size = 1
	}
	return &DenseSystem{
		size: size,
		a:    mat.NewDense(size, size, nil),
		z:    mat.NewVecDense(size, nil),
	}
}

func (s *DenseSystem) Size() int { return s.size }

func (s *DenseSystem) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > s.size || j > s.size {
		return
	}
	s.a.Set(i-1, j-1, s.a.At(i-1, j-1)+value)
}

func (s *DenseSystem) AddRHS(i int, value float64) {
	if i <= 0 || i > s.size {
		return
	}
	s.z.SetVec(i-1, s.z.AtVec(i-1)+value)
}

func (s *DenseSystem) Clear() {
	s.a.Zero()
	s.z.Zero()
	s.solution = nil
}

func (s *DenseSystem) Solution() []float64 { return s.solution }

// Solve eliminates a working copy of the system. A pivot whose scaled
// magnitude falls below the epsilon signals ErrSingular; the stamped
// system itself is left untouched.
func (s *DenseSystem) Solve() error {
	n := s.size
	a := make([][]float64, n)
	b := make([]float64, n)
	scale := make([]float64, n)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			a[i][j] = s.a.At(i, j)
			if v := math.Abs(a[i][j]); v > scale[i] {
				scale[i] = v
			}
		}
		b[i] = s.z.AtVec(i)
		perm[i] = i
		if scale[i] == 0 {
			return ErrSingular
		}
	}

	for k := 0; k < n; k++ {
		best := k
		bestVal := math.Abs(a[perm[k]][k]) / scale[perm[k]]
		for r := k + 1; r < n; r++ {
			if v := math.Abs(a[perm[r]][k]) / scale[perm[r]]; v > bestVal {
				best, bestVal = r, v
			}
		}
		if bestVal < consts.PivotEpsilon {
			return ErrSingular
		}
		perm[k], perm[best] = perm[best], perm[k]

		pk := perm[k]
		for r := k + 1; r < n; r++ {
			pr := perm[r]
			f := a[pr][k] / a[pk][k]
			if f == 0 {
				continue
			}
			a[pr][k] = 0
			for j := k + 1; j < n; j++ {
				a[pr][j] -= f * a[pk][j]
			}
			b[pr] -= f * b[pk]
		}
	}

	x := make([]float64, n)
	for k := n - 1; k >= 0; k-- {
		pk := perm[k]
		sum := b[pk]
		for j := k + 1; j < n; j++ {
			sum -= a[pk][j] * x[j]
		}
		x[k] = sum / a[pk][k]
	}

	s.solution = make([]float64, n+1)
	copy(s.solution[1:], x)
	return nil
}
