package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// SparseSystem backs the MNA system with a sparse LU factorization.
// Breakout-variant controllers push systems to dozens of unknowns,
// where the sparse path pays off; results match the dense solver.
type SparseSystem struct {
	size     int
	matrix   *sparse.Matrix
	rhs      []float64
	solution []float64
}

func NewSparse(size int) (*SparseSystem, error) {
	if size < 1 {
		size = 1
	}
	config := &sparse.Configuration{
		Real:           true,
		Complex:        false,
		Expandable:     true,
		Translate:      false,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
		PrinterWidth:   140,
	}

	m, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %w", err)
	}

	s := &SparseSystem{
		size:   size,
		matrix: m,
		rhs:    make([]float64, size+1), // 1-based indexing
	}
	// Pre-touch every element so Clear/restamp cycles reuse storage.
	for i := 1; i <= size; i++ {
		for j := 1; j <= size; j++ {
			s.matrix.GetElement(int64(i), int64(j))
		}
	}
	return s, nil
}

func (s *SparseSystem) Size() int { return s.size }

func (s *SparseSystem) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > s.size || j > s.size {
		return
	}
	s.matrix.GetElement(int64(i), int64(j)).Real += value
}

func (s *SparseSystem) AddRHS(i int, value float64) {
	if i <= 0 || i > s.size {
		return
	}
	s.rhs[i] += value
}

func (s *SparseSystem) Clear() {
	s.matrix.Clear()
	for i := range s.rhs {
		s.rhs[i] = 0
	}
	s.solution = nil
}

func (s *SparseSystem) Solve() error {
	if err := s.matrix.Factor(); err != nil {
		return fmt.Errorf("%w: factor: %v", ErrSingular, err)
	}
	sol, err := s.matrix.Solve(s.rhs)
	if err != nil {
		return fmt.Errorf("%w: solve: %v", ErrSingular, err)
	}
	s.solution = sol
	return nil
}

func (s *SparseSystem) Solution() []float64 { return s.solution }
