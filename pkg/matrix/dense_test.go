package matrix

import (
	"errors"
	"math"
	"testing"
)

func setElement(s System, i, j int, v float64) {
	s.AddElement(i, j, v)
}

func TestDenseSolveKnownSystem(t *testing.T) {
	// | 2 1 | |x1|   | 4 |
	// | 1 3 | |x2| = | 7 |   => x = (1, 2)
	s := NewDense(2)
	setElement(s, 1, 1, 2)
	setElement(s, 1, 2, 1)
	setElement(s, 2, 1, 1)
	setElement(s, 2, 2, 3)
	s.AddRHS(1, 4)
	s.AddRHS(2, 7)

	if err := s.Solve(); err != nil {
		t.Fatalf("solve: %v", err)
	}
	x := s.Solution()
	if math.Abs(x[1]-1) > 1e-12 || math.Abs(x[2]-2) > 1e-12 {
		t.Errorf("solution = (%v, %v), want (1, 2)", x[1], x[2])
	}
}

func TestDenseGroundStampsAreDropped(t *testing.T) {
	s := NewDense(1)
	// Ground (index 0) entries of a conductance stamp must vanish.
	s.AddElement(0, 0, 1)
	s.AddElement(0, 1, -1)
	s.AddElement(1, 0, -1)
	s.AddElement(1, 1, 1)
	s.AddRHS(0, 99)
	s.AddRHS(1, 2)

	if err := s.Solve(); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if got := s.Solution()[1]; math.Abs(got-2) > 1e-12 {
		t.Errorf("solution = %v, want 2", got)
	}
}

func TestDenseSingularDetection(t *testing.T) {
	t.Run("ZeroRow", func(t *testing.T) {
		s := NewDense(2)
		setElement(s, 1, 1, 1)
		if err := s.Solve(); !errors.Is(err, ErrSingular) {
			t.Errorf("solve = %v, want ErrSingular", err)
		}
	})

	t.Run("DependentRows", func(t *testing.T) {
		s := NewDense(2)
		setElement(s, 1, 1, 1)
		setElement(s, 1, 2, 1)
		setElement(s, 2, 1, 2)
		setElement(s, 2, 2, 2)
		if err := s.Solve(); !errors.Is(err, ErrSingular) {
			t.Errorf("solve = %v, want ErrSingular", err)
		}
	})
}

func TestDenseScaledPivotingHandlesMagnitudeSpread(t *testing.T) {
	// Row one mixes a huge coefficient with a small pivot candidate the
	// way a 10 MOhm voltmeter stamp sits next to a milliohm shunt.
	// Scaled pivoting must still recover x = (1, 1).
	s := NewDense(2)
	setElement(s, 1, 1, 2)
	setElement(s, 1, 2, 1e9)
	setElement(s, 2, 1, 1)
	setElement(s, 2, 2, 1)
	s.AddRHS(1, 2+1e9)
	s.AddRHS(2, 2)

	if err := s.Solve(); err != nil {
		t.Fatalf("solve: %v", err)
	}
	x := s.Solution()
	if math.Abs(x[1]-1) > 1e-6 || math.Abs(x[2]-1) > 1e-6 {
		t.Errorf("solution = (%v, %v), want (1, 1)", x[1], x[2])
	}
}

func TestDenseClearResets(t *testing.T) {
	s := NewDense(1)
	setElement(s, 1, 1, 2)
	s.AddRHS(1, 4)
	if err := s.Solve(); err != nil {
		t.Fatalf("solve: %v", err)
	}

	s.Clear()
	setElement(s, 1, 1, 4)
	s.AddRHS(1, 4)
	if err := s.Solve(); err != nil {
		t.Fatalf("solve after clear: %v", err)
	}
	if got := s.Solution()[1]; math.Abs(got-1) > 1e-12 {
		t.Errorf("solution after clear = %v, want 1", got)
	}
}
