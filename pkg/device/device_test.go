package device

import (
	"math"
	"testing"
)

// recorder captures stamps for assertions without solving anything.
type recorder struct {
	size    int
	entries map[[2]int]float64
	rhs     map[int]float64
}

func newRecorder(size int) *recorder {
	return &recorder{size: size, entries: map[[2]int]float64{}, rhs: map[int]float64{}}
}

func (r *recorder) Size() int { return r.size }

func (r *recorder) AddElement(i, j int, value float64) {
	if i <= 0 || j <= 0 || i > r.size || j > r.size {
		return
	}
	r.entries[[2]int{i, j}] += value
}

func (r *recorder) AddRHS(i int, value float64) {
	if i <= 0 || i > r.size {
		return
	}
	r.rhs[i] += value
}

func (r *recorder) Clear() {
	r.entries = map[[2]int]float64{}
	r.rhs = map[int]float64{}
}

func (r *recorder) Solve() error        { return nil }
func (r *recorder) Solution() []float64 { return nil }

func (r *recorder) at(t *testing.T, i, j int, want float64) {
	t.Helper()
	if got := r.entries[[2]int{i, j}]; math.Abs(got-want) > 1e-12 {
		t.Errorf("A[%d][%d] = %v, want %v", i, j, got, want)
	}
}

func TestResistorStamp(t *testing.T) {
	m := newRecorder(2)
	if err := NewResistor("r1", 1, 2, 10).Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	m.at(t, 1, 1, 0.1)
	m.at(t, 2, 2, 0.1)
	m.at(t, 1, 2, -0.1)
	m.at(t, 2, 1, -0.1)
}

func TestResistorStampAgainstGround(t *testing.T) {
	m := newRecorder(1)
	if err := NewResistor("r1", 1, 0, 10).Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	m.at(t, 1, 1, 0.1)
	if len(m.entries) != 1 {
		t.Errorf("ground stamps leaked: %v", m.entries)
	}
}

func TestResistorClampsDegenerateValue(t *testing.T) {
	r := NewResistor("r1", 1, 2, 0)
	if r.Resistance() <= 0 {
		t.Errorf("resistance = %v, want clamped above zero", r.Resistance())
	}
}

func TestVoltageSourceStamp(t *testing.T) {
	m := newRecorder(3)
	if err := NewVoltageSource("bat", 1, 2, 3, 9, 1.45).Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	m.at(t, 1, 3, -1)
	m.at(t, 2, 3, 1)
	m.at(t, 3, 1, 1)
	m.at(t, 3, 2, -1)
	m.at(t, 3, 3, 1.45)
	if got := m.rhs[3]; got != 9 {
		t.Errorf("rhs[3] = %v, want 9", got)
	}
}

func TestLEDForwardVoltages(t *testing.T) {
	cases := map[string]float64{
		"red":     1.8,
		"orange":  1.8,
		"yellow":  2.0,
		"green":   2.1,
		"blue":    2.8,
		"white":   2.8,
		"fuchsia": 1.8, // unknown colors fall back to red
	}
	for color, want := range cases {
		if got := ForwardVoltage(color); got != want {
			t.Errorf("ForwardVoltage(%q) = %v, want %v", color, got, want)
		}
	}
}

func TestLEDConduction(t *testing.T) {
	l := NewLED("d1", 1, 2, "red")

	m := newRecorder(2)
	if err := l.Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	if len(m.entries) != 0 {
		t.Errorf("non-conducting LED stamped %v, want nothing", m.entries)
	}

	if changed := l.UpdateConduction(1.8); !changed || !l.Conducting() {
		t.Error("forward exactly at threshold must switch the LED on")
	}
	if changed := l.UpdateConduction(1.8); changed {
		t.Error("unchanged state must not report a flip")
	}
	if changed := l.UpdateConduction(1.79); !changed || l.Conducting() {
		t.Error("forward below threshold must switch the LED off")
	}

	l.UpdateConduction(2.5)
	m.Clear()
	if err := l.Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	m.at(t, 1, 1, 0.01)
	m.at(t, 1, 2, -0.01)
}

func TestPotentiometerStamp(t *testing.T) {
	m := newRecorder(3)
	p := NewPotentiometer("pot", 1, 2, 3, 100, 0.25)
	if err := p.Stamp(m); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	// legA = 75 Ohm (A to wiper), legB = 25 Ohm (wiper to B).
	m.at(t, 1, 1, 1.0/75)
	m.at(t, 3, 3, 1.0/25)
	m.at(t, 2, 2, 1.0/75+1.0/25)
}

func TestPotentiometerEndStopsAreClamped(t *testing.T) {
	p := NewPotentiometer("pot", 1, 2, 3, 100, 1)
	if p.LegA() <= 0 || math.IsInf(1/p.LegA(), 0) {
		t.Errorf("legA at end stop = %v, want clamped", p.LegA())
	}
	if p.LegB() != 100 {
		t.Errorf("legB = %v, want 100", p.LegB())
	}
}
