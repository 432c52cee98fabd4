// Package engine computes the DC steady state of a schematic: it
// partitions the element/wire graph into independent subcircuits,
// assembles each one into a Modified Nodal Analysis system, iterates
// the LED on/off fixed point and maps the solution back onto the
// elements. The computation is pure: identical inputs produce identical
// outputs, and electrical nonsense (singular systems, meters misused on
// live circuits) resolves locally into zeroed or NaN readings, never an
// error to the caller.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/circuit"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// Engine runs solves with a fixed configuration. The zero-configured
// engine traces nothing and uses the dense solver.
type Engine struct {
	log             zerolog.Logger
	sparse          bool
	sparseThreshold int
	maxIterations   int
}

type Option func(*Engine)

// WithLogger enables the structured solve trace.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithSparse forces the sparse LU backend for every subcircuit.
func WithSparse() Option {
	return func(e *Engine) { e.sparse = true }
}

// WithSparseThreshold switches to the sparse backend for systems of at
// least n unknowns. Zero disables the switch.
func WithSparseThreshold(n int) Option {
	return func(e *Engine) { e.sparseThreshold = n }
}

// WithMaxLEDIterations overrides the LED fixed-point iteration cap.
func WithMaxLEDIterations(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxIterations = n
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		log:           zerolog.Nop(),
		maxIterations: consts.MaxLEDIterations,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve runs the default engine over the full graph.
func Solve(elements []circuit.Element, wires []circuit.Wire) []circuit.Element {
	return New().Solve(elements, wires)
}

// Solve computes every element's voltage, current, power and meter
// measurement. Elements outside any solvable subcircuit come back with
// a zeroed computed record.
func (e *Engine) Solve(elements []circuit.Element, wires []circuit.Wire) []circuit.Element {
	out := make([]circuit.Element, len(elements))
	copy(out, elements)
	for i := range out {
		out[i].Computed = circuit.Computed{}
	}

	var electrical []*circuit.Element
	for i := range out {
		if out[i].Type.Electrical() {
			electrical = append(electrical, &out[i])
		}
	}

	groups, orphans := circuit.Partition(electrical, wires)
	e.log.Debug().
		Int("elements", len(elements)).
		Int("subcircuits", len(groups)).
		Int("orphans", len(orphans)).
		Msg("schematic partitioned")

	for i := range groups {
		if err := e.solveGroup(i, &groups[i]); err != nil {
			// Physically nonsensical configuration: this subcircuit has
			// no sensible reading, the others are unaffected.
			for _, el := range groups[i].Elements {
				el.Computed = circuit.Computed{}
			}
			e.log.Debug().Int("subcircuit", i).Err(err).Msg("subcircuit unsolvable, results zeroed")
		}
	}
	return out
}

func (e *Engine) solveGroup(id int, group *circuit.Subcircuit) error {
	asm := newAssembly(group)
	size := asm.size()
	e.log.Debug().
		Int("subcircuit", id).
		Int("nodes", asm.n).
		Int("sources", asm.m).
		Int("leds", len(asm.leds)).
		Bool("powered", asm.powered).
		Msg("subcircuit assembled")

	if size == 0 || len(asm.devices) == 0 {
		// Nothing resolvable; every element keeps its zeroed record.
		return nil
	}

	sys, err := e.newSystem(size)
	if err != nil {
		return err
	}

	x, err := e.converge(sys, asm)
	if err != nil {
		return err
	}
	asm.extract(x)
	return nil
}

func (e *Engine) newSystem(size int) (matrix.System, error) {
	if e.sparse || (e.sparseThreshold > 0 && size >= e.sparseThreshold) {
		return matrix.NewSparse(size)
	}
	return matrix.NewDense(size), nil
}

// converge runs the LED fixed point: every LED starts non-conducting,
// and the system is restamped and resolved until no conduction flag
// flips or the iteration cap is hit, in which case the last solution is
// accepted as-is.
func (e *Engine) converge(sys matrix.System, asm *assembly) ([]float64, error) {
	var x []float64
	for iter := 0; iter < e.maxIterations; iter++ {
		sys.Clear()
		for _, dev := range asm.devices {
			if err := dev.Stamp(sys); err != nil {
				return nil, err
			}
		}
		if err := sys.Solve(); err != nil {
			return nil, err
		}
		x = sys.Solution()

		changed := false
		for _, led := range asm.leds {
			forward := nodeVoltage(x, led.Anode()) - nodeVoltage(x, led.Cathode())
			if led.UpdateConduction(forward) {
				changed = true
			}
		}
		if !changed {
			e.log.Debug().Int("iterations", iter+1).Msg("led states converged")
			return x, nil
		}
	}
	// Oscillating LED topologies freeze on the capped state.
	e.log.Debug().Int("iterations", e.maxIterations).Msg("led iteration cap hit, last solution accepted")
	return x, nil
}

func nodeVoltage(x []float64, idx int) float64 {
	if idx <= 0 {
		return 0
	}
	return x[idx]
}
