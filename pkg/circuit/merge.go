package circuit

// Merger is a union-find structure over node ids. Two terminals share a
// representative iff they are electrically identical under ideal-wire
// assumptions.
type Merger struct {
	parent map[string]string
}

func NewMerger() *Merger {
	return &Merger{parent: make(map[string]string)}
}

// Add registers a node id as its own representative.
func (m *Merger) Add(id string) {
	if _, ok := m.parent[id]; !ok {
		m.parent[id] = id
	}
}

// Has reports whether the node id participates in the circuit.
func (m *Merger) Has(id string) bool {
	_, ok := m.parent[id]
	return ok
}

// Find returns the representative of id, or "" for unregistered ids.
// Lookups compress the walked path.
func (m *Merger) Find(id string) string {
	p, ok := m.parent[id]
	if !ok {
		return ""
	}
	if p == id {
		return id
	}
	root := m.Find(p)
	m.parent[id] = root
	return root
}

// Union joins the classes of a and b. Both must be registered.
func (m *Merger) Union(a, b string) {
	ra, rb := m.Find(a), m.Find(b)
	if ra == "" || rb == "" || ra == rb {
		return
	}
	m.parent[rb] = ra
}

// Resolve builds the effective-node map for one subcircuit. Registered
// are: both endpoints of every wire whose endpoints exist, every
// terminal of every non-controller element, and for controller elements
// with at least one wired terminal the wired terminals plus the 3.3V and
// GND rail groups. Rail terminals of one controller are merged into a
// single electrical node per rail; unwired controller pins stay
// invisible to the solver.
func Resolve(elements []*Element, wires []Wire) *Merger {
	valid := make(map[string]bool)
	for _, e := range elements {
		for _, n := range e.Nodes {
			valid[n.ID] = true
		}
	}
	wired := make(map[string]bool)
	for _, w := range wires {
		if valid[w.FromNodeID] && valid[w.ToNodeID] {
			wired[w.FromNodeID] = true
			wired[w.ToNodeID] = true
		}
	}

	m := NewMerger()
	for _, e := range elements {
		if !e.Type.IsController() {
			for _, n := range e.Nodes {
				m.Add(n.ID)
			}
			continue
		}

		hasWired := false
		for _, n := range e.Nodes {
			if wired[n.ID] {
				hasWired = true
				m.Add(n.ID)
			}
		}
		if !hasWired {
			continue
		}
		// The board's supply rails exist even without an explicit rail
		// wire; a pin driven high sources current from them.
		mergeRail(m, e, PlaceholderRail)
		mergeRail(m, e, PlaceholderGround)
	}

	for _, w := range wires {
		if m.Has(w.FromNodeID) && m.Has(w.ToNodeID) {
			m.Union(w.FromNodeID, w.ToNodeID)
		}
	}
	return m
}

// mergeRail registers every terminal carrying the given rail placeholder
// and joins them into one class.
func mergeRail(m *Merger, e *Element, placeholder string) {
	var first string
	for _, n := range e.Nodes {
		if n.Placeholder != placeholder {
			continue
		}
		m.Add(n.ID)
		if first == "" {
			first = n.ID
		} else {
			m.Union(first, n.ID)
		}
	}
}
