package tabular

// NameMap assigns dense numeric ids to names in first-seen order. The
// insertion order is significant: classification target ids double as the
// class ids inlined into the optimized format, and reference outputs depend
// on their assignment order.
type NameMap struct {
	ids   map[string]uint32
	names []string
}

func newNameMap() *NameMap {
	return &NameMap{ids: make(map[string]uint32)}
}

// intern returns the id of name, assigning the next dense id on first use.
func (m *NameMap) intern(name string) uint32 {
	if id, ok := m.ids[name]; ok {
		return id
	}

	id := uint32(len(m.names))
	m.ids[name] = id
	m.names = append(m.names, name)

	return id
}

// ID returns the id assigned to name.
func (m *NameMap) ID(name string) (uint32, bool) {
	id, ok := m.ids[name]
	return id, ok
}

// Name returns the name holding the given id, or "" if unassigned.
func (m *NameMap) Name(id uint32) string {
	if int(id) >= len(m.names) {
		return ""
	}

	return m.names[id]
}

// Names returns all names in id order.
func (m *NameMap) Names() []string { return m.names }

// Len returns the number of assigned ids.
func (m *NameMap) Len() int { return len(m.names) }
