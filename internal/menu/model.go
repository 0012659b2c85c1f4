// Package menu holds the in-memory list of boot menu entries.
package menu

// Entry is one row of a menu. Separators carry no label, description or
// command and can never be highlighted.
type Entry struct {
	Position    int
	Label       string
	Description string
	Command     string
	Separator   bool
}

// Selectable reports whether the entry can be highlighted and chosen.
func (e Entry) Selectable() bool { return !e.Separator }

// Model owns the ordered entries of a single menu. Positions are 1-based and
// assigned in append order; they are never reused because entries are only
// ever released all at once by Destroy.
type Model struct {
	entries   []Entry
	destroyed bool
}

func New() *Model {
	return &Model{}
}

// Append adds a selectable entry after the current last one and returns it.
func (m *Model) Append(label, description, command string) Entry {
	return m.push(Entry{
		Label:       label,
		Description: description,
		Command:     command,
	})
}

// AppendSeparator adds a blank, non-selectable row.
func (m *Model) AppendSeparator() Entry {
	return m.push(Entry{Separator: true})
}

func (m *Model) push(e Entry) Entry {
	if m.destroyed {
		panic("menu: append to destroyed model")
	}
	e.Position = m.Count() + 1
	m.entries = append(m.entries, e)
	return e
}

func (m *Model) Count() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// EntryAt returns the entry at the given 1-based position.
func (m *Model) EntryAt(position int) (Entry, bool) {
	if m == nil || position < 1 || position > len(m.entries) {
		return Entry{}, false
	}
	return m.entries[position-1], true
}

// Entries returns a copy of every entry in position order.
func (m *Model) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// FirstSelectable returns the position of the first non-separator entry, or
// 0 when the menu has none.
func (m *Model) FirstSelectable() int {
	if m == nil {
		return 0
	}
	for _, e := range m.entries {
		if e.Selectable() {
			return e.Position
		}
	}
	return 0
}

func (m *Model) HasSelectable() bool {
	return m.FirstSelectable() != 0
}

// Step moves from position by delta (+1 or -1) with wraparound, skipping
// separators. It returns the landed-on position and false when no
// selectable entry exists.
func (m *Model) Step(position, delta int) (int, bool) {
	n := m.Count()
	if n == 0 || !m.HasSelectable() {
		return position, false
	}
	if delta == 0 {
		delta = 1
	}
	cur := position
	for i := 0; i < n; i++ {
		cur += delta
		if cur < 1 {
			cur = n
		} else if cur > n {
			cur = 1
		}
		if m.entries[cur-1].Selectable() {
			return cur, true
		}
	}
	return position, false
}

// Destroy releases every entry. The model must not be appended to afterwards.
func (m *Model) Destroy() {
	if m == nil {
		return
	}
	m.entries = nil
	m.destroyed = true
}

func (m *Model) Destroyed() bool {
	return m != nil && m.destroyed
}
