package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAssignsSequentialPositions(t *testing.T) {
	m := New()
	require.Equal(t, 0, m.Count())

	a := m.Append("Linux", "Boot Linux", "boot linux-cmd")
	s := m.AppendSeparator()
	b := m.Append("Reset", "Reboot board", "reset")

	assert.Equal(t, 1, a.Position)
	assert.Equal(t, 2, s.Position)
	assert.Equal(t, 3, b.Position)
	assert.Equal(t, 3, m.Count())

	for i, e := range m.Entries() {
		assert.Equal(t, i+1, e.Position)
	}
}

func TestAppendSeparatorIsBlank(t *testing.T) {
	m := New()
	s := m.AppendSeparator()
	assert.True(t, s.Separator)
	assert.False(t, s.Selectable())
	assert.Empty(t, s.Label)
	assert.Empty(t, s.Description)
	assert.Empty(t, s.Command)
}

func TestEntryAtOutOfRange(t *testing.T) {
	m := New()
	m.Append("a", "", "")

	_, ok := m.EntryAt(0)
	assert.False(t, ok)
	_, ok = m.EntryAt(2)
	assert.False(t, ok)

	e, ok := m.EntryAt(1)
	require.True(t, ok)
	assert.Equal(t, "a", e.Label)
}

func TestEntriesReturnsCopy(t *testing.T) {
	m := New()
	m.Append("a", "", "cmd")
	entries := m.Entries()
	entries[0].Command = "changed"

	e, _ := m.EntryAt(1)
	assert.Equal(t, "cmd", e.Command)
}

func TestFirstSelectableSkipsLeadingSeparators(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.FirstSelectable())

	m.AppendSeparator()
	m.AppendSeparator()
	assert.Equal(t, 0, m.FirstSelectable())
	assert.False(t, m.HasSelectable())

	m.Append("Only", "desc", "run cmd")
	assert.Equal(t, 3, m.FirstSelectable())
	assert.True(t, m.HasSelectable())
}

func TestStepWrapsAndSkipsSeparators(t *testing.T) {
	m := New()
	m.Append("one", "", "")
	m.AppendSeparator()
	m.Append("three", "", "")
	m.AppendSeparator()

	tests := []struct {
		name  string
		from  int
		delta int
		want  int
	}{
		{"down skips separator", 1, 1, 3},
		{"down wraps past trailing separator", 3, 1, 1},
		{"up wraps to last selectable", 1, -1, 3},
		{"up skips separator", 3, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Step(tt.from, tt.delta)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStepNeverLandsOnSeparator(t *testing.T) {
	m := New()
	m.AppendSeparator()
	m.Append("a", "", "")
	m.AppendSeparator()
	m.AppendSeparator()
	m.Append("b", "", "")
	m.AppendSeparator()

	pos := m.FirstSelectable()
	for i := 0; i < 20; i++ {
		delta := 1
		if i%3 == 0 {
			delta = -1
		}
		var ok bool
		pos, ok = m.Step(pos, delta)
		require.True(t, ok)
		e, found := m.EntryAt(pos)
		require.True(t, found)
		require.False(t, e.Separator, "landed on separator at %d", pos)
	}
}

func TestStepSingleSelectableStaysPut(t *testing.T) {
	m := New()
	m.AppendSeparator()
	m.Append("only", "", "")
	m.AppendSeparator()

	got, ok := m.Step(2, 1)
	require.True(t, ok)
	assert.Equal(t, 2, got)
	got, ok = m.Step(2, -1)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestStepWithoutSelectableEntries(t *testing.T) {
	m := New()
	_, ok := m.Step(1, 1)
	assert.False(t, ok)

	m.AppendSeparator()
	got, ok := m.Step(1, -1)
	assert.False(t, ok)
	assert.Equal(t, 1, got)
}

func TestDestroyReleasesEntries(t *testing.T) {
	m := New()
	m.Append("a", "", "")
	m.Destroy()

	assert.True(t, m.Destroyed())
	assert.Equal(t, 0, m.Count())
	assert.Panics(t, func() { m.Append("b", "", "") })
}

func TestNilModelIsEmpty(t *testing.T) {
	var m *Model
	assert.Equal(t, 0, m.Count())
	assert.Nil(t, m.Entries())
	assert.False(t, m.Destroyed())
	m.Destroy()
}
