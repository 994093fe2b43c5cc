// Package history implements linear undo and redo over full deep copies of a
// scene's layer list.
package history

import "github.com/opd-ai/creographics/internal/scene"

// DefaultCapacity is the number of snapshots kept before the oldest is
// evicted.
const DefaultCapacity = 50

// Manager records snapshots of a scene and rewinds it. Style and zoom are not
// part of a snapshot.
//
// Manager is not safe for concurrent use.
type Manager struct {
	capacity  int
	snapshots [][]*scene.Layer
	index     int
}

// New returns an empty manager keeping at most capacity snapshots. A
// capacity below 1 selects DefaultCapacity.
func New(capacity int) *Manager {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity, index: -1}
}

// Capacity returns the maximum number of snapshots.
func (m *Manager) Capacity() int {
	return m.capacity
}

// Len returns the number of stored snapshots.
func (m *Manager) Len() int {
	return len(m.snapshots)
}

// Index returns the position of the snapshot matching the current state, or
// -1 when nothing was recorded.
func (m *Manager) Index() int {
	return m.index
}

// CanUndo reports whether Undo would change the scene.
func (m *Manager) CanUndo() bool {
	return m.index > 0
}

// CanRedo reports whether Redo would change the scene.
func (m *Manager) CanRedo() bool {
	return m.index >= 0 && m.index < len(m.snapshots)-1
}

// Record discards any redo branch and appends a deep copy of s. When the
// capacity is exceeded the oldest snapshot is dropped and the index keeps
// pointing at the same logical state.
func (m *Manager) Record(s *scene.Scene) {
	m.snapshots = append(m.snapshots[:m.index+1], s.CloneLayers())
	m.index++
	if len(m.snapshots) > m.capacity {
		m.snapshots[0] = nil
		m.snapshots = m.snapshots[1:]
		m.index--
	}
}

// Undo restores the previous snapshot into s. It reports false, leaving s
// untouched, at the first snapshot or when the history is empty.
func (m *Manager) Undo(s *scene.Scene) bool {
	if !m.CanUndo() {
		return false
	}
	m.index--
	m.restore(s)
	return true
}

// Redo restores the next snapshot into s. It reports false, leaving s
// untouched, at the last snapshot.
func (m *Manager) Redo(s *scene.Scene) bool {
	if !m.CanRedo() {
		return false
	}
	m.index++
	m.restore(s)
	return true
}

// Reset drops every snapshot and records s as the new baseline.
func (m *Manager) Reset(s *scene.Scene) {
	clear(m.snapshots)
	m.snapshots = m.snapshots[:0]
	m.index = -1
	m.Record(s)
}

// restore copies the snapshot again so later edits never reach the stored
// state.
func (m *Manager) restore(s *scene.Scene) {
	layers := m.snapshots[m.index]
	copied := make([]*scene.Layer, len(layers))
	for i, l := range layers {
		copied[i] = l.Clone()
	}
	// Snapshots always hold at least one layer, so this cannot fail.
	_ = s.ReplaceLayers(copied)
}
