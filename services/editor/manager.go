package editor

import (
	"sync"

	"lms/models"
)

// Manager tracks the open draft per course. At most one draft may be open
// for a course at a time; concurrent edits from two openings are undefined
// and therefore refused.
type Manager struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewManager builds an empty draft manager.
func NewManager() *Manager {
	return &Manager{drafts: map[string]*Draft{}}
}

// Open starts an edit session for the course. Returns false while another
// draft is already open for the same course.
func (m *Manager) Open(course models.Course) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, open := m.drafts[course.ID]; open {
		return nil, false
	}
	draft := OpenDraft(course)
	m.drafts[course.ID] = draft
	return draft, true
}

// Get returns the open draft for the course, if any.
func (m *Manager) Get(courseID string) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, open := m.drafts[courseID]
	return draft, open
}

// Close ends the edit session for the course. Used by both commit and
// discard; discarding leaves the stored course untouched.
func (m *Manager) Close(courseID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, courseID)
}
