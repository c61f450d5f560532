package catalog

import (
	"sync"

	"github.com/google/uuid"

	"lms/models"
	"lms/store"
)

const (
	coursesKey     = "courses"
	enrollmentsKey = "enrollments"
	progressKey    = "progress"
)

// Service owns the course catalog and the per-user enrollment and progress
// ledgers. Each mutation is a read-modify-write through the store.
type Service struct {
	store *store.Store
	mu    sync.Mutex
}

// New builds the catalog service over the given store.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Courses returns the full catalog.
func (s *Service) Courses() []models.Course {
	return store.Read(s.store, coursesKey, []models.Course{})
}

// CourseByID looks a course up by id.
func (s *Service) CourseByID(id string) (models.Course, bool) {
	for _, c := range s.Courses() {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// AddCourse appends a course to the catalog, assigning a fresh id when none
// is set. The id is immutable thereafter.
func (s *Service) AddCourse(course models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.Content == nil {
		course.Content = []models.ContentBlock{}
	}

	courses := store.Read(s.store, coursesKey, []models.Course{})
	courses = append(courses, course)
	store.Write(s.store, coursesKey, courses)
	return course
}

// UpdateCourse replaces the full entity matched by id. Partial-field patches
// are the caller's responsibility to merge first. Returns false when the id
// is not in the catalog.
func (s *Service) UpdateCourse(course models.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := store.Read(s.store, coursesKey, []models.Course{})
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = course
			store.Write(s.store, coursesKey, courses)
			return true
		}
	}
	return false
}

// DeleteCourse removes a course by id. Returns false when the id is not in
// the catalog.
func (s *Service) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := store.Read(s.store, coursesKey, []models.Course{})
	kept := courses[:0]
	found := false
	for _, c := range courses {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return false
	}
	store.Write(s.store, coursesKey, kept)
	return true
}

// Enroll adds courseID to the user's enrollment set. Enrolling twice is a
// no-op, not an error, and course existence is not validated.
func (s *Service) Enroll(userID, courseID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrollments := store.Read(s.store, enrollmentsKey, map[string][]string{})
	for _, id := range enrollments[userID] {
		if id == courseID {
			return
		}
	}
	enrollments[userID] = append(enrollments[userID], courseID)
	store.Write(s.store, enrollmentsKey, enrollments)
}

// UpdateProgress upserts the completion percentage for the (user, course)
// pair. Last write wins. Values are clamped to [0,100].
func (s *Service) UpdateProgress(userID, courseID string, percent int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	progress := store.Read(s.store, progressKey, map[string]map[string]int{})
	if progress[userID] == nil {
		progress[userID] = map[string]int{}
	}
	progress[userID][courseID] = percent
	store.Write(s.store, progressKey, progress)
}

// EnrollmentsFor returns the course ids the user is enrolled in.
func (s *Service) EnrollmentsFor(userID string) []string {
	enrollments := store.Read(s.store, enrollmentsKey, map[string][]string{})
	return enrollments[userID]
}

// ProgressFor returns the user's per-course completion percentages.
func (s *Service) ProgressFor(userID string) map[string]int {
	progress := store.Read(s.store, progressKey, map[string]map[string]int{})
	if progress[userID] == nil {
		return map[string]int{}
	}
	return progress[userID]
}
