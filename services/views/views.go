package views

import (
	"lms/models"
	"lms/services/catalog"
	"lms/services/identity"
	"lms/services/sitecontent"
)

// Service computes per-current-user projections from the registry, the
// ledgers, and the site content. Nothing here duplicates storage.
type Service struct {
	identity *identity.Service
	catalog  *catalog.Service
	content  *sitecontent.Service
}

// New builds the derived views service.
func New(id *identity.Service, cat *catalog.Service, content *sitecontent.Service) *Service {
	return &Service{identity: id, catalog: cat, content: content}
}

// MyEnrollments resolves the current user's enrollment set against the
// catalog. Enrollments pointing at deleted courses are skipped.
func (s *Service) MyEnrollments() []models.Course {
	user := s.identity.Current()
	if user == nil {
		return []models.Course{}
	}

	enrolled := []models.Course{}
	for _, courseID := range s.catalog.EnrollmentsFor(user.ID) {
		if course, ok := s.catalog.CourseByID(courseID); ok {
			enrolled = append(enrolled, course)
		}
	}
	return enrolled
}

// MyProgress returns the current user's per-course completion percentages.
func (s *Service) MyProgress() map[string]int {
	user := s.identity.Current()
	if user == nil {
		return map[string]int{}
	}
	return s.catalog.ProgressFor(user.ID)
}

// MyTestimonial returns the testimonial authored by the current user, if any.
func (s *Service) MyTestimonial() (models.Testimonial, bool) {
	user := s.identity.Current()
	if user == nil {
		return models.Testimonial{}, false
	}
	return s.content.TestimonialFor(user.ID)
}
