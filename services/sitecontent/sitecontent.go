package sitecontent

import (
	"sync"

	"github.com/google/uuid"

	"lms/models"
	"lms/store"
)

const (
	testimonialsKey = "testimonials"
	newsKey         = "news"
	heroKey         = "heroContent"
)

// Service owns the auxiliary landing-page content. It goes through the same
// store adapter contract as the core ledgers.
type Service struct {
	store *store.Store
	mu    sync.Mutex
}

// New builds the site content service over the given store.
func New(st *store.Store) *Service {
	return &Service{store: st}
}

// Testimonials returns all testimonials.
func (s *Service) Testimonials() []models.Testimonial {
	return store.Read(s.store, testimonialsKey, []models.Testimonial{})
}

// TestimonialFor returns the testimonial authored by the given user, if any.
func (s *Service) TestimonialFor(userID string) (models.Testimonial, bool) {
	for _, t := range s.Testimonials() {
		if t.UserID == userID {
			return t, true
		}
	}
	return models.Testimonial{}, false
}

// UpsertTestimonial replaces the user's existing testimonial or appends a new
// one. A user authors at most one testimonial.
func (s *Service) UpsertTestimonial(t models.Testimonial) models.Testimonial {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonials := store.Read(s.store, testimonialsKey, []models.Testimonial{})
	for i := range testimonials {
		if testimonials[i].UserID == t.UserID {
			t.ID = testimonials[i].ID
			testimonials[i] = t
			store.Write(s.store, testimonialsKey, testimonials)
			return t
		}
	}
	t.ID = uuid.NewString()
	testimonials = append(testimonials, t)
	store.Write(s.store, testimonialsKey, testimonials)
	return t
}

// DeleteTestimonial removes a testimonial by id. Returns false when the id
// is unknown.
func (s *Service) DeleteTestimonial(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonials := store.Read(s.store, testimonialsKey, []models.Testimonial{})
	kept := testimonials[:0]
	found := false
	for _, t := range testimonials {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return false
	}
	store.Write(s.store, testimonialsKey, kept)
	return true
}

// News returns all news items.
func (s *Service) News() []models.News {
	return store.Read(s.store, newsKey, []models.News{})
}

// AddNews appends a news item, assigning a fresh id.
func (s *Service) AddNews(n models.News) models.News {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.NewString()
	news := store.Read(s.store, newsKey, []models.News{})
	news = append(news, n)
	store.Write(s.store, newsKey, news)
	return n
}

// UpdateNews replaces the item matched by id. Returns false when unknown.
func (s *Service) UpdateNews(n models.News) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	news := store.Read(s.store, newsKey, []models.News{})
	for i := range news {
		if news[i].ID == n.ID {
			news[i] = n
			store.Write(s.store, newsKey, news)
			return true
		}
	}
	return false
}

// DeleteNews removes an item by id. Returns false when unknown.
func (s *Service) DeleteNews(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	news := store.Read(s.store, newsKey, []models.News{})
	kept := news[:0]
	found := false
	for _, n := range news {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	if !found {
		return false
	}
	store.Write(s.store, newsKey, kept)
	return true
}

// Hero returns the hero section content.
func (s *Service) Hero() models.HeroContent {
	return store.Read(s.store, heroKey, models.HeroContent{})
}

// SetHero replaces the hero section content.
func (s *Service) SetHero(h models.HeroContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store.Write(s.store, heroKey, h)
}
