package sitecontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
	"lms/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(t.TempDir() + "/lms.db")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return New(st)
}

func TestUpsertTestimonialAppendsAndReplaces(t *testing.T) {
	svc := newService(t)

	first := svc.UpsertTestimonial(models.Testimonial{UserID: "u1", Author: "Ann", Text: "Great course!"})
	assert.NotEmpty(t, first.ID)

	svc.UpsertTestimonial(models.Testimonial{UserID: "u2", Author: "Bob", Text: "Learned a lot."})
	require.Len(t, svc.Testimonials(), 2)

	// Second write from the same user replaces, keeping the original id
	updated := svc.UpsertTestimonial(models.Testimonial{UserID: "u1", Author: "Ann", Text: "Even better now."})
	assert.Equal(t, first.ID, updated.ID)

	testimonials := svc.Testimonials()
	require.Len(t, testimonials, 2)
	assert.Equal(t, "Even better now.", testimonials[0].Text)
}

func TestTestimonialFor(t *testing.T) {
	svc := newService(t)
	svc.UpsertTestimonial(models.Testimonial{UserID: "u1", Author: "Ann", Text: "Great!"})

	got, ok := svc.TestimonialFor("u1")
	require.True(t, ok)
	assert.Equal(t, "Ann", got.Author)

	_, ok = svc.TestimonialFor("nobody")
	assert.False(t, ok)
}

func TestDeleteTestimonial(t *testing.T) {
	svc := newService(t)
	kept := svc.UpsertTestimonial(models.Testimonial{UserID: "u1", Author: "Ann", Text: "Great!"})
	gone := svc.UpsertTestimonial(models.Testimonial{UserID: "u2", Author: "Bob", Text: "Nice."})

	require.True(t, svc.DeleteTestimonial(gone.ID))
	assert.False(t, svc.DeleteTestimonial(gone.ID))

	testimonials := svc.Testimonials()
	require.Len(t, testimonials, 1)
	assert.Equal(t, kept.ID, testimonials[0].ID)
}

func TestNewsLifecycle(t *testing.T) {
	svc := newService(t)

	item := svc.AddNews(models.News{Title: "Launch", Text: "We are live.", Date: "2026-09-01"})
	require.NotEmpty(t, item.ID)

	item.Text = "We are live, for real."
	require.True(t, svc.UpdateNews(item))
	assert.Equal(t, "We are live, for real.", svc.News()[0].Text)

	assert.False(t, svc.UpdateNews(models.News{ID: "missing", Title: "x"}))

	require.True(t, svc.DeleteNews(item.ID))
	assert.False(t, svc.DeleteNews(item.ID))
	assert.Empty(t, svc.News())
}

func TestHeroDefaultsToZeroValue(t *testing.T) {
	svc := newService(t)
	assert.Equal(t, models.HeroContent{}, svc.Hero())

	svc.SetHero(models.HeroContent{Title: "Learn anything", Subtitle: "At your pace", Image: "hero.png"})
	assert.Equal(t, "Learn anything", svc.Hero().Title)
}
