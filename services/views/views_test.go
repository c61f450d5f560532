package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
	"lms/services/catalog"
	"lms/services/identity"
	"lms/services/sitecontent"
	"lms/store"
)

func newStack(t *testing.T) (*Service, *identity.Service, *catalog.Service, *sitecontent.Service) {
	t.Helper()
	st, err := store.Open(t.TempDir() + "/lms.db")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	id := identity.New(st, "admin@lms.local", "secret")
	cat := catalog.New(st)
	content := sitecontent.New(st)
	return New(id, cat, content), id, cat, content
}

func signUp(t *testing.T, id *identity.Service, email string) models.User {
	t.Helper()
	require.True(t, id.SignUp(email, "pw", "Ann"))
	user := id.Current()
	require.NotNil(t, user)
	return *user
}

func TestMyEnrollmentsResolvesCourses(t *testing.T) {
	svc, id, cat, _ := newStack(t)
	user := signUp(t, id, "ann@x.com")

	goCourse := cat.AddCourse(models.Course{Title: "Go Basics"})
	cat.AddCourse(models.Course{Title: "Rust Basics"})
	cat.Enroll(user.ID, goCourse.ID)

	enrolled := svc.MyEnrollments()
	require.Len(t, enrolled, 1)
	assert.Equal(t, "Go Basics", enrolled[0].Title)
}

func TestMyEnrollmentsSkipsDeletedCourses(t *testing.T) {
	svc, id, cat, _ := newStack(t)
	user := signUp(t, id, "ann@x.com")

	course := cat.AddCourse(models.Course{Title: "Go Basics"})
	cat.Enroll(user.ID, course.ID)
	require.True(t, cat.DeleteCourse(course.ID))

	assert.Empty(t, svc.MyEnrollments())
}

func TestMyProgress(t *testing.T) {
	svc, id, cat, _ := newStack(t)
	user := signUp(t, id, "ann@x.com")

	course := cat.AddCourse(models.Course{Title: "Go Basics"})
	cat.Enroll(user.ID, course.ID)
	cat.UpdateProgress(user.ID, course.ID, 40)

	assert.Equal(t, map[string]int{course.ID: 40}, svc.MyProgress())
}

func TestMyTestimonial(t *testing.T) {
	svc, id, _, content := newStack(t)
	user := signUp(t, id, "ann@x.com")

	_, ok := svc.MyTestimonial()
	assert.False(t, ok)

	content.UpsertTestimonial(models.Testimonial{UserID: user.ID, Author: user.Username, Text: "Great!"})

	got, ok := svc.MyTestimonial()
	require.True(t, ok)
	assert.Equal(t, "Great!", got.Text)
}

func TestViewsAreEmptyWithoutSession(t *testing.T) {
	svc, id, cat, _ := newStack(t)
	user := signUp(t, id, "ann@x.com")

	course := cat.AddCourse(models.Course{Title: "Go Basics"})
	cat.Enroll(user.ID, course.ID)
	cat.UpdateProgress(user.ID, course.ID, 40)
	id.SignOut()

	assert.Empty(t, svc.MyEnrollments())
	assert.Empty(t, svc.MyProgress())
	_, ok := svc.MyTestimonial()
	assert.False(t, ok)
}
