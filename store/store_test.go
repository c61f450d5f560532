package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tags []string `json:"tags"`
}

func openStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func TestReadMissingKeyReturnsDefault(t *testing.T) {
	st, _ := openStore(t)

	got := Read(st, "missing", profile{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestWriteReadRoundTrip(t *testing.T) {
	st, _ := openStore(t)

	want := profile{ID: "p1", Name: "Ann", Tags: []string{"a", "b"}}
	Write(st, "profile", want)

	got := Read(st, "profile", profile{})
	assert.Equal(t, want, got)
}

func TestRoundTripLedgers(t *testing.T) {
	st, _ := openStore(t)

	enrollments := map[string][]string{"u1": {"c1", "c2"}, "u2": {"c1"}}
	Write(st, "enrollments", enrollments)
	assert.Equal(t, enrollments, Read(st, "enrollments", map[string][]string{}))

	progress := map[string]map[string]int{"u1": {"c1": 40}}
	Write(st, "progress", progress)
	assert.Equal(t, progress, Read(st, "progress", map[string]map[string]int{}))
}

func TestWriteReplacesPreviousValue(t *testing.T) {
	st, _ := openStore(t)

	Write(st, "profile", profile{Name: "first"})
	Write(st, "profile", profile{Name: "second"})

	got := Read(st, "profile", profile{})
	assert.Equal(t, "second", got.Name)
}

func TestReadUndecodableValueReturnsDefault(t *testing.T) {
	st, _ := openStore(t)

	// A JSON string cannot decode into a struct
	Write(st, "profile", "not a profile")

	got := Read(st, "profile", profile{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestValuesSurviveReopen(t *testing.T) {
	st, path := openStore(t)

	Write(st, "profile", profile{ID: "p1", Name: "Ann"})
	require.NoError(t, st.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got := Read(reopened, "profile", profile{})
	assert.Equal(t, "Ann", got.Name)
}
