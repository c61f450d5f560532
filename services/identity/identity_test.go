package identity

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
	"lms/store"
)

const (
	adminEmail    = "admin@lms.local"
	adminPassword = "secret"
)

func newService(t *testing.T) (*Service, *store.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return New(st, adminEmail, adminPassword), st, path
}

func TestBootstrapAdminSeeded(t *testing.T) {
	svc, _, _ := newService(t)

	users := svc.Users()
	require.Len(t, users, 1)
	assert.Equal(t, adminEmail, users[0].Email)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Nil(t, svc.Current())
}

func TestSignUp(t *testing.T) {
	svc, _, _ := newService(t)

	ok := svc.SignUp("a@x.com", "pw", "Ann")
	require.True(t, ok)

	users := svc.Users()
	assert.Len(t, users, 2)

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Ann", session.Username)
	assert.Equal(t, models.RoleUser, session.Role)
	assert.NotEmpty(t, session.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	before := svc.Users()

	ok := svc.SignUp("a@x.com", "other", "Impostor")
	assert.False(t, ok)
	assert.Equal(t, before, svc.Users())
}

func TestSignInBootstrapPair(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignIn(adminEmail, adminPassword))

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestSignInRegisteredUser(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	svc.SignOut()
	require.Nil(t, svc.Current())

	require.True(t, svc.SignIn("a@x.com", "pw"))
	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Ann", session.Username)
}

func TestSignInNoMatchLeavesSessionUnchanged(t *testing.T) {
	svc, _, _ := newService(t)

	assert.False(t, svc.SignIn("nobody@x.com", "pw"))
	assert.Nil(t, svc.Current())

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	assert.False(t, svc.SignIn("a@x.com", "wrong"))

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Ann", session.Username)
}

func TestSignInWithProvider(t *testing.T) {
	svc, _, _ := newService(t)

	user := svc.SignInWithProvider()

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, user.ID, session.ID)

	// The synthetic user is not added to the registry
	assert.Len(t, svc.Users(), 1)
}

func TestSignOut(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	svc.SignOut()
	assert.Nil(t, svc.Current())

	// Signing out twice is fine
	svc.SignOut()
	assert.Nil(t, svc.Current())
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	require.True(t, svc.UpdateProfile(ProfileUpdate{Username: "Annie", Bio: "Hi there"}))

	session := svc.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Annie", session.Username)
	assert.Equal(t, "Hi there", session.Bio)

	// Registry entry is updated too
	for _, u := range svc.Users() {
		if u.ID == session.ID {
			assert.Equal(t, "Annie", u.Username)
			assert.Equal(t, "Hi there", u.Bio)
		}
	}
}

func TestUpdateProfileNoSession(t *testing.T) {
	svc, _, _ := newService(t)

	assert.False(t, svc.UpdateProfile(ProfileUpdate{Username: "Nobody"}))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	assert.False(t, svc.ChangePassword("wrong", "newpw"))

	// Stored secret is unchanged
	svc.SignOut()
	assert.True(t, svc.SignIn("a@x.com", "pw"))
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	require.True(t, svc.ChangePassword("pw", "newpw"))

	svc.SignOut()
	assert.False(t, svc.SignIn("a@x.com", "pw"))
	assert.True(t, svc.SignIn("a@x.com", "newpw"))
}

func TestChangePasswordNoSession(t *testing.T) {
	svc, _, _ := newService(t)

	assert.False(t, svc.ChangePassword("pw", "newpw"))
}

func TestUpdateUserDetails(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	target := svc.Current().ID

	require.True(t, svc.UpdateUserDetails(target, UserUpdate{Role: models.RoleAdmin, Username: "Annie"}))

	for _, u := range svc.Users() {
		if u.ID == target {
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.Equal(t, "Annie", u.Username)
		}
	}

	assert.False(t, svc.UpdateUserDetails("missing-id", UserUpdate{Username: "X"}))
}

func TestDeleteUser(t *testing.T) {
	svc, _, _ := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	target := svc.Current().ID

	require.True(t, svc.DeleteUser(target))
	assert.Len(t, svc.Users(), 1)

	assert.False(t, svc.DeleteUser(target))
}

func TestSessionSurvivesReopen(t *testing.T) {
	svc, st, path := newService(t)

	require.True(t, svc.SignUp("a@x.com", "pw", "Ann"))
	require.NoError(t, st.Close())

	reopened, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	fresh := New(reopened, adminEmail, adminPassword)
	session := fresh.Current()
	require.NotNil(t, session)
	assert.Equal(t, "Ann", session.Username)
	assert.Len(t, fresh.Users(), 2)
}
