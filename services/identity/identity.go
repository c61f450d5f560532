package identity

import (
	"sync"

	"github.com/google/uuid"

	"lms/models"
	"lms/store"
)

const (
	usersKey   = "users"
	sessionKey = "session"
)

// Service owns the registered user set and the session pointer. Every
// mutation persists the full registry and session through the store.
type Service struct {
	store *store.Store
	mu    sync.Mutex

	// bootstrap admin pair, checked before the registry on sign-in
	adminEmail    string
	adminPassword string
}

// ProfileUpdate carries optional profile fields; empty fields are skipped.
type ProfileUpdate struct {
	Username     string `json:"username"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

// UserUpdate carries optional fields for admin-side user management.
type UserUpdate struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
	Role         string `json:"role"`
}

// New builds the registry service and seeds the bootstrap admin on first run.
func New(st *store.Store, adminEmail, adminPassword string) *Service {
	s := &Service{store: st, adminEmail: adminEmail, adminPassword: adminPassword}

	users := store.Read(st, usersKey, []models.User{})
	if len(users) == 0 {
		users = append(users, models.User{
			ID:       uuid.NewString(),
			Email:    adminEmail,
			Username: "Administrator",
			Password: adminPassword,
			Role:     models.RoleAdmin,
		})
		store.Write(st, usersKey, users)
	}

	return s
}

// Current returns the session user, or nil when signed out.
func (s *Service) Current() *models.User {
	return store.Read[*models.User](s.store, sessionKey, nil)
}

// Users returns the registered user set.
func (s *Service) Users() []models.User {
	return store.Read(s.store, usersKey, []models.User{})
}

// SignIn checks the bootstrap admin pair first, then the registry by exact
// (email, password) match. On success the session is set to the matched user.
func (s *Service) SignIn(email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := store.Read(s.store, usersKey, []models.User{})

	if email == s.adminEmail && password == s.adminPassword {
		for _, u := range users {
			if u.Email == email {
				s.setSession(&u)
				return true
			}
		}
		// Registry lost its admin entry; reseed it
		admin := models.User{
			ID:       uuid.NewString(),
			Email:    s.adminEmail,
			Username: "Administrator",
			Password: s.adminPassword,
			Role:     models.RoleAdmin,
		}
		users = append(users, admin)
		store.Write(s.store, usersKey, users)
		s.setSession(&admin)
		return true
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			s.setSession(&u)
			return true
		}
	}
	return false
}

// SignInWithProvider establishes a session for a synthetic external-identity
// user without touching the registry.
func (s *Service) SignInWithProvider() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       uuid.NewString(),
		Email:    "user@provider.auth",
		Username: "Learner",
		Role:     models.RoleUser,
	}
	s.setSession(&user)
	return user
}

// SignUp registers a new USER account and signs it in. Fails on a duplicate
// email with no mutation.
func (s *Service) SignUp(email, password, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := store.Read(s.store, usersKey, []models.User{})
	for _, u := range users {
		if u.Email == email {
			return false
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Username: username,
		Password: password,
		Role:     models.RoleUser,
	}
	users = append(users, user)
	store.Write(s.store, usersKey, users)
	s.setSession(&user)
	return true
}

// SignOut clears the session unconditionally.
func (s *Service) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setSession(nil)
}

// UpdateProfile applies the given fields to the session user and its registry
// entry. No-op without a session.
func (s *Service) UpdateProfile(fields ProfileUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Current()
	if current == nil {
		return false
	}

	if fields.Username != "" {
		current.Username = fields.Username
	}
	if fields.Bio != "" {
		current.Bio = fields.Bio
	}
	if fields.ProfileImage != "" {
		current.ProfileImage = fields.ProfileImage
	}

	users := store.Read(s.store, usersKey, []models.User{})
	for i := range users {
		if users[i].ID == current.ID {
			users[i] = *current
		}
	}
	store.Write(s.store, usersKey, users)
	s.setSession(current)
	return true
}

// ChangePassword replaces the stored secret when current matches it. Fails
// without a session or on a wrong current secret, leaving state unchanged.
func (s *Service) ChangePassword(current, next string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.Current()
	if user == nil || user.Password != current {
		return false
	}

	user.Password = next
	users := store.Read(s.store, usersKey, []models.User{})
	for i := range users {
		if users[i].ID == user.ID {
			users[i].Password = next
		}
	}
	store.Write(s.store, usersKey, users)
	s.setSession(user)
	return true
}

// UpdateUserDetails mutates a registry entry by id. Callers are responsible
// for gating this to ADMIN. Returns false when the id is not registered.
func (s *Service) UpdateUserDetails(id string, fields UserUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := store.Read(s.store, usersKey, []models.User{})
	found := false
	for i := range users {
		if users[i].ID != id {
			continue
		}
		found = true
		if fields.Username != "" {
			users[i].Username = fields.Username
		}
		if fields.Email != "" {
			users[i].Email = fields.Email
		}
		if fields.Bio != "" {
			users[i].Bio = fields.Bio
		}
		if fields.ProfileImage != "" {
			users[i].ProfileImage = fields.ProfileImage
		}
		if fields.Role != "" {
			users[i].Role = fields.Role
		}
	}
	if !found {
		return false
	}
	store.Write(s.store, usersKey, users)
	return true
}

// DeleteUser removes a registry entry by id. Callers are responsible for
// gating this to ADMIN. Returns false when the id is not registered.
func (s *Service) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := store.Read(s.store, usersKey, []models.User{})
	kept := users[:0]
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return false
	}
	store.Write(s.store, usersKey, kept)
	return true
}

func (s *Service) setSession(user *models.User) {
	store.Write(s.store, sessionKey, user)
}
