package store

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"taskhub/models"
	"taskhub/validator"
)

// UserStore keeps users keyed by their exact (case-sensitive) email.
type UserStore struct {
	mu       sync.RWMutex
	users    map[string]models.User
	validate *validator.Validator
}

// NewUserStore creates an empty user store. A nil validator gets a default one.
func NewUserStore(v *validator.Validator) *UserStore {
	if v == nil {
		v = validator.New()
	}
	return &UserStore{
		users:    make(map[string]models.User),
		validate: v,
	}
}

// Create inserts user unless its email is blank (KindInvalid) or already
// taken (KindConflict).
func (s *UserStore) Create(user models.User) Result[models.User] {
	if err := s.validate.Validate(&user); err != nil {
		return invalid[models.User](err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return conflict[models.User]()
	}

	s.users[user.Email] = user
	return created(user)
}

// Get looks up a user by exact email.
func (s *UserStore) Get(email string) Result[models.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return notFound[models.User]()
	}
	return found(user)
}

// List returns a copy of every user, ordered by email.
func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := slices.AppendSeq(make([]models.User, 0, len(s.users)), maps.Values(s.users))
	slices.SortFunc(users, func(a, b models.User) int {
		return strings.Compare(a.Email, b.Email)
	})
	return users
}

// Update replaces the user stored under email. When user.Email differs from
// email the record moves to the new key in one step; the old key does not
// have to exist for that to succeed.
func (s *UserStore) Update(email string, user models.User) Result[models.User] {
	if err := s.validate.Validate(&user); err != nil {
		return invalid[models.User](err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if user.Email != email {
		if owner, taken := s.users[user.Email]; taken && owner.Email != email {
			return invalid[models.User](MsgEmailInUse)
		}
		delete(s.users, email)
		s.users[user.Email] = user
		return updated(user)
	}

	if _, exists := s.users[email]; !exists {
		return notFound[models.User]()
	}

	s.users[user.Email] = user
	return updated(user)
}

// Delete removes the user and reports whether it was present.
func (s *UserStore) Delete(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; !exists {
		return false
	}
	delete(s.users, email)
	return true
}

// Reset drops every user.
func (s *UserStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.users)
}
