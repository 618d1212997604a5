package store

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	usersKey   = "users"
	sessionKey = "currentUser"
)

var (
	ErrForbidden      = errors.New("operation not permitted")
	ErrNotFound       = errors.New("no such user")
	ErrUsernameTaken  = errors.New("username already exists")
	ErrBadCredentials = errors.New("invalid username or password")
)

// IdentityStore owns the user list and the current session. Credentials
// are matched by exact string equality on username and password hash;
// there is no lockout or rate limiting at this layer.
type IdentityStore struct {
	users   *Cell[[]User]
	session *Cell[*Session]
	logger  *zap.Logger

	// serializes every operation that reads a cell and writes it back,
	// including the ones that touch both cells; without it two AddUser
	// calls could both pass the uniqueness check, and two updates could
	// clone the same base list and drop one edit
	mu sync.Mutex
}

func NewIdentityStore(db *gorm.DB, logger *zap.Logger) *IdentityStore {
	return &IdentityStore{
		users:   NewCell(db, logger, usersKey, DefaultUsers()),
		session: NewCell[*Session](db, logger, sessionKey, nil),
		logger:  logger,
	}
}

// Users returns a copy of the user list.
func (s *IdentityStore) Users() []User {
	return slices.Clone(s.users.Get())
}

// Current returns the logged-in user, or nil.
func (s *IdentityStore) Current() *User {
	sess := s.session.Get()
	if sess == nil {
		return nil
	}
	u := sess.User
	return &u
}

// UserForToken resolves a bearer token to the session's user, or nil
// when the token does not match the active session.
func (s *IdentityStore) UserForToken(token string) *User {
	sess := s.session.Get()
	if sess == nil || token == "" || sess.Token != token {
		return nil
	}
	u := sess.User
	return &u
}

// Login matches username and password by exact equality. On success the
// session is replaced and the new bearer token returned; on failure the
// session is left untouched.
func (s *IdentityStore) Login(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users.Get() {
		if u.Username == username && u.PasswordHash == password {
			token, err := newSessionToken()
			if err != nil {
				return "", err
			}
			s.session.Set(&Session{Token: token, User: u})
			s.logger.Info("user logged in", zap.String("username", username))
			return token, nil
		}
	}
	return "", ErrBadCredentials
}

// Logout clears the session unconditionally. Idempotent.
func (s *IdentityStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Set(nil)
}

// AddUser appends candidate to the user list. Usernames are unique,
// case-sensitively; a duplicate leaves the list unchanged. An empty ID
// is assigned a fresh one.
func (s *IdentityStore) AddUser(actor *User, candidate User) error {
	if !CanManageUsers(actor) {
		return ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.users.Get()
	for _, u := range users {
		if u.Username == candidate.Username {
			return ErrUsernameTaken
		}
	}
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	s.users.Set(append(slices.Clone(users), candidate))
	return nil
}

// UpdateUser replaces the entry whose ID matches updated.ID. When the
// active session refers to that user, its snapshot is refreshed in the
// same operation so permission changes take effect immediately.
func (s *IdentityStore) UpdateUser(actor *User, updated User) error {
	if !CanManageUsers(actor) {
		return ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := slices.Clone(s.users.Get())
	idx := slices.IndexFunc(users, func(u User) bool { return u.ID == updated.ID })
	if idx < 0 {
		return ErrNotFound
	}
	users[idx] = updated
	s.users.Set(users)

	if sess := s.session.Get(); sess != nil && sess.User.ID == updated.ID {
		s.session.Set(&Session{Token: sess.Token, User: updated})
	}
	return nil
}

// DeleteUser removes the entry with the given ID. When the session
// refers to that user it is cleared first, so the store never holds a
// session pointing at a user that no longer exists.
func (s *IdentityStore) DeleteUser(actor *User, id string) error {
	if !CanManageUsers(actor) {
		return ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess := s.session.Get(); sess != nil && sess.User.ID == id {
		s.session.Set(nil)
	}

	users := s.users.Get()
	next := slices.DeleteFunc(slices.Clone(users), func(u User) bool { return u.ID == id })
	if len(next) == len(users) {
		return ErrNotFound
	}
	s.users.Set(next)
	return nil
}

// UpdatePassword replaces the password hash of the user with the given
// ID. The session snapshot is refreshed when it refers to that user, so
// a later Login comparison stays consistent.
func (s *IdentityStore) UpdatePassword(actor *User, id, newHash string) error {
	if !CanChangePassword(actor, id) {
		return ErrForbidden
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := slices.Clone(s.users.Get())
	idx := slices.IndexFunc(users, func(u User) bool { return u.ID == id })
	if idx < 0 {
		return ErrNotFound
	}
	users[idx].PasswordHash = newHash
	s.users.Set(users)

	if sess := s.session.Get(); sess != nil && sess.User.ID == id {
		s.session.Set(&Session{Token: sess.Token, User: users[idx]})
	}
	return nil
}

func newSessionToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}
