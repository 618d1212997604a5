package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func adminActor(t *testing.T, s *IdentityStore) *User {
	t.Helper()
	_, err := s.Login("admin", "admin")
	require.NoError(t, err)
	return s.Current()
}

func TestIdentityStore_SeedsDefaultUsers(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())

	users := s.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "editor", users[1].Username)
	assert.Nil(t, s.Current())
}

func TestIdentityStore_Login(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())

	t.Run("succeeds on exact match", func(t *testing.T) {
		token, err := s.Login("admin", "admin")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		require.NotNil(t, s.Current())
		assert.Equal(t, "admin", s.Current().Username)
	})

	t.Run("wrong password leaves session unchanged", func(t *testing.T) {
		s.Logout()
		_, err := s.Login("admin", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)
		assert.Nil(t, s.Current())
	})

	t.Run("username match is case-sensitive", func(t *testing.T) {
		_, err := s.Login("Admin", "admin")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}

func TestIdentityStore_UserForToken(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())

	token, err := s.Login("editor", "editor")
	require.NoError(t, err)

	require.NotNil(t, s.UserForToken(token))
	assert.Equal(t, "editor", s.UserForToken(token).Username)
	assert.Nil(t, s.UserForToken("bogus"))
	assert.Nil(t, s.UserForToken(""))

	s.Logout()
	assert.Nil(t, s.UserForToken(token))
}

func TestIdentityStore_AddUser(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())
	admin := adminActor(t, s)

	t.Run("duplicate username rejected", func(t *testing.T) {
		err := s.AddUser(admin, User{Username: "editor", PasswordHash: "x"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
		assert.Len(t, s.Users(), 2)
	})

	t.Run("appends and assigns an id", func(t *testing.T) {
		require.NoError(t, s.AddUser(admin, User{Username: "casey", PasswordHash: "pw", Permissions: []Permission{PermEditor}}))
		users := s.Users()
		require.Len(t, users, 3)
		assert.Equal(t, "casey", users[2].Username)
		assert.NotEmpty(t, users[2].ID)
	})

	t.Run("forbidden without admin permission", func(t *testing.T) {
		editor := User{ID: "user-2", Permissions: []Permission{PermEditor}}
		err := s.AddUser(&editor, User{Username: "mallory"})
		assert.ErrorIs(t, err, ErrForbidden)

		err = s.AddUser(nil, User{Username: "mallory"})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestIdentityStore_UpdateUserRefreshesSession(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())
	admin := adminActor(t, s)

	updated := *admin
	updated.Username = "root"
	updated.Permissions = []Permission{PermAdmin, PermEditor}
	require.NoError(t, s.UpdateUser(admin, updated))

	require.NotNil(t, s.Current())
	assert.Equal(t, "root", s.Current().Username)

	err := s.UpdateUser(&updated, User{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIdentityStore_DeleteUserClearsOwnSession(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())
	admin := adminActor(t, s)

	require.NoError(t, s.DeleteUser(admin, admin.ID))

	// never a dangling session reference
	assert.Nil(t, s.Current())
	assert.Len(t, s.Users(), 1)
}

func TestIdentityStore_DeleteOtherUserKeepsSession(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())
	admin := adminActor(t, s)

	require.NoError(t, s.DeleteUser(admin, "user-2"))
	require.NotNil(t, s.Current())
	assert.Equal(t, "admin", s.Current().Username)

	err := s.DeleteUser(admin, "user-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIdentityStore_UpdatePassword(t *testing.T) {
	db, _ := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())
	admin := adminActor(t, s)

	t.Run("admin sets another user's password, login works after", func(t *testing.T) {
		require.NoError(t, s.UpdatePassword(admin, "user-2", "newpass"))
		s.Logout()

		_, err := s.Login("editor", "editor")
		assert.ErrorIs(t, err, ErrBadCredentials)

		_, err = s.Login("editor", "newpass")
		require.NoError(t, err)
	})

	t.Run("self change allowed for editor", func(t *testing.T) {
		editor := s.Current()
		require.NotNil(t, editor)
		require.NoError(t, s.UpdatePassword(editor, editor.ID, "again"))

		// session snapshot refreshed in the same operation
		assert.Equal(t, "again", s.Current().PasswordHash)
	})

	t.Run("editor may not change someone else's", func(t *testing.T) {
		editor := s.Current()
		err := s.UpdatePassword(editor, "user-1", "stolen")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		err := s.UpdatePassword(admin, "missing", "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIdentityStore_SessionSurvivesReload(t *testing.T) {
	db, path := testDB(t)
	s := NewIdentityStore(db, zap.NewNop())

	token, err := s.Login("admin", "admin")
	require.NoError(t, err)

	Close(db, zap.NewNop())
	db2, err := Open(path)
	require.NoError(t, err)

	s2 := NewIdentityStore(db2, zap.NewNop())
	require.NotNil(t, s2.Current())
	assert.Equal(t, "admin", s2.Current().Username)
	assert.NotNil(t, s2.UserForToken(token))
}

func TestIdentityStore_ConcurrentAddUser(t *testing.T) {
	t.Run("same username admitted exactly once", func(t *testing.T) {
		db, _ := testDB(t)
		s := NewIdentityStore(db, zap.NewNop())
		admin := adminActor(t, s)

		const workers = 20
		var added atomic.Int32
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				err := s.AddUser(admin, User{Username: "intern", PasswordHash: "pw", Permissions: []Permission{PermEditor}})
				if err == nil {
					added.Add(1)
					return
				}
				assert.True(t, errors.Is(err, ErrUsernameTaken))
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), added.Load())
		count := 0
		for _, u := range s.Users() {
			if u.Username == "intern" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("distinct usernames all land", func(t *testing.T) {
		db, _ := testDB(t)
		s := NewIdentityStore(db, zap.NewNop())
		admin := adminActor(t, s)
		seeded := len(s.Users())

		const workers = 20
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				err := s.AddUser(admin, User{Username: fmt.Sprintf("staff-%d", i), PasswordHash: "pw"})
				assert.NoError(t, err)
			}(i)
		}
		close(start)
		wg.Wait()

		assert.Len(t, s.Users(), seeded+workers)
	})
}
