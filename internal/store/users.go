package store

import (
	"context"
	"errors"
	"strings"

	"github.com/joshua-takyi/eventconnect/internal/models"
)

// ErrEmailInUse is returned when an update would give a user the email of
// another user.
var ErrEmailInUse = errors.New("email already in use")

// AddUser stores a new user unless another user already has the same email
// (compared case-insensitively). ok is false in that case and nothing is
// written.
func (s *DataStore) AddUser(ctx context.Context, u models.User) (models.User, bool, error) {
	u.ID = s.newID("user")
	u.CreatedAt = s.now()
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if err := validate("user", u); err != nil {
		return models.User{}, false, err
	}

	ok := true
	err := s.mutate(func() ([]Change, error) {
		if _, taken := s.userByEmailLocked(u.Email); taken {
			ok = false
			return nil, nil
		}
		s.users.add(u)
		return s.stamp(created(CollectionUsers, u.ID)...), s.persist(ctx, s.users)
	})
	if !ok {
		return models.User{}, false, err
	}
	return u, true, err
}

// UpdateUser merges patch into the user. The password hash is only changed
// through SetPasswordHash. An email held by another user is refused with
// ErrEmailInUse and nothing is written.
func (s *DataStore) UpdateUser(ctx context.Context, id string, patch models.Patch) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		i := s.users.index(id)
		if i < 0 {
			return nil, nil
		}
		merged, err := models.ApplyPatch(s.users.items[i], patch, "passwordHash")
		if err != nil {
			return nil, err
		}
		merged.Email = strings.TrimSpace(merged.Email)
		if other, taken := s.userByEmailLocked(merged.Email); taken && other.ID != id {
			return nil, ErrEmailInUse
		}
		found = true
		s.users.set(i, merged)
		return s.stamp(updated(CollectionUsers, id)...), s.persist(ctx, s.users)
	})
	return found, err
}

func (s *DataStore) SetPasswordHash(ctx context.Context, id, hash string) (bool, error) {
	found := false
	err := s.mutate(func() ([]Change, error) {
		i := s.users.index(id)
		if i < 0 {
			return nil, nil
		}
		found = true
		u := s.users.items[i]
		u.PasswordHash = hash
		s.users.set(i, u)
		return s.stamp(updated(CollectionUsers, id)...), s.persist(ctx, s.users)
	})
	return found, err
}

// DeleteUser removes only the user record.
func (s *DataStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	return deleteRecord(ctx, s, s.users, CollectionUsers, id)
}

func (s *DataStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.all()
}

func (s *DataStore) User(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users.get(id)
}

func (s *DataStore) UserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userByEmailLocked(email)
}

func (s *DataStore) userByEmailLocked(email string) (models.User, bool) {
	email = strings.TrimSpace(email)
	return s.users.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}
