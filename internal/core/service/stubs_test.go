package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users       map[string]*domain.User
	nextID      int
	findByIDErr error
	findIDCalls []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	c := cloneUser(user)
	if c.ID == "" {
		c.ID = fmt.Sprintf("%d", r.nextID)
		r.nextID++
	}
	r.users[c.ID] = cloneUser(c)
	return c, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.findIDCalls = append(r.findIDCalls, id)
	if r.findByIDErr != nil {
		return nil, r.findByIDErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// In-memory identity cache
// ---------------------------------------------------------------------------

type stubCache struct {
	users       map[string]*domain.User
	getErr      error
	invalidated []string
}

func newStubCache() *stubCache {
	return &stubCache{users: make(map[string]*domain.User)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.User, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	u, ok := c.users[id]
	return cloneUser(u), ok, nil
}

func (c *stubCache) Set(_ context.Context, user *domain.User) error {
	c.users[user.ID] = cloneUser(user)
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, id string) error {
	c.invalidated = append(c.invalidated, id)
	delete(c.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Recorder and clock
// ---------------------------------------------------------------------------

type stubRecorder struct {
	logins        []string
	verifications []string
}

func (r *stubRecorder) LoginAttempt(result string)      { r.logins = append(r.logins, result) }
func (r *stubRecorder) TokenVerification(result string) { r.verifications = append(r.verifications, result) }

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var errStoreDown = errors.New("store unavailable")
