package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/joshua-takyi/eventconnect/internal/models"
	"github.com/joshua-takyi/eventconnect/internal/storage"
	"github.com/joshua-takyi/eventconnect/internal/store"
)

type AuthState string

const (
	AuthLoading       AuthState = "loading"
	AuthAnonymous     AuthState = "anonymous"
	AuthAuthenticated AuthState = "authenticated"
)

// DefaultAuthLatency is the simulated round trip applied to Login and Signup.
const DefaultAuthLatency = 500 * time.Millisecond

// SessionKeyName is appended to the storage prefix to form the key that
// holds the signed-in user.
const SessionKeyName = "user"

// demoAccounts map fixed credentials onto the seeded accounts.
var demoAccounts = map[string]struct {
	password string
	userID   string
}{
	"admin@eventconnect.com":   {password: "admin123", userID: models.SeedAdminID},
	"planner@eventconnect.com": {password: "planner123", userID: models.SeedPlannerID},
}

type AuthOptions struct {
	Prefix string
	// Latency is applied before Login and Signup answer. Zero disables it.
	Latency time.Duration
	// Params tunes argon2id; nil means argon2id.DefaultParams.
	Params *argon2id.Params
	Logger *slog.Logger
}

// AuthService tracks the identity of the current session. It starts in
// AuthLoading until Restore reads the persisted session.
type AuthService struct {
	data    *store.DataStore
	kv      storage.KVStore
	key     string
	latency time.Duration
	params  *argon2id.Params
	logger  *slog.Logger

	mu      sync.RWMutex
	state   AuthState
	current *models.User
}

func NewAuthService(data *store.DataStore, kv storage.KVStore, opts AuthOptions) *AuthService {
	if opts.Prefix == "" {
		opts.Prefix = store.DefaultPrefix
	}
	if opts.Params == nil {
		opts.Params = argon2id.DefaultParams
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &AuthService{
		data:    data,
		kv:      kv,
		key:     storage.Key(opts.Prefix, SessionKeyName),
		latency: opts.Latency,
		params:  opts.Params,
		logger:  opts.Logger,
		state:   AuthLoading,
	}
}

// Restore reads the persisted session user. A missing or unreadable session
// leaves the service anonymous; an unreadable one is also removed.
func (a *AuthService) Restore(ctx context.Context) error {
	raw, err := a.kv.Load(ctx, a.key)
	if err != nil {
		a.setAnonymous()
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		a.setAnonymous()
		a.logger.Warn("Discarding unreadable session", "key", a.key, "error", err)
		if rmErr := a.kv.Remove(ctx, a.key); rmErr != nil {
			return fmt.Errorf("failed to clear session: %w", rmErr)
		}
		return nil
	}

	a.mu.Lock()
	a.current = &u
	a.state = AuthAuthenticated
	a.mu.Unlock()
	return nil
}

func (a *AuthService) setAnonymous() {
	a.mu.Lock()
	a.current = nil
	a.state = AuthAnonymous
	a.mu.Unlock()
}

func (a *AuthService) State() AuthState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *AuthService) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return models.User{}, false
	}
	return *a.current, true
}

// Login checks the credentials and makes the user the current session.
func (a *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}
	u, err := a.Authenticate(email, password)
	if err != nil {
		return models.User{}, err
	}
	if err := a.setCurrent(ctx, u); err != nil {
		return models.User{}, err
	}
	a.logger.Info("User logged in", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Authenticate resolves credentials to a user without touching the session.
// The returned user never carries its password hash.
func (a *AuthService) Authenticate(email, password string) (models.User, error) {
	email = strings.TrimSpace(email)

	if demo, ok := demoAccounts[strings.ToLower(email)]; ok && demo.password == password {
		if u, found := a.data.User(demo.userID); found {
			return u.Public(), nil
		}
		for _, u := range models.DefaultUsers() {
			if u.ID == demo.userID {
				return u, nil
			}
		}
	}

	u, found := a.data.UserByEmail(email)
	if !found || u.PasswordHash == "" {
		return models.User{}, ErrInvalidCredentials
	}
	match, err := argon2id.ComparePasswordAndHash(password, u.PasswordHash)
	if err != nil {
		a.logger.Error("Failed to compare password hash", "user_id", u.ID, "error", err)
		return models.User{}, ErrInvalidCredentials
	}
	if !match {
		return models.User{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}

type SignupRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Name     string      `json:"name" binding:"required"`
	Role     models.Role `json:"role"`
}

// Signup registers a user and signs them in.
func (a *AuthService) Signup(ctx context.Context, req SignupRequest) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}
	u, err := a.Register(ctx, req)
	if err != nil {
		return models.User{}, err
	}
	if err := a.setCurrent(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Register creates an account without touching the session. Role defaults
// to user; planner is allowed for company registration and admin is
// refused. An email already in use leaves the existing account untouched.
func (a *AuthService) Register(ctx context.Context, req SignupRequest) (models.User, error) {
	switch req.Role {
	case "":
		req.Role = models.RoleUser
	case models.RoleUser, models.RolePlanner:
	case models.RoleAdmin:
		return models.User{}, fmt.Errorf("%w: admin accounts cannot sign up", ErrForbidden)
	default:
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if err := models.Validate.Var(strings.TrimSpace(req.Email), "required,email"); err != nil {
		return models.User{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.User{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := models.Validate.Var(req.Password, "required,min=6"); err != nil {
		return models.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	hash, err := argon2id.CreateHash(req.Password, a.params)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u, ok, err := a.data.AddUser(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		PasswordHash: hash,
	})
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrEmailTaken
	}
	a.logger.Info("User signed up", "user_id", u.ID, "role", u.Role)
	return u.Public(), nil
}

// Logout clears the current session.
func (a *AuthService) Logout(ctx context.Context) error {
	a.setAnonymous()
	if err := a.kv.Remove(ctx, a.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// HashPassword is exposed for admin tooling that sets credentials directly.
func (a *AuthService) HashPassword(password string) (string, error) {
	return argon2id.CreateHash(password, a.params)
}

func (a *AuthService) setCurrent(ctx context.Context, u models.User) error {
	a.mu.Lock()
	a.current = &u
	a.state = AuthAuthenticated
	a.mu.Unlock()

	if err := storage.SaveJSON(ctx, a.kv, a.key, u); err != nil {
		a.logger.Error("Failed to persist session", "user_id", u.ID, "error", err)
		return err
	}
	return nil
}

func (a *AuthService) wait(ctx context.Context) error {
	if a.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(a.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
