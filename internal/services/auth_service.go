package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"eventmap/internal/models"
	"eventmap/internal/session"
)

// AuthService owns the application-level session: an opaque locally-generated
// marker plus the serialized user record, both kept in the local key-value
// store. The marker is only a session flag, not a verifiable security token;
// the credential check itself is delegated to the remote users table.
type AuthService struct {
	users  models.UserRepo
	store  *session.Store
	logger *slog.Logger
}

func NewAuthService(users models.UserRepo, store *session.Store, logger *slog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		store:  store,
		logger: logger,
	}
}

// Init loads the persisted session, clearing it when the stored user record
// is corrupted. Returns the restored user, or nil when no session exists.
func (s *AuthService) Init(ctx context.Context) *models.User {
	token, hasToken, err := s.store.Get(ctx, session.KeyToken)
	if err != nil {
		s.logger.Error("failed to read session token", "error", err)
		return nil
	}
	raw, hasUser, err := s.store.Get(ctx, session.KeyUser)
	if err != nil {
		s.logger.Error("failed to read session user", "error", err)
		return nil
	}
	if !hasToken || !hasUser || token == "" {
		return nil
	}

	user := new(models.User)
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		s.logger.Warn("stored user record is corrupted, clearing session", "error", err)
		s.Logout(ctx)
		return nil
	}
	return user
}

// Login checks credentials against the remote store and, on success, writes a
// fresh session and returns its marker. Returns nil on any failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string) {
	user, err := s.users.AuthenticateUser(ctx, email, password)
	if err != nil {
		s.logger.Info("login failed", "email", email, "error", err)
		return nil, ""
	}
	token, err := s.saveSession(ctx, user)
	if err != nil {
		s.logger.Error("failed to persist session", "error", err)
		return nil, ""
	}
	return user, token
}

// Register creates the remote user and opens a session for it.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	user, err := s.users.CreateUser(ctx, email, password, name)
	if err != nil {
		s.logger.Error("registration failed", "email", email, "error", err)
		return nil, "", err
	}
	token, err := s.saveSession(ctx, user)
	if err != nil {
		s.logger.Error("failed to persist session", "error", err)
	}
	return user, token, nil
}

// Logout tears the session down by clearing both stored keys. The remote
// store needs no call.
func (s *AuthService) Logout(ctx context.Context) {
	if err := s.store.Delete(ctx, session.KeyToken); err != nil {
		s.logger.Error("failed to clear session token", "error", err)
	}
	if err := s.store.Delete(ctx, session.KeyUser); err != nil {
		s.logger.Error("failed to clear session user", "error", err)
	}
}

// Authenticate resolves a presented session marker to the stored user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, bool) {
	if token == "" {
		return nil, false
	}
	stored, ok, err := s.store.Get(ctx, session.KeyToken)
	if err != nil {
		s.logger.Error("failed to read session token", "error", err)
		return nil, false
	}
	if !ok || stored != token {
		return nil, false
	}
	user := s.CurrentUser(ctx)
	if user == nil {
		return nil, false
	}
	return user, true
}

// CurrentUser returns the user of the active session, or nil.
func (s *AuthService) CurrentUser(ctx context.Context) *models.User {
	raw, ok, err := s.store.Get(ctx, session.KeyUser)
	if err != nil || !ok {
		return nil
	}
	user := new(models.User)
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil
	}
	return user
}

// ProfileUpdate patches the locally stored user record. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
}

// UpdateProfile rewrites the stored user record with the patch applied.
// Last-writer-wins; there is no remote write for profile data.
func (s *AuthService) UpdateProfile(ctx context.Context, patch ProfileUpdate) *models.User {
	user := s.CurrentUser(ctx)
	if user == nil {
		return nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if err := s.storeUser(ctx, user); err != nil {
		s.logger.Error("failed to store updated user", "error", err)
		return nil
	}
	return user
}

// Notifications returns the notification preference: the per-user flag when a
// session exists, otherwise the anonymous fallback key.
func (s *AuthService) Notifications(ctx context.Context) bool {
	if user := s.CurrentUser(ctx); user != nil && user.Notifications != nil {
		return *user.Notifications
	}
	val, ok, err := s.store.Get(ctx, session.KeyNotifications)
	if err != nil || !ok {
		return false
	}
	return val == "true"
}

// SetNotifications persists the preference on the user record when logged in,
// falling back to the anonymous key otherwise.
func (s *AuthService) SetNotifications(ctx context.Context, enabled bool) error {
	if user := s.CurrentUser(ctx); user != nil {
		user.Notifications = &enabled
		return s.storeUser(ctx, user)
	}
	val := "false"
	if enabled {
		val = "true"
	}
	return s.store.Set(ctx, session.KeyNotifications, val)
}

func (s *AuthService) saveSession(ctx context.Context, user *models.User) (string, error) {
	token := uuid.NewString()
	if err := s.store.Set(ctx, session.KeyToken, token); err != nil {
		return "", err
	}
	return token, s.storeUser(ctx, user)
}

func (s *AuthService) storeUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, session.KeyUser, string(raw))
}
