package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vportnov/user-service/internal/logger"
	"github.com/vportnov/user-service/internal/model"
	"github.com/vportnov/user-service/internal/validation"
)

// User orchestrates user account operations. It holds no state across
// calls; uniqueness is enforced by the store's constraints, never by a
// check-then-insert here.
type User struct {
	store      model.UserStore
	ctxManager model.ContextManager
	logger     *logger.Logger
}

// NewUser creates a new User service.
func NewUser(
	store model.UserStore,
	ctxManager model.ContextManager,
	logger *logger.Logger,
) *User {
	return &User{
		store:      store,
		ctxManager: ctxManager,
		logger:     logger,
	}
}

// Create registers a new user. The payload is validated again here even
// though the boundary validates first. New accounts start as pending.
func (s *User) Create(ctx context.Context, in validation.CreateUserInput) (model.User, error) {
	s.logger.Debug("User service: creating user",
		"email", in.Email,
		"username", in.Username)

	if err := validation.ValidateCreate(in); err != nil {
		return model.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        in.Email,
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: passwordHash,
		Status:       model.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		var conflictErr *model.ConflictError
		if errors.As(err, &conflictErr) {
			s.logger.Info("User service: create conflict",
				"field", conflictErr.Field,
				"username", in.Username)
			return model.User{}, err
		}
		s.logger.Error("User service: failed to create user",
			"username", in.Username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", created.ID,
		"username", created.Username)

	return created, nil
}

// Get returns the user with the given id. Malformed ids fail validation
// before the store is touched.
func (s *User) Get(ctx context.Context, id string) (model.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Find returns all users matching the filter in creation order. An empty
// result is not an error; the boundary decides what empty means.
func (s *User) Find(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	users, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Update applies the present fields of the payload to the user with the
// given id. Any status variant may move to any other.
func (s *User) Update(ctx context.Context, id string, in validation.UpdateUserInput) (model.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return model.User{}, err
	}

	update, err := validation.ValidateUpdate(in)
	if err != nil {
		return model.User{}, err
	}

	// An empty payload is a no-op returning the current record.
	if update.IsEmpty() {
		return s.Get(ctx, id)
	}

	updated, err := s.store.UpdateFields(ctx, userID, update)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		var conflictErr *model.ConflictError
		if errors.As(err, &conflictErr) {
			s.logger.Info("User service: update conflict",
				"user_id", userID,
				"field", conflictErr.Field)
			return model.User{}, err
		}
		s.logger.Error("User service: failed to update user",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", updated.ID)

	return updated, nil
}

// Delete removes the user with the given id. The removal is hard; the
// record is gone afterwards.
func (s *User) Delete(ctx context.Context, id string) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("User service: failed to delete user",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", userID)

	return nil
}

// AuthorizedUser returns the account of the caller whose identity was
// resolved by upstream middleware.
func (s *User) AuthorizedUser(ctx context.Context) (model.User, error) {
	userID, ok := s.ctxManager.GetUserIDFromContext(ctx)
	if !ok {
		return model.User{}, model.ErrUnauthenticated
	}

	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// An authenticated id that resolves to nothing means the token
			// outlived the account or the store lost the record.
			s.logger.Error("User service: authenticated user does not exist",
				"user_id", userID)
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get authorized user: %w", err)
	}

	return user, nil
}

func parseID(id string) (uuid.UUID, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.NewValidationError(map[string]string{"id": "invalid_user_id"})
	}
	return userID, nil
}
