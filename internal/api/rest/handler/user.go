package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vportnov/user-service/internal/logger"
	"github.com/vportnov/user-service/internal/model"
	"github.com/vportnov/user-service/internal/validation"
)

// UserService defines the operations the user endpoints delegate to.
type UserService interface {
	Create(ctx context.Context, in validation.CreateUserInput) (model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Find(ctx context.Context, filter model.UserFilter) ([]model.User, error)
	Update(ctx context.Context, id string, in validation.UpdateUserInput) (model.User, error)
	Delete(ctx context.Context, id string) error
	AuthorizedUser(ctx context.Context) (model.User, error)
}

// User handles HTTP endpoints for the user resource.
type User struct {
	service UserService
	logger  *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(service UserService, logger *logger.Logger) *User {
	return &User{
		service: service,
		logger:  logger,
	}
}

type createUserRequest struct {
	Email                string `json:"email"`
	Name                 string `json:"name"`
	Username             string `json:"username"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Status   *string `json:"status"`
}

// userResponse is the wire representation of a user. The password hash
// never appears here.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Username:  user.Username,
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Create registers a new user.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, model.NewValidationError(map[string]string{"body": "invalid_request_body"}))
		return
	}

	in := validation.CreateUserInput{
		Email:                req.Email,
		Name:                 req.Name,
		Username:             req.Username,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}
	if err := validation.ValidateCreate(in); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.logger.Error("User handler: create failed",
			"username", req.Username,
			"error", err.Error())
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get returns a single user by id.
func (h *User) Get(c *gin.Context) {
	user, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Find lists users matching the query filter. An empty result is reported
// as not found, matching the public API contract.
func (h *User) Find(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}

	users, err := h.service.Find(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("User handler: find failed", "error", err.Error())
		writeError(c, err)
		return
	}

	if len(users) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{
			Error: "users with given filter not found",
		})
		return
	}

	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	c.JSON(http.StatusOK, responses)
}

// Update applies a partial update to a user.
func (h *User) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, model.NewValidationError(map[string]string{"body": "invalid_request_body"}))
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), validation.UpdateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Status:   req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete removes a user. Success carries no body.
func (h *User) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me returns the account of the authenticated caller.
func (h *User) Me(c *gin.Context) {
	user, err := h.service.AuthorizedUser(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func filterFromQuery(c *gin.Context) (model.UserFilter, error) {
	var filter model.UserFilter
	if email := c.Query("email"); email != "" {
		filter.Email = &email
	}
	if username := c.Query("username"); username != "" {
		filter.Username = &username
	}
	if rawStatus := c.Query("status"); rawStatus != "" {
		status, err := model.ParseStatus(rawStatus)
		if err != nil {
			return model.UserFilter{}, model.NewValidationError(map[string]string{"status": "invalid_status"})
		}
		filter.Status = &status
	}

	return filter, nil
}
