// Package validation checks create and update payloads before they reach
// the user service. Every violated field is reported, not just the first.
package validation

import (
	"net/mail"
	"strings"

	"github.com/vportnov/user-service/internal/model"
)

// CreateUserInput is the raw payload of a create request.
type CreateUserInput struct {
	Email                string
	Name                 string
	Username             string
	Password             string
	PasswordConfirmation string
}

// UpdateUserInput is the raw payload of a partial update request.
// Nil fields are absent from the request.
type UpdateUserInput struct {
	Name     *string
	Username *string
	Status   *string
}

// ValidateCreate checks a create payload. It returns a
// *model.ValidationError listing all violations, or nil.
func ValidateCreate(in CreateUserInput) error {
	violations := make(map[string]string)

	if strings.TrimSpace(in.Email) == "" {
		violations["email"] = "email_required"
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		violations["email"] = "invalid_email_format"
	}
	if strings.TrimSpace(in.Name) == "" {
		violations["name"] = "name_required"
	}
	if strings.TrimSpace(in.Username) == "" {
		violations["username"] = "username_required"
	}
	if in.Password == "" {
		violations["password"] = "password_required"
	} else if in.Password != in.PasswordConfirmation {
		violations["password_confirmation"] = "password_confirmation_mismatch"
	}

	if len(violations) > 0 {
		return model.NewValidationError(violations)
	}

	return nil
}

// ValidateUpdate checks a partial update payload and converts it into a
// model.UserUpdate. Present fields must be non-empty and status must be a
// defined variant.
func ValidateUpdate(in UpdateUserInput) (model.UserUpdate, error) {
	violations := make(map[string]string)
	var update model.UserUpdate

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			violations["name"] = "name_empty"
		} else {
			update.Name = in.Name
		}
	}
	if in.Username != nil {
		if strings.TrimSpace(*in.Username) == "" {
			violations["username"] = "username_empty"
		} else {
			update.Username = in.Username
		}
	}
	if in.Status != nil {
		status, err := model.ParseStatus(*in.Status)
		if err != nil {
			violations["status"] = "invalid_status"
		} else {
			update.Status = &status
		}
	}

	if len(violations) > 0 {
		return model.UserUpdate{}, model.NewValidationError(violations)
	}

	return update, nil
}
