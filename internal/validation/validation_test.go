package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportnov/user-service/internal/model"
)

func validCreateInput() CreateUserInput {
	return CreateUserInput{
		Email:                "a@x.com",
		Name:                 "A",
		Username:             "a1",
		Password:             "p",
		PasswordConfirmation: "p",
	}
}

func TestValidateCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*CreateUserInput)
		wantFields []string
	}{
		{
			name:   "valid payload",
			mutate: func(in *CreateUserInput) {},
		},
		{
			name:       "missing email",
			mutate:     func(in *CreateUserInput) { in.Email = " " },
			wantFields: []string{"email"},
		},
		{
			name:       "malformed email",
			mutate:     func(in *CreateUserInput) { in.Email = "not-an-address" },
			wantFields: []string{"email"},
		},
		{
			name:       "missing name",
			mutate:     func(in *CreateUserInput) { in.Name = "" },
			wantFields: []string{"name"},
		},
		{
			name:       "missing username",
			mutate:     func(in *CreateUserInput) { in.Username = "" },
			wantFields: []string{"username"},
		},
		{
			name:       "missing password",
			mutate:     func(in *CreateUserInput) { in.Password = "" },
			wantFields: []string{"password"},
		},
		{
			name: "confirmation mismatch",
			mutate: func(in *CreateUserInput) {
				in.PasswordConfirmation = "other"
			},
			wantFields: []string{"password_confirmation"},
		},
		{
			name: "every field violated at once",
			mutate: func(in *CreateUserInput) {
				*in = CreateUserInput{}
			},
			wantFields: []string{"email", "name", "username", "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validCreateInput()
			tt.mutate(&in)

			err := ValidateCreate(in)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErr *model.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Len(t, validationErr.Fields, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, validationErr.Fields, field)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	name := "New Name"
	username := "newname"
	empty := " "
	statusPassive := "passive"
	statusUnknown := "unknown"

	t.Run("all fields absent", func(t *testing.T) {
		t.Parallel()

		update, err := ValidateUpdate(UpdateUserInput{})
		require.NoError(t, err)
		assert.True(t, update.IsEmpty())
	})

	t.Run("present fields are converted", func(t *testing.T) {
		t.Parallel()

		update, err := ValidateUpdate(UpdateUserInput{
			Name:     &name,
			Username: &username,
			Status:   &statusPassive,
		})
		require.NoError(t, err)
		require.NotNil(t, update.Name)
		assert.Equal(t, name, *update.Name)
		require.NotNil(t, update.Username)
		assert.Equal(t, username, *update.Username)
		require.NotNil(t, update.Status)
		assert.Equal(t, model.StatusPassive, *update.Status)
	})

	t.Run("empty strings are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateUpdate(UpdateUserInput{Name: &empty, Username: &empty})

		var validationErr *model.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "name")
		assert.Contains(t, validationErr.Fields, "username")
	})

	t.Run("unknown status variant is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := ValidateUpdate(UpdateUserInput{Status: &statusUnknown})

		var validationErr *model.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Equal(t, map[string]string{"status": "invalid_status"}, validationErr.Fields)
	})
}
