// File: internal/user/validation.go
package user

import (
	"github.com/go-playground/validator/v10"
)

var fieldValidator = validator.New()

// Validate checks the conditional rules of a partial update, evaluating
// fields in dependency order: email syntax first, then the old password,
// then the new password (required only when an old password was supplied),
// then the confirmation (required only when a new password was supplied, and
// constrained to equal it). Returns a field -> message map, empty when valid.
func (r *UpdateUserRequest) Validate() map[string]string {
	violations := make(map[string]string)

	if r.Email != nil {
		if err := fieldValidator.Var(*r.Email, "email"); err != nil {
			violations["email"] = "must be a valid email address"
		}
	}

	if r.OldPassword != nil && len(*r.OldPassword) < 6 {
		violations["oldPassword"] = "must be at least 6 characters long"
	}

	// A password change must supply old and new values together.
	if r.OldPassword != nil && r.Password == nil {
		violations["password"] = "is required when oldPassword is present"
	}
	if r.Password != nil && len(*r.Password) < 8 {
		violations["password"] = "must be at least 8 characters long"
	}

	// The confirmation is only meaningful against a new password, and is an
	// equality constraint on its value, not an independent rule.
	if r.Password != nil {
		switch {
		case r.ConfirmPassword == nil:
			violations["confirmPassword"] = "is required when password is present"
		case *r.ConfirmPassword != *r.Password:
			violations["confirmPassword"] = "must match the password field"
		}
	}

	return violations
}
