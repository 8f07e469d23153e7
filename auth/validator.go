package auth

import (
	"github.com/go-playground/validator/v10"

	"tokenbag/errors"
)

var validate = validator.New()

// RegisterRequest carries the raw registration input. Usernames are short
// handles, not emails; the password floor is deliberately low because
// accounts only gate room ownership, nothing sensitive.
type RegisterRequest struct {
	Username string `validate:"required,min=3,max=32,alphanum"`
	Password string `validate:"required,min=6,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Var(req.Username, "required,min=3,max=32,alphanum"); err != nil {
		return errors.ErrInvalidRequest
	}
	if err := validate.Var(req.Password, "required,min=6,max=72"); err != nil {
		return errors.ErrInvalidPassword
	}
	return nil
}
