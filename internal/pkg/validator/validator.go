package validator

import (
	"fmt"
	"strings"
)

const maxContentLength = 5000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateRegister(username, email, pass string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}

	if len([]rune(username)) > 32 {
		return fmt.Errorf("username exceeds maximum length of 32 characters")
	}

	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("valid email is required")
	}

	if len(pass) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	return nil
}

func (v *Validator) ValidateLogin(email, pass string) error {
	if strings.TrimSpace(email) == "" || pass == "" {
		return fmt.Errorf("email and password are required")
	}

	return nil
}

func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}
