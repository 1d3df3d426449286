package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength mirrors the minimum the hosted identity provider enforced.
const MinPasswordLength = 6

var ErrWeakPassword = fmt.Errorf("password must be at least %d characters", MinPasswordLength)

// hashCost is a variable so tests can lower it.
var hashCost = bcrypt.DefaultCost

func HashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return h, nil
}

// CheckPassword returns common.ErrorUnauthorized on mismatch.
func CheckPassword(hash []byte, password string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return common.ErrorUnauthorized
	}
	return fmt.Errorf("check password: %w", err)
}
