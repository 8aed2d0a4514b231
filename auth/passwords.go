package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var ErrPasswordMismatch = errors.New("auth: invalid password")

// bcrypt ignores everything past 72 bytes
const maxPasswordBytes = 72

type PasswordService struct {
	cost int
}

type PasswordOption func(*PasswordService)

// WithCost sets the bcrypt work factor; values outside bcrypt's range fall back to the default
func WithCost(cost int) PasswordOption {
	return func(p *PasswordService) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			p.cost = cost
		}
	}
}

func NewPasswordService(opts ...PasswordOption) *PasswordService {
	p := &PasswordService{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", fmt.Errorf("auth: password must be %d bytes or fewer", maxPasswordBytes)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify returns nil when plaintext matches hash and ErrPasswordMismatch when it does not
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
