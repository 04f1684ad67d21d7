package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	// ErrPasswordTooShort is returned when password is too short
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when password is too long
	ErrPasswordTooLong = errors.New("password must be at most 128 characters")
	// ErrInvalidHash is returned when a stored hash cannot be parsed
	ErrInvalidHash = errors.New("invalid password hash format")
)

// PasswordConfig configures password hashing parameters
type PasswordConfig struct {
	Time    uint32 // Time cost
	Memory  uint32 // Memory cost in KB
	Threads uint8  // Number of threads
	KeyLen  uint32 // Key length (output hash length)
	SaltLen uint32 // Salt length
}

// DefaultPasswordConfig returns the default password configuration
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		Time:    3,
		Memory:  64 * 1024, // 64 MB
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// PasswordService handles password hashing and verification
type PasswordService struct {
	config PasswordConfig
}

// NewPasswordService creates a password service with the default config
func NewPasswordService() *PasswordService {
	return &PasswordService{config: DefaultPasswordConfig()}
}

// ValidatePassword checks password length bounds before hashing
func (ps *PasswordService) ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if len(password) > 128 {
		return ErrPasswordTooLong
	}
	return nil
}

// HashPassword hashes a password with argon2id. The result encodes the
// parameters and salt so it is self-describing.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	salt := make([]byte, ps.config.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, ps.config.Time, ps.config.Memory, ps.config.Threads, ps.config.KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, ps.config.Memory, ps.config.Time, ps.config.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))

	return encoded, nil
}

// VerifyPassword checks a plain password against an encoded hash
func (ps *PasswordService) VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrInvalidHash
	}

	var memory, timeCost uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &threads); err != nil {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidHash
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrInvalidHash
	}

	hash := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(expected)))

	return subtle.ConstantTimeCompare(hash, expected) == 1, nil
}
