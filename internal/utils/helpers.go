package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCredentials builds a login username from the person's name and
// role plus a random password. The password is returned in the clear
// exactly once; callers store only the hash.
func GenerateCredentials(name, role string) (username, password string, err error) {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "."))
	if slug == "" {
		slug = "user"
	}
	suffix, err := randomString(4)
	if err != nil {
		return "", "", fmt.Errorf("generate username suffix: %w", err)
	}
	username = fmt.Sprintf("%s.%s.%s", slug, strings.ToLower(role), suffix)

	password, err = randomString(12)
	if err != nil {
		return "", "", fmt.Errorf("generate password: %w", err)
	}
	return username, password, nil
}

// HashPassword is a storable digest of a generated password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func randomString(n int) (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(passwordAlphabet[idx.Int64()])
	}
	return b.String(), nil
}

// ParseYMD parses a YYYY-MM-DD date at midnight UTC.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
