package services

import (
	"errors"
	"strings"
)

var ErrAuthInputInvalid = errors.New("auth input invalid")

// NormalizeCredentialsInput trims both values and requires presence. No
// further sanitization is applied; usernames stay byte-exact so lookups keep
// the storage collation's case-sensitivity.
func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := strings.TrimSpace(usernameRaw)
	password := strings.TrimSpace(passwordRaw)
	if username == "" || password == "" {
		return "", "", ErrAuthInputInvalid
	}
	return username, password, nil
}

// NormalizeRegistrationInput additionally requires a display name.
func NormalizeRegistrationInput(usernameRaw string, passwordRaw string, displayNameRaw string) (string, string, string, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return "", "", "", err
	}
	displayName := strings.TrimSpace(displayNameRaw)
	if displayName == "" {
		return "", "", "", ErrAuthInputInvalid
	}
	return username, password, displayName, nil
}
