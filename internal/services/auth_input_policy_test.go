package services

import (
	"errors"
	"testing"
)

func TestNormalizeCredentialsInputTrimsAndRequiresPresence(t *testing.T) {
	t.Parallel()

	username, password, err := NormalizeCredentialsInput(" budi123 ", " secret ")
	if err != nil {
		t.Fatalf("normalize credentials: %v", err)
	}
	if username != "budi123" || password != "secret" {
		t.Fatalf("unexpected normalized values %q/%q", username, password)
	}

	if _, _, err := NormalizeCredentialsInput("", "secret"); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected missing username rejected, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("budi123", "   "); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected blank password rejected, got %v", err)
	}
}

func TestNormalizeCredentialsInputKeepsUsernameCase(t *testing.T) {
	t.Parallel()

	username, _, err := NormalizeCredentialsInput("Budi123", "secret")
	if err != nil {
		t.Fatalf("normalize credentials: %v", err)
	}
	if username != "Budi123" {
		t.Fatalf("expected username case preserved, got %q", username)
	}
}

func TestNormalizeRegistrationInputRequiresDisplayName(t *testing.T) {
	t.Parallel()

	if _, _, _, err := NormalizeRegistrationInput("budi123", "secret", " "); !errors.Is(err, ErrAuthInputInvalid) {
		t.Fatalf("expected missing display name rejected, got %v", err)
	}

	_, _, displayName, err := NormalizeRegistrationInput("budi123", "secret", " Budi ")
	if err != nil {
		t.Fatalf("normalize registration: %v", err)
	}
	if displayName != "Budi" {
		t.Fatalf("unexpected display name %q", displayName)
	}
}
