package setup

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Port bounds accepted for the local development server.
const (
	MinPort = 1025
	MaxPort = 65535
)

var storeURLPattern = regexp.MustCompile(`^https?://`)

// Validation messages are shown to the user verbatim.
var (
	ErrStoreURL         = errors.New("You must enter a URL")
	ErrPortNotInteger   = errors.New("You must enter an integer")
	ErrPortRange        = fmt.Errorf("The port number must be between %d and %d", MinPort, MaxPort)
	ErrUsernameRequired = errors.New("You must enter a username")
	ErrTokenRequired    = errors.New("Please enter a valid token")
)

// ValidateStoreURL accepts http and https URLs.
func ValidateStoreURL(val string) error {
	if !storeURLPattern.MatchString(val) {
		return ErrStoreURL
	}
	return nil
}

// ValidatePort accepts an integer in [MinPort, MaxPort].
func ValidatePort(val string) error {
	_, err := parsePort(val)
	return err
}

// ValidateUsername rejects an empty username.
func ValidateUsername(val string) error {
	if val == "" {
		return ErrUsernameRequired
	}
	return nil
}

// ValidateToken rejects an empty token.
func ValidateToken(val string) error {
	if val == "" {
		return ErrTokenRequired
	}
	return nil
}

func parsePort(val string) (int, error) {
	port, err := strconv.Atoi(val)
	if err != nil {
		return 0, ErrPortNotInteger
	}
	if port < MinPort || port > MaxPort {
		return 0, ErrPortRange
	}
	return port, nil
}
