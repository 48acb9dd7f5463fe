package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdin is not a terminal: pass the key with --key")

// readSecret reads a secret from the terminal without echoing it.
var readSecret = func(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errNotTerminal
	}

	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	defer clear(raw)

	secret := strings.TrimSpace(string(raw))
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}
	return secret, nil
}
