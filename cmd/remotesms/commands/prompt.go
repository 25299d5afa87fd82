package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// secretOrPrompt returns value, or reads it without echo from the terminal
// when value is empty.
func secretOrPrompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%s required", label)
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
