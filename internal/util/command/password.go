package command

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrPasswordMismatch is returned when the confirmation differs from the first entry.
var ErrPasswordMismatch = errors.New("passwords do not match")

// PasswordReader prompts for a password, asking a second time when confirm is set
type PasswordReader func(prompt string, confirm bool) (string, error)

// ReadPassword reads a password from the terminal attached to stdin without echoing it.
// Prompts are written to stderr.
func ReadPassword(prompt string, confirm bool) (string, error) {
	fd := int(os.Stdin.Fd()) //nolint:gosec // file descriptors fit into int
	if !term.IsTerminal(fd) {
		return "", errors.New("password prompt requires an interactive terminal")
	}

	password, err := readLine(fd, prompt)
	if err != nil {
		return "", err
	}

	if len(password) == 0 {
		return "", errors.New("password must not be empty")
	}

	if confirm {
		again, err := readLine(fd, "Repeat password: ")
		if err != nil {
			return "", err
		}

		if again != password {
			return "", ErrPasswordMismatch
		}
	}

	return password, nil
}

func readLine(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return string(b), nil
}
