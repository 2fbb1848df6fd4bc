package client

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// PromptKey asks for the shared secret on the terminal without echo.
func PromptKey(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "Enter key: "); err != nil {
		return "", err
	}
	key, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	if len(key) == 0 {
		return "", errors.New("empty key")
	}
	return string(key), nil
}
