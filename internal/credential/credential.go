// Package credential obtains the Steam Web API key.
package credential

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"friend_tracker/internal/domain"
)

const (
	EnvVar = "STEAM_API_KEY"
	prompt = "Enter your Steam API key: "
)

type Credential struct {
	APIKey string
}

// String keeps the key out of logs.
func (c Credential) String() string {
	return Mask(c.APIKey)
}

func (c Credential) LogValue() slog.Value {
	return slog.StringValue(Mask(c.APIKey))
}

// Mask hides all but the edges of a secret.
func Mask(secret string) string {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "***"
	}
	return secret[:3] + "***" + secret[len(secret)-3:]
}

// Obtainer looks the key up in the environment and falls back to an
// interactive prompt.
type Obtainer struct {
	Getenv func(string) string
	Prompt func() (string, error)
}

// NewTerminalObtainer reads from the process environment and prompts on the
// controlling terminal without echo.
func NewTerminalObtainer() *Obtainer {
	return &Obtainer{
		Getenv: os.Getenv,
		Prompt: func() (string, error) {
			return promptHidden(os.Stdin, os.Stderr)
		},
	}
}

func (o *Obtainer) Obtain() (Credential, error) {
	if key := strings.TrimSpace(o.Getenv(EnvVar)); key != "" {
		return Credential{APIKey: key}, nil
	}
	if o.Prompt == nil {
		return Credential{}, fmt.Errorf("%w: %s is not set", domain.ErrCredentialMissing, EnvVar)
	}

	key, err := o.Prompt()
	if err != nil {
		return Credential{}, fmt.Errorf("%w: read api key: %w", domain.ErrCredentialMissing, err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return Credential{}, fmt.Errorf("%w: empty api key", domain.ErrCredentialMissing)
	}
	return Credential{APIKey: key}, nil
}

func promptHidden(in *os.File, out io.Writer) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal and %s is not set", EnvVar)
	}

	fmt.Fprint(out, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
