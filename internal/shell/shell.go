// Package shell adds or removes the weathr startup snippet in the
// user's shell rc file.
package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const snippet = "\n# weathr - terminal weather display\nweathr --duration 5\n"

// ErrUnsupportedShell is returned when $SHELL is not zsh, bash, or fish.
var ErrUnsupportedShell = errors.New("could not detect your shell; supported: zsh, bash, fish")

// RCFile picks the startup file for the given shell and home directory.
// bash prefers .bash_profile when one already exists.
func RCFile(shellPath, home string) (string, error) {
	switch {
	case strings.Contains(shellPath, "zsh"):
		return filepath.Join(home, ".zshrc"), nil
	case strings.Contains(shellPath, "bash"):
		profile := filepath.Join(home, ".bash_profile")
		if _, err := os.Stat(profile); err == nil {
			return profile, nil
		}
		return filepath.Join(home, ".bashrc"), nil
	case strings.Contains(shellPath, "fish"):
		return filepath.Join(home, ".config", "fish", "config.fish"), nil
	default:
		return "", ErrUnsupportedShell
	}
}

// Install appends the startup snippet to rcPath unless one is already
// present. It reports whether anything was written.
func Install(rcPath string) (bool, error) {
	contents, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	if strings.Contains(string(contents), "weathr") {
		return false, nil
	}

	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", rcPath, err)
	}
	defer f.Close()
	if _, err := f.WriteString(snippet); err != nil {
		return false, fmt.Errorf("writing %s: %w", rcPath, err)
	}
	return true, nil
}

// Uninstall strips every line mentioning weathr from rcPath.
func Uninstall(rcPath string) error {
	contents, err := os.ReadFile(rcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var kept []string
	for _, line := range strings.Split(string(contents), "\n") {
		if strings.Contains(strings.TrimSpace(line), "weathr") {
			continue
		}
		kept = append(kept, line)
	}
	out := strings.TrimRight(strings.Join(kept, "\n"), "\n") + "\n"
	return os.WriteFile(rcPath, []byte(out), 0644)
}
