// Package platform wraps the host clipboard tools.
package platform

import (
	"bytes"
	"fmt"
	"os/exec"
)

// CopyToClipboard pipes text into the first clipboard helper found on
// PATH and reports which one took it.
func CopyToClipboard(text string) (string, error) {
	commands := [][]string{
		{"pbcopy"},
		{"xclip", "-selection", "clipboard"},
		{"wl-copy"},
	}

	for _, c := range commands {
		if _, err := exec.LookPath(c[0]); err != nil {
			continue
		}
		cmd := exec.Command(c[0], c[1:]...)
		cmd.Stdin = bytes.NewBufferString(text)
		if err := cmd.Run(); err == nil {
			return c[0], nil
		}
	}

	return "", fmt.Errorf("no clipboard command available")
}
