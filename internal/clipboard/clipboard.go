// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd := command()
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

func command() *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy")
	case "windows":
		return exec.Command("cmd", "/c", "clip")
	default:
		// Prefer wl-copy on Wayland, then xclip, then xsel.
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := exec.LookPath("wl-copy"); err == nil {
				return exec.Command("wl-copy")
			}
		}
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard")
		}
		return exec.Command("xsel", "--clipboard", "--input")
	}
}

// Available reports whether a clipboard tool can be found.
func Available() bool {
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "windows":
		return true // clip ships with Windows
	default:
		for _, tool := range []string{"wl-copy", "xclip", "xsel"} {
			if _, err := exec.LookPath(tool); err == nil {
				return true
			}
		}
		return false
	}
}
