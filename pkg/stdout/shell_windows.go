//go:build windows

package stdout

import "os"

func shellCommand(shell, command string) (string, []string) {
	if shell == "" {
		shell = os.Getenv("ComSpec")
		if shell == "" {
			shell = "cmd.exe"
		}
	}
	return shell, []string{"/d", "/s", "/c", command}
}
