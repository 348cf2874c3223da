//go:build !windows

package stdout

import "runtime"

func shellCommand(shell, command string) (string, []string) {
	if shell == "" {
		shell = "/bin/sh"
		if runtime.GOOS == "android" {
			shell = "/system/bin/sh"
		}
	}
	return shell, []string{"-c", command}
}
