//go:build !unix

package command

import (
	"os"
	"os/exec"
)

func configureProcess(cmd *exec.Cmd) {}

func signalName(state *os.ProcessState) string {
	return ""
}
