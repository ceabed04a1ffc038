// Package shell runs the execute() action's command, already expanded
// against the cursor row by the caller, with a full terminal handover (the
// tcell screen is expected to already be suspended by the caller) instead
// of the output-capture mode used by reader and preview.
package shell

import (
	"log"
	"os"
	"os/exec"

	"github.com/google/shlex"
	"github.com/pkg/errors"
)

// Cmd represents one execute() invocation, already expanded against the
// row under the cursor.
type Cmd struct {
	cmd string
}

// NewCmd constructs a Cmd from an already-placeholder-expanded command
// string.
func NewCmd(cmd string) *Cmd {
	return &Cmd{cmd}
}

// Run executes the command in a shell, handing over stdin/stdout/stderr.
// If the command exits with non-zero status, an error is returned. This
// assumes the tcell screen has already been suspended.
func (c *Cmd) Run() error {
	c.clearTerminal()
	return c.runInShell()
}

func (c *Cmd) String() string {
	return c.cmd
}

func (c *Cmd) clearTerminal() {
	clearCmd := exec.Command("clear")
	clearCmd.Stdout = os.Stdout
	clearCmd.Stderr = os.Stderr
	if err := clearCmd.Run(); err != nil {
		log.Printf("error clearing screen: %v", err)
	}
}

func (c *Cmd) runInShell() error {
	s, err := shellProgAndArgs()
	if err != nil {
		return err
	}

	s = append(s, "-c", c.cmd)
	cmd := exec.Command(s[0], s[1:]...)
	cmd.Env = os.Environ()

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "Cmd.Run")
	}
	return nil
}

const defaultShell = "sh"

func shellProgAndArgs() ([]string, error) {
	s := os.Getenv("SKIM_SHELL")
	if s == "" {
		s = os.Getenv("SHELL")
	}
	if s == "" {
		s = defaultShell
	}

	// The shell env var might include command line args for the shell
	// command. These need to be passed separately to exec.Command, so
	// split them here.
	parts, err := shlex.Split(s)
	if err != nil {
		return nil, errors.Wrapf(err, "shlex.Split")
	}
	return parts, nil
}
