package tui

import (
	"fmt"
	"os/exec"
)

// Navigator opens a post link outside the terminal.
type Navigator interface {
	Open(url string) error
}

// ExecNavigator runs an opener command such as xdg-open and does not wait
// for it.
type ExecNavigator struct {
	Command string
}

func (n ExecNavigator) Open(url string) error {
	if n.Command == "" {
		return fmt.Errorf("no opener configured")
	}
	cmd := exec.Command(n.Command, url)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
