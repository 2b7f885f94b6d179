package update

import (
	"os/exec"
	"runtime"
)

// Notifier raises a desktop notification outside the terminal.
type Notifier interface {
	Notify(title, body string) error
}

// NoopNotifier is used when desktop notifications are disabled.
type NoopNotifier struct{}

func (NoopNotifier) Notify(string, string) error { return nil }

// ExecNotifier shells out to the platform notifier binary.
type ExecNotifier struct{}

func (ExecNotifier) Notify(title, body string) error {
	switch runtime.GOOS {
	case "darwin":
		script := "display notification \"" + body + "\" with title \"" + title + "\""
		return exec.Command("osascript", "-e", script).Run()
	default:
		return exec.Command("notify-send", title, body).Run()
	}
}
