// package notify announces timer completion outside the terminal.
package notify

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/log"
)

var getRuntime = func() string { return runtime.GOOS }

var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Notifier delivers best-effort completion notices. Delivery failures are
// logged and never surface to the caller; a finished session is recorded
// whether or not the desktop heard about it.
type Notifier struct {
	out    io.Writer
	logger *log.Logger
}

// New creates a Notifier writing the terminal bell to out.
func New(out io.Writer, logger *log.Logger) *Notifier {
	return &Notifier{out: out, logger: logger}
}

// Bell rings the terminal bell.
func (n *Notifier) Bell() {
	if n.out == nil {
		return
	}
	if _, err := fmt.Fprint(n.out, "\a"); err != nil && n.logger != nil {
		n.logger.Debug("bell failed", "error", err)
	}
}

// Desktop posts an OS notification with the given title and body.
//
// Supports macOS and Linux; elsewhere it is a no-op.
func (n *Notifier) Desktop(title, body string) {
	var err error
	switch rt := getRuntime(); rt {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", body, title)
		err = runCommand("osascript", "-e", script)
	case "linux":
		err = runCommand("notify-send", title, body)
	default:
		if n.logger != nil {
			n.logger.Debug("desktop notifications unsupported", "platform", rt)
		}
		return
	}

	if err != nil && n.logger != nil {
		n.logger.Debug("desktop notification failed", "error", err)
	}
}

// Complete announces a finished timer through every channel.
func (n *Notifier) Complete(title, body string) {
	n.Bell()
	n.Desktop(title, body)
}
