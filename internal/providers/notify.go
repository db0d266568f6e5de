package providers

import (
	"fmt"
	"os"
)

// TerminalBell is the default NotificationSink: it rings the terminal bell.
// Best effort only; the title and body are dropped.
type TerminalBell struct{}

// Notify implements NotificationSink.
func (TerminalBell) Notify(title, body string) error {
	_, err := fmt.Fprint(os.Stdout, "\a")
	return err
}
