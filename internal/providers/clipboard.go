package providers

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard copies through the OS clipboard.
type SystemClipboard struct{}

// Copy implements ClipboardSink.
func (SystemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
