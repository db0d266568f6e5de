package ui

// MessageType classifies a status line.
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
	MessageTypeLoading
)

// RenderMessage renders a status line with the bullet and color its type
// calls for. Long messages are truncated to fit the terminal width.
func RenderMessage(text string, msgType MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	maxLen := width - 7
	if maxLen < 20 {
		maxLen = 20
	}
	if len(text) > maxLen {
		text = text[:maxLen-1] + "…"
	}

	prefix := "⏺ "
	switch msgType {
	case MessageTypeSuccess:
		return theme.StatusBar.Foreground(theme.Success).Render(prefix + text)
	case MessageTypeError:
		return theme.ErrorText.Render(prefix + text)
	case MessageTypeLoading:
		return theme.LoadingText.Render(prefix + text)
	default:
		return theme.StatusBar.Render(prefix + text)
	}
}
