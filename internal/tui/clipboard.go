package tui

import (
	"strings"

	"github.com/atotto/clipboard"

	"lister-cli/internal/model"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

func copyToClipboard(s string) error {
	return clipboardWrite(strings.ReplaceAll(s, "\r\n", "\n"))
}

// noteClipboardText is the title followed by the body, if any.
func noteClipboardText(n model.Note) string {
	body := strings.TrimSpace(n.Body)
	if body == "" {
		return n.Title
	}
	return n.Title + "\n\n" + body
}
