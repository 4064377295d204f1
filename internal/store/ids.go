package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

const noteIDPrefix = "note"

// newNoteID returns note-<8 lowercase base32 chars>.
func newNoteID() (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return noteIDPrefix + "-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// LooksLikeNoteID reports whether s has the shape of a generated note id.
func LooksLikeNoteID(s string) bool {
	suffix, ok := strings.CutPrefix(strings.TrimSpace(s), noteIDPrefix+"-")
	if !ok || len(suffix) != 8 {
		return false
	}
	for _, c := range suffix {
		if !(c >= 'a' && c <= 'z') && !(c >= '2' && c <= '7') {
			return false
		}
	}
	return true
}
