package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"lister-cli/internal/model"
)

type WriteOptions struct {
	Title     string
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteOutline writes index.md for trees and one page per note with a body
// under notes/.
func WriteOutline(trees []model.Tree, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toDir = filepath.Clean(toDir)
	if err := os.MkdirAll(filepath.Join(toDir, "notes"), 0o755); err != nil {
		return WriteResult{}, err
	}

	indexPath := filepath.Join(toDir, "index.md")
	if err := writeFile(indexPath, []byte(RenderOutlineMarkdown(opt.Title, trees, true)), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	written := []string{indexPath}

	var walk func(ts []model.Tree, ancestors []string) error
	walk = func(ts []model.Tree, ancestors []string) error {
		for _, t := range ts {
			if strings.TrimSpace(t.Body) != "" && t.ID != "" {
				p := filepath.Join(toDir, filepath.FromSlash(notePagePath(t.ID)))
				if err := writeFile(p, []byte(RenderNoteMarkdown(t, ancestors)), opt.Overwrite); err != nil {
					return err
				}
				written = append(written, p)
			}
			next := append(append([]string(nil), ancestors...), t.Title)
			if err := walk(t.Children, next); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(trees, nil); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: written}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
