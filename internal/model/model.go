package model

import (
	"strings"
	"time"
)

type Note struct {
	ID       string  `json:"id" yaml:"id"`
	ParentID *string `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Rank     string  `json:"rank,omitempty" yaml:"rank,omitempty"`

	Title string   `json:"title" yaml:"title"`
	Body  string   `json:"body,omitempty" yaml:"body,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Done  bool     `json:"done" yaml:"done"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// HasTag reports whether the note carries tag, ignoring case.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Matches reports whether q occurs in the title, body or tags, ignoring case.
func (n Note) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Body), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// OutlineRow is a note at its depth in the outline.
type OutlineRow struct {
	Note  Note
	Level int
}

// Tree is the nested export/import shape of an outline.
type Tree struct {
	ID       string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body,omitempty" yaml:"body,omitempty"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Done     bool     `json:"done,omitempty" yaml:"done,omitempty"`
	Children []Tree   `json:"children,omitempty" yaml:"children,omitempty"`
}
