package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectNoteLookupArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"lister"},
			want: []string{"lister"},
		},
		{
			name: "direct note id first token",
			in:   []string{"lister", "note-abcd2345"},
			want: []string{"lister", "notes", "show", "note-abcd2345"},
		},
		{
			name: "after value flag",
			in:   []string{"lister", "--dir", "./tmp", "note-abcd2345"},
			want: []string{"lister", "--dir", "./tmp", "notes", "show", "note-abcd2345"},
		},
		{
			name: "after equals flag",
			in:   []string{"lister", "--dir=./tmp", "note-abcd2345"},
			want: []string{"lister", "--dir=./tmp", "notes", "show", "note-abcd2345"},
		},
		{
			name: "after bool flag",
			in:   []string{"lister", "--pretty", "note-abcd2345"},
			want: []string{"lister", "--pretty", "notes", "show", "note-abcd2345"},
		},
		{
			name: "after double dash",
			in:   []string{"lister", "--", "note-abcd2345"},
			want: []string{"lister", "--", "notes", "show", "note-abcd2345"},
		},
		{
			name: "subcommand not rewritten",
			in:   []string{"lister", "notes", "show", "note-abcd2345"},
			want: []string{"lister", "notes", "show", "note-abcd2345"},
		},
		{
			name: "malformed id not rewritten",
			in:   []string{"lister", "note-ABC"},
			want: []string{"lister", "note-ABC"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectNoteLookupArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteDirectNoteLookupArgs:\n got: %#v\nwant: %#v", got, tt.want)
			}
		})
	}
}
