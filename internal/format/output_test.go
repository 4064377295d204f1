package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Title    string   `json:"title" yaml:"title"`
	Done     bool     `json:"done" yaml:"done"`
	Count    int      `json:"count" yaml:"count"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	ParentID *string  `json:"parentId" yaml:"parentId"`
}

func TestWrite_Formats(t *testing.T) {
	v := sample{Title: "A", Count: 3, Tags: []string{"x"}}

	var buf bytes.Buffer
	if err := Write(&buf, v, "", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{"title":"A","done":false,"count":3,"tags":["x"],"parentId":null}`+"\n" {
		t.Fatalf("json = %q", got)
	}

	buf.Reset()
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != `{:count 3 :done false :parent-id nil :tags ["x"] :title "A"}`+"\n" {
		t.Fatalf("edn = %q", got)
	}

	buf.Reset()
	if err := Write(&buf, v, "yml", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); !strings.Contains(got, "title: A\n") || !strings.Contains(got, "count: 3\n") {
		t.Fatalf("yaml = %q", got)
	}

	if err := Write(&buf, v, "xml", false); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, map[string]any{"a": []int{1, 2}, "b": map[string]any{}}, true); err != nil {
		t.Fatal(err)
	}
	want := "{\n  :a [\n    1\n    2\n  ]\n  :b {}\n}\n"
	if buf.String() != want {
		t.Fatalf("edn = %q, want %q", buf.String(), want)
	}
}

func TestRead_JSONAndYAML(t *testing.T) {
	var got []sample
	if err := Read(strings.NewReader(`[{"title":"A","count":2}]`), &got, "json"); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Count != 2 {
		t.Fatalf("json read = %+v", got)
	}
	if err := Read(strings.NewReader(`[{"title":"A","bogus":1}]`), &got, "json"); err == nil {
		t.Fatalf("unknown JSON fields should be rejected")
	}
	got = nil
	if err := Read(strings.NewReader("- title: B\n  tags: [a, b]\n"), &got, DetectFormat("x.yaml")); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "B" || len(got[0].Tags) != 2 {
		t.Fatalf("yaml read = %+v", got)
	}
	if err := Read(strings.NewReader("{}"), &got, "edn"); err == nil {
		t.Fatalf("expected edn read to fail")
	}
}
