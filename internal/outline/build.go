package outline

import (
	"lister-cli/internal/lister"
	"lister-cli/internal/model"
	"lister-cli/internal/view"
)

// Options configure a note list.
type Options struct {
	Mapper MapperOptions
	Header lister.Lines
	Footer lister.Lines
	Indent string
}

// New creates an empty note list drawing into a fresh buffer.
func New(opts Options) (*List, *view.Buffer, error) {
	buf := view.NewBuffer()
	l, err := lister.New[model.Note](buf, lister.Config[model.Note]{
		Mapper: Mapper(opts.Mapper),
		Header: opts.Header,
		Footer: opts.Footer,
		Indent: opts.Indent,
	})
	if err != nil {
		return nil, nil, err
	}
	return l, buf, nil
}

// Build creates a note list holding rows.
func Build(rows []model.OutlineRow, opts Options) (*List, *view.Buffer, error) {
	l, buf, err := New(opts)
	if err != nil {
		return nil, nil, err
	}
	if err := Load(l, rows); err != nil {
		return nil, nil, err
	}
	l.SetModified(false)
	return l, buf, nil
}
