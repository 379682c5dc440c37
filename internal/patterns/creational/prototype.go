package creational

import (
	"fmt"

	"patternlab/internal/domain"
)

// document is the prototype of the example. tags is a reference field, so
// clone must copy it for the clone to be structurally independent.
type document struct {
	title string
	tags  []string
}

func (d document) clone() document {
	c := d
	c.tags = append([]string(nil), d.tags...)
	return c
}

// Prototype clones a document titled by Args[0], edits the clone, and shows
// the original untouched afterwards.
func Prototype(in domain.Input) domain.Trace {
	title := "Quarterly Report"
	if !in.IsZero() {
		title = in.Args[0]
	}

	original := document{title: title, tags: []string{"final"}}
	draft := original.clone()
	draft.title = title + " (draft)"
	draft.tags[0] = "draft"

	return domain.Trace{
		fmt.Sprintf("Original: %q [%s]", original.title, original.tags[0]),
		fmt.Sprintf("Clone edited: %q [%s]", draft.title, draft.tags[0]),
		fmt.Sprintf("Original after clone edit: %q [%s]", original.title, original.tags[0]),
	}
}
