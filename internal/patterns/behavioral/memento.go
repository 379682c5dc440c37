package behavioral

import (
	"fmt"

	"patternlab/internal/domain"
)

// Memento types each input argument into a text editor, snapshotting the
// content before every change, then undoes the last change. The restored
// content is whatever the editor held before the final argument was typed.
func Memento(in domain.Input) domain.Trace {
	edits := in.Args
	if in.IsZero() {
		edits = []string{"draft one", "draft two"}
	}

	type memento struct {
		content string
	}

	var (
		content string
		history []memento
	)

	trace := domain.Trace{}
	for _, text := range edits {
		history = append(history, memento{content: content})
		content = text
		trace = append(trace, "Typed: "+text)
	}

	if n := len(history); n > 0 {
		content = history[n-1].content
		history = history[:n-1]
	}
	trace = append(trace, fmt.Sprintf("Undo: restored %q", content))
	return trace
}
