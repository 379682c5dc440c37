package behavioral

import "patternlab/internal/domain"

// handler is one link in the chain: it handles requests matching its keyword
// and passes everything else along.
type handler struct {
	keyword string
	label   string
}

// chain is the fixed handler chain of the textbook example: Moderator first,
// Admin second.
var chain = []handler{
	{keyword: "moderator", label: "Moderator"},
	{keyword: "admin", label: "Admin"},
}

// ChainOfResponsibility walks the request (Args[0]) down the handler chain.
// The first matching handler emits a line and stops the walk; a request no
// handler matches falls off the end and the trace stays empty.
func ChainOfResponsibility(in domain.Input) domain.Trace {
	request := "admin"
	if !in.IsZero() {
		request = in.Args[0]
	}

	trace := domain.Trace{}
	for _, h := range chain {
		if request == h.keyword {
			trace = append(trace, "Request handled by "+h.label+".")
			break
		}
	}
	return trace
}
