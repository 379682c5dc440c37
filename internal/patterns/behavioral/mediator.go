package behavioral

import "patternlab/internal/domain"

// mediatorPeers is the fixed chat room of the example. The first member
// sends; the mediator relays to everyone else.
var mediatorPeers = []string{"Alice", "Bob", "Charlie"}

// Mediator relays each input argument as a chat message from the first room
// member through the mediator to the other members.
func Mediator(in domain.Input) domain.Trace {
	messages := in.Args
	if in.IsZero() {
		messages = []string{"Hello"}
	}

	sender := mediatorPeers[0]
	trace := domain.Trace{}
	for _, msg := range messages {
		trace = append(trace, sender+" sends: "+msg)
		for _, peer := range mediatorPeers[1:] {
			trace = append(trace, peer+" receives: "+msg)
		}
	}
	return trace
}
