package behavioral

import "patternlab/internal/domain"

// orderState is the closed state set of the order example. Transitions are
// dispatched through a single switch rather than per-state objects.
type orderState int

const (
	orderPlaced orderState = iota
	orderShipped
	orderDelivered
)

// State drives the order through the input transitions. Each argument is
// "forward" or "back". The trace opens with the starting state; a forward
// request at Delivered or a back request at Placed leaves the state
// unchanged and reports the terminal condition. Unrecognized transition
// tokens are reported and skipped.
func State(in domain.Input) domain.Trace {
	transitions := in.Args
	if in.IsZero() {
		transitions = []string{"forward", "forward"}
	}

	state := orderPlaced
	trace := domain.Trace{"Order placed."}

	for _, t := range transitions {
		switch t {
		case "forward":
			switch state {
			case orderPlaced:
				state = orderShipped
				trace = append(trace, "Order shipped.")
			case orderShipped:
				state = orderDelivered
				trace = append(trace, "Order delivered.")
			case orderDelivered:
				trace = append(trace, "Order already delivered.")
			}
		case "back":
			switch state {
			case orderDelivered:
				state = orderShipped
				trace = append(trace, "Order shipped.")
			case orderShipped:
				state = orderPlaced
				trace = append(trace, "Order placed.")
			case orderPlaced:
				trace = append(trace, "Order already placed.")
			}
		default:
			trace = append(trace, "Unknown transition: "+t)
		}
	}
	return trace
}
