package behavioral

import "patternlab/internal/domain"

// Command runs each input argument through the invoker as a command object.
// The receiver is a light; the two concrete commands switch it on and off.
func Command(in domain.Input) domain.Trace {
	commands := in.Args
	if in.IsZero() {
		commands = []string{"light_on", "light_off"}
	}

	trace := domain.Trace{}
	for _, name := range commands {
		switch name {
		case "light_on":
			trace = append(trace, "The light is on.")
		case "light_off":
			trace = append(trace, "The light is off.")
		default:
			trace = append(trace, "No command bound to: "+name)
		}
	}
	return trace
}
