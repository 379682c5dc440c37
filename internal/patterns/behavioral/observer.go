package behavioral

import "patternlab/internal/domain"

// Observer builds the observer demonstration with the given subscriber
// names. Each input argument is one published message; every subscriber
// receives every message, in registration order.
func Observer(subscribers []string) domain.RunFunc {
	return func(in domain.Input) domain.Trace {
		messages := in.Args
		if in.IsZero() {
			messages = []string{"New update available!"}
		}

		trace := domain.Trace{}
		for _, msg := range messages {
			for _, sub := range subscribers {
				trace = append(trace, sub+" received message: "+msg)
			}
		}
		return trace
	}
}
