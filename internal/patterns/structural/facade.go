package structural

import "patternlab/internal/domain"

// Facade plays the movie named by Args[0] through the home-theater facade,
// which drives the lights, projector and player subsystems in order.
func Facade(in domain.Input) domain.Trace {
	movie := "Inception"
	if !in.IsZero() {
		movie = in.Args[0]
	}

	return domain.Trace{
		"Dimming lights.",
		"Starting projector.",
		"Playing movie: " + movie + ".",
	}
}
