package behavioral

import "patternlab/internal/domain"

// TemplateMethod brews each input argument ("tea" or "coffee") through the
// shared preparation skeleton. The skeleton fixes the step order; only the
// brew and condiment steps vary per beverage.
func TemplateMethod(in domain.Input) domain.Trace {
	beverages := in.Args
	if in.IsZero() {
		beverages = []string{"tea"}
	}

	trace := domain.Trace{}
	for _, b := range beverages {
		var brew, condiments string
		switch b {
		case "tea":
			brew = "Brewing tea leaves."
			condiments = "Adding lemon."
		case "coffee":
			brew = "Brewing coffee grounds."
			condiments = "Adding sugar and milk."
		default:
			trace = append(trace, "No recipe for: "+b)
			continue
		}
		trace = append(trace,
			"Boiling water.",
			brew,
			"Pouring into cup.",
			condiments,
		)
	}
	return trace
}
