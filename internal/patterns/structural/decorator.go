package structural

import (
	"fmt"

	"patternlab/internal/domain"
)

// extraPriceCents is the closed decorator set: each extra wraps the coffee
// and adds its surcharge.
var extraPriceCents = map[string]int{
	"milk":  50,
	"sugar": 25,
	"shot":  75,
}

// Decorator wraps a base espresso with the extras named by the input
// arguments and totals the decorated price. Prices are kept in cents.
func Decorator(in domain.Input) domain.Trace {
	extras := in.Args
	if in.IsZero() {
		extras = []string{"milk", "sugar"}
	}

	total := 200
	trace := domain.Trace{"Espresso: $2.00"}
	for _, e := range extras {
		cents, ok := extraPriceCents[e]
		if !ok {
			trace = append(trace, "Not on the menu: "+e)
			continue
		}
		total += cents
		trace = append(trace, fmt.Sprintf("+ %s: $%d.%02d", e, cents/100, cents%100))
	}
	return append(trace, fmt.Sprintf("Total: $%d.%02d", total/100, total%100))
}
