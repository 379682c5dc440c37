package behavioral

import "patternlab/internal/domain"

// paymentStrategies is the closed strategy set of the checkout example.
var paymentStrategies = map[string]string{
	"credit_card": "Credit Card",
	"paypal":      "PayPal",
	"crypto":      "Crypto Wallet",
}

// Strategy checks out a fixed $100 cart once per input argument, selecting
// the payment strategy named by the argument.
func Strategy(in domain.Input) domain.Trace {
	selected := in.Args
	if in.IsZero() {
		selected = []string{"credit_card"}
	}

	trace := domain.Trace{}
	for _, name := range selected {
		label, ok := paymentStrategies[name]
		if !ok {
			trace = append(trace, "No payment strategy named: "+name)
			continue
		}
		trace = append(trace, "Paid $100 using "+label+".")
	}
	return trace
}
