package structural

import (
	"strings"

	"patternlab/internal/domain"
)

// legacyPrinter only understands uppercase text wrapped in double angle
// brackets. The adapter converts a modern request into that format.
type legacyPrinter struct{}

func (legacyPrinter) printLegacy(text string) string {
	return "Legacy printer prints: <<" + text + ">>"
}

// Adapter sends the request in Args[0] through the adapter to the legacy
// printer.
func Adapter(in domain.Input) domain.Trace {
	request := "hello"
	if !in.IsZero() {
		request = in.Args[0]
	}

	adapted := strings.ToUpper(request)
	return domain.Trace{
		"Modern request: " + request,
		legacyPrinter{}.printLegacy(adapted),
	}
}
