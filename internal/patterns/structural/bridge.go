package structural

import "patternlab/internal/domain"

// bridgeDevices is the closed implementation set behind the remote
// abstraction.
var bridgeDevices = map[string]string{
	"tv":    "TV",
	"radio": "Radio",
}

// Bridge powers on the device named by Args[0] through the remote, which
// holds the device behind the abstraction boundary.
func Bridge(in domain.Input) domain.Trace {
	device := "tv"
	if !in.IsZero() {
		device = in.Args[0]
	}

	label, ok := bridgeDevices[device]
	if !ok {
		return domain.Trace{"No device named: " + device}
	}
	return domain.Trace{
		"Remote: power on.",
		label + " is now on.",
	}
}
