package behavioral

import (
	"fmt"

	"patternlab/internal/domain"
)

// shape is a tagged variant: the shape set is closed, so dispatch is a
// switch on kind instead of double-dispatch through accept methods.
type shape struct {
	kind   string // "square" | "rectangle"
	width  int
	height int
}

// visitorShapes is the fixed shape list the visitors walk.
var visitorShapes = []shape{
	{kind: "square", width: 3, height: 3},
	{kind: "rectangle", width: 3, height: 4},
}

// Visitor applies the visitor named by each input argument ("draw" or
// "area") to the fixed shape list.
func Visitor(in domain.Input) domain.Trace {
	visitors := in.Args
	if in.IsZero() {
		visitors = []string{"draw"}
	}

	trace := domain.Trace{}
	for _, v := range visitors {
		switch v {
		case "draw":
			for _, s := range visitorShapes {
				trace = append(trace, "Drawing a "+s.kind+".")
			}
		case "area":
			for _, s := range visitorShapes {
				name := "Square"
				if s.kind == "rectangle" {
					name = "Rectangle"
				}
				trace = append(trace, fmt.Sprintf("%s area: %d", name, s.width*s.height))
			}
		default:
			trace = append(trace, "No visitor named: "+v)
		}
	}
	return trace
}
