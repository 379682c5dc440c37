package creational

import "patternlab/internal/domain"

// widgetFactory produces a matched family of widgets for one theme.
type widgetFactory struct {
	theme string
}

func (f widgetFactory) button() string   { return "Rendering " + f.theme + " button." }
func (f widgetFactory) checkbox() string { return "Rendering " + f.theme + " checkbox." }

// AbstractFactory selects the widget family named by Args[0] ("dark" or
// "light") and renders one widget of each kind from it.
func AbstractFactory(in domain.Input) domain.Trace {
	theme := "dark"
	if !in.IsZero() {
		theme = in.Args[0]
	}
	if theme != "dark" && theme != "light" {
		return domain.Trace{"No widget family for theme: " + theme}
	}

	f := widgetFactory{theme: theme}
	return domain.Trace{f.button(), f.checkbox()}
}
