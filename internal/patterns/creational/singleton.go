package creational

import (
	"fmt"

	"patternlab/internal/domain"
)

// appConfig is the shared value of the singleton example. It is constructed
// exactly once, at one defined creation point, and handed to every consumer
// explicitly.
type appConfig struct {
	app string
}

func newAppConfig(app string) *appConfig { return &appConfig{app: app} }

// Singleton constructs the configuration named by Args[0] once and passes
// the same value to two services, which verify they share it.
func Singleton(in domain.Input) domain.Trace {
	app := "patternlab"
	if !in.IsZero() {
		app = in.Args[0]
	}

	cfg := newAppConfig(app)
	reporting := cfg
	billing := cfg

	return domain.Trace{
		"Config created once: app=" + cfg.app,
		"Reporting service reads app=" + reporting.app,
		"Billing service reads app=" + billing.app,
		fmt.Sprintf("Both services share one value: %t", reporting == billing),
	}
}
