package creational

import (
	"fmt"

	"patternlab/internal/domain"
)

// computerBuilder accumulates parts step by step; build concatenates them
// into the finished description.
type computerBuilder struct {
	cpu     string
	ram     string
	storage string
}

func (b *computerBuilder) withCPU(c string) *computerBuilder     { b.cpu = c; return b }
func (b *computerBuilder) withRAM(r string) *computerBuilder     { b.ram = r; return b }
func (b *computerBuilder) withStorage(s string) *computerBuilder { b.storage = s; return b }

func (b *computerBuilder) build() string {
	return fmt.Sprintf("Computer: %s CPU, %s RAM, %s storage", b.cpu, b.ram, b.storage)
}

// Builder assembles the preset named by Args[0] ("gaming" or "office")
// through the fluent builder.
func Builder(in domain.Input) domain.Trace {
	preset := "gaming"
	if !in.IsZero() {
		preset = in.Args[0]
	}

	b := &computerBuilder{}
	switch preset {
	case "gaming":
		b.withCPU("8-core").withRAM("32GB").withStorage("1TB")
	case "office":
		b.withCPU("4-core").withRAM("16GB").withStorage("512GB")
	default:
		return domain.Trace{"No preset named: " + preset}
	}

	return domain.Trace{"Assembling " + preset + " build.", b.build()}
}
