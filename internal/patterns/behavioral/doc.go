// Package behavioral holds the behavioral pattern demonstrations: chain of
// responsibility, command, iterator, mediator, memento, observer, state,
// strategy, template method and visitor.
//
// Every demonstration is a pure function from an input payload to a trace of
// literal output lines. Closed case sets (state, visitor) are expressed as
// tagged variants over a single switch rather than interface hierarchies.
package behavioral
