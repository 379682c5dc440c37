package domain

import "time"

// ID names one pattern demonstration in the catalog, e.g. "observer".
type ID string

// Category groups catalog entries the way the textbooks do.
type Category string

const (
	Behavioral Category = "behavioral"
	Creational Category = "creational"
	Structural Category = "structural"
)

// Input carries a demonstration's payload. Args holds the raw CLI arguments;
// each entry documents how it reads them (one token, a message list, a
// transition list). An empty Args means the entry's default input.
type Input struct {
	Args []string
}

// IsZero reports whether no payload was supplied.
func (in Input) IsZero() bool { return len(in.Args) == 0 }

// Trace is the ordered sequence of literal lines a demonstration prints.
type Trace []string

// RunFunc produces the demonstration trace for an input. Demonstrations are
// pure: no I/O, no shared state, no failure modes.
type RunFunc func(Input) Trace

// Entry is one catalog entry: identity, prose, and the run function.
type Entry struct {
	ID           ID
	Category     Category
	Summary      string
	InputHint    string
	DefaultInput Input
	Run          RunFunc
}

// RunRecord is a persisted history record of one completed run.
type RunRecord struct {
	ID        string        `json:"id"`
	Pattern   ID            `json:"pattern"`
	Args      []string      `json:"args,omitempty"`
	Trace     Trace         `json:"trace"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
}
