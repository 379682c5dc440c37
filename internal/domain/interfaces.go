package domain

// Registry is the catalog: a closed, ordered set of entries.
type Registry interface {
	// Lookup returns the entry for id, or an *UnknownPatternError.
	Lookup(id ID) (Entry, error)
	// Entries returns all entries in catalog order.
	Entries() []Entry
}

// HistoryStore persists completed run records.
type HistoryStore interface {
	Append(rec RunRecord) (string, error)
	Recent(n int) ([]RunRecord, error)
}

// Runner resolves an entry and executes it.
type Runner interface {
	Run(id ID, in Input) (Trace, error)
}
