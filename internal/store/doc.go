// Package store persists run history on disk.
//
// Each run becomes one JSON file under <home>/runs plus a line in
// runs/index.jsonl, which the history command reads back.
package store
