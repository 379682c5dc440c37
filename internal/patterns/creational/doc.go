// Package creational holds the creational pattern demonstrations: abstract
// factory, builder, factory method, prototype and singleton.
//
// The singleton demonstration follows the explicit-construction form: a
// configuration value built once at a defined creation point and passed to
// its consumers, instead of hidden process-wide mutable state.
package creational
