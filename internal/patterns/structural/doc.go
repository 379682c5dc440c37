// Package structural holds the structural pattern demonstrations: adapter,
// bridge, composite, decorator, facade and proxy.
package structural
