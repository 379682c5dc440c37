package structural

import "patternlab/internal/domain"

// Proxy checks the role in Args[0] before letting the request through to
// the real service. Only admins pass.
func Proxy(in domain.Input) domain.Trace {
	role := "admin"
	if !in.IsZero() {
		role = in.Args[0]
	}

	if role != "admin" {
		return domain.Trace{"Proxy: access denied for " + role + "."}
	}
	return domain.Trace{
		"Proxy: access granted for " + role + ".",
		"Service: handling request.",
	}
}
