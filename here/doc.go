// Package here stamps call sites as file:line:column, optionally followed by a
// message, for use in log lines and error values.
//
//	log.Println(here.Loc())                       // /src/app/main.go:42:14
//	log.Println(here.Msg("cache miss"))           // /src/app/main.go:43:14: cache miss
//	return here.Errorf("user %q not found", name) // /src/app/main.go:44:9: user "bob" not found
//
// File and line come from the runtime. The runtime does not record columns, so
// the column is found by reading the calling line from the source file and
// locating the expression that invoked the helper, such as here.Msg. It is 1
// when the source is not available, for example in binaries built with
// -trimpath. Results are cached per call site.
package here
