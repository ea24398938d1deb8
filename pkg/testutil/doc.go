// Package testutil provides helpers shared by texty's tests.
//
// Tests that load configuration or stylesheets from disk call Isolate so
// that neither the developer's XDG directories nor TEXTY_ variables leak
// into the result.
package testutil
