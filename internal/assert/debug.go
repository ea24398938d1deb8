//go:build textydebug

package assert

const debugBuild = true
