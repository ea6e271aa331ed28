// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec behind ShellExecutor so git invocations carry consistent
// zap logging and lifecycle events, exposes OSCommandRunner for default
// process execution, and defines the typed errors the scanner uses to tell a
// failed query apart from a query that could not run at all.
package execshell
