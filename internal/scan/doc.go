// Package scan discovers git working copies beneath configured roots and
// reports whether each one is clean, carries unstaged changes, or has commits
// that still need a push.
package scan
