// Package ui adapts structured command events into console-friendly log lines.
package ui
