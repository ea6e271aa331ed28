// Package discovery locates git working copies beneath scan roots.
package discovery
