// Package cli implements the mdinspect command tree.
package cli
