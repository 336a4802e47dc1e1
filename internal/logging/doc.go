// Package logging provides concrete implementations of the tabex.Logger
// interface.
package logging
