// Package assistant implements the interactive command loop of the address
// book bot: it parses input lines, dispatches them to command handlers and
// turns every handler error into a single printed line.
package assistant

import (
	"context"
	"io"
)

// Session runs an interactive conversation over the address book.
type Session interface {
	// Handle executes a single input line. It reports whether the session has
	// ended; err is only set when ending the session failed to persist the book.
	Handle(ctx context.Context, line string) (done bool, err error)
	// Run greets the user and handles lines from in until close/exit or the
	// end of input.
	Run(ctx context.Context, in io.Reader) error
}
