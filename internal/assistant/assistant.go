package assistant

import (
	"assistant/internal/addressbook"
	"assistant/pkg/logger"
	"assistant/pkg/storage"
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

const (
	greeting = "Welcome to the assistant bot!"
	prompt   = "Enter a command: "
	farewell = "Good bye!"
)

// Options configure the assistant's queries.
type Options struct {
	// UpcomingDays is the size of the window used by the birthdays command.
	UpcomingDays int
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// handlerFunc runs a command with its arguments and returns the reply to print.
type handlerFunc func(ctx context.Context, args []string) (string, error)

type command struct {
	// usage is shown when the command is given too few arguments.
	usage string
	run   handlerFunc
}

// assistant is the concrete implementation of the Session interface.
type assistant struct {
	options  Options
	book     *addressbook.Book
	storage  storage.BookStorage
	out      io.Writer
	commands map[string]command
}

// Ensure assistant implements Session.
var _ Session = (*assistant)(nil)

// New creates a session over book that writes its replies to out and saves
// the book to st when the session ends.
func New(book *addressbook.Book, st storage.BookStorage, out io.Writer, options Options) Session {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.UpcomingDays <= 0 {
		options.UpcomingDays = addressbook.DefaultUpcomingDays
	}

	a := &assistant{
		options: options,
		book:    book,
		storage: st,
		out:     out,
	}
	a.commands = a.routes()

	return a
}

func (a *assistant) Run(ctx context.Context, in io.Reader) error {
	a.println(greeting)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				logger.Warn(ctx, "could not read input", zap.Error(err))
			}
			// end of input behaves like exit
			a.println("")

			return a.exit(ctx)
		}

		done, err := a.Handle(ctx, scanner.Text())
		if done {
			return err
		}
	}
}

func (a *assistant) Handle(ctx context.Context, line string) (bool, error) {
	name, args := ParseInput(line)
	switch name {
	case "":
		return false, nil
	case "close", "exit":
		return true, a.exit(ctx)
	}

	cmd, ok := a.commands[name]
	if !ok {
		a.println("Invalid command.")

		return false, nil
	}

	ctx = logger.WithFields(ctx, zap.String("command", name))
	a.println(guard(cmd)(ctx, args))

	return false, nil
}

// exit saves the book and says good bye. A failed save is reported and
// returned, but still ends the session.
func (a *assistant) exit(ctx context.Context) error {
	if err := a.book.Save(ctx, a.storage); err != nil {
		logger.Error(ctx, "could not save address book", zap.Error(err))
		a.println(errorMessage(err, ""))

		return err
	}
	a.println(farewell)

	return nil
}

func (a *assistant) println(s string) {
	fmt.Fprintln(a.out, s)
}
