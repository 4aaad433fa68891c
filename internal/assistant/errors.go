package assistant

import (
	"assistant/pkg/logger"
	"assistant/pkg/serrors"
	"context"

	"go.uber.org/zap"
)

// guard wraps cmd so that any error it returns is turned into the line to
// print instead of its reply. Every command goes through it.
func guard(cmd command) func(ctx context.Context, args []string) string {
	return func(ctx context.Context, args []string) string {
		reply, err := cmd.run(ctx, args)
		if err != nil {
			logger.Debug(ctx, "command failed", zap.Strings("args", args), zap.Error(err))

			return errorMessage(err, cmd.usage)
		}

		return reply
	}
}

// errorMessage renders err as a single line for the user.
func errorMessage(err error, usage string) string {
	switch serrors.KindOf(err) {
	case serrors.ErrMissingArgument:
		return "Invalid input. Usage: " + usage
	case serrors.ErrNotFound, serrors.ErrInvalidFormat, serrors.ErrStorage:
		return "Error: " + err.Error()
	default:
		return "An unexpected error occurred: " + err.Error()
	}
}

// requireArgs fails with ErrMissingArgument when fewer than n arguments were given.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return serrors.With(serrors.ErrMissingArgument, "expected %d arguments, got %d", n, len(args))
	}

	return nil
}
