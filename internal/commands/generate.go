// Package commands implements genelection CLI commands.
package commands

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/NielsdaWheelz/genelection/internal/errors"
	"github.com/NielsdaWheelz/genelection/internal/fixture"
)

// GenerateOpts holds options for the generate command.
type GenerateOpts struct {
	// Variant is the preset name; empty selects fixture.DefaultVariant.
	Variant string

	// Now reads the clock. Defaults to time.Now.
	Now func() time.Time

	// Logger receives debug output. Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// Generate prints one election fixture to stdout.
// The clock is read exactly once; start and end both derive from that reading.
func Generate(ctx context.Context, opts GenerateOpts, stdout, stderr io.Writer) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	v, err := fixture.LookupVariant(opts.Variant)
	if err != nil {
		return err
	}

	t := now()
	if t.IsZero() {
		return errors.NewWithDetails(
			errors.EClockUnavailable,
			"clock returned the zero time",
			map[string]string{"op": "generate", "variant": v.Name},
		)
	}

	election := fixture.Generate(t, v)
	logger.DebugContext(ctx, "generated election",
		slog.String("variant", v.Name),
		slog.Time("now", t),
		slog.Int64("start", election.Start),
		slog.Int64("end", election.End),
		slog.String("encoding", v.Encoding.String()),
		slog.String("wrapper", v.Wrapper),
	)

	if err := fixture.Validate(election, t); err != nil {
		if fe, ok := errors.AsFixtureError(err); ok {
			fe.Details["variant"] = v.Name
		}
		return err
	}

	_ = stderr
	return fixture.Encode(stdout, election, v)
}
