package events

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vancomm/sweeper/internal/mines"
)

// Executor applies events to a session one at a time.
type Executor struct {
	logger  *slog.Logger
	session *mines.Session
}

func NewExecutor(logger *slog.Logger, session *mines.Session) *Executor {
	return &Executor{logger: logger, session: session}
}

func (x *Executor) Session() *mines.Session {
	return x.session
}

// Execute applies a single event. Errors from the session are returned
// unchanged; the session state is untouched when they occur.
func (x *Executor) Execute(ev Event) error {
	before := x.session.State()
	if err := ev.Apply(x.session); err != nil {
		return err
	}
	after := x.session.State()
	x.logger.Debug("applied event",
		slog.Any("event", ev),
		slog.String("game_id", x.session.GameID().String()),
		slog.String("state", after.String()),
	)
	if before != after {
		x.logger.Info("state changed",
			slog.String("from", before.String()),
			slog.String("to", after.String()),
		)
	}
	return nil
}

// Run reads events line by line and applies them in order. Blank lines and
// lines starting with '#' are skipped. A malformed line stops the run; a
// rejected event is logged and skipped.
func (x *Executor) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		ev, err := Decode(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if err := x.Execute(ev); err != nil {
			x.logger.Warn("event rejected",
				slog.Int("line", n),
				slog.Any("event", ev),
				slog.Any("error", err),
			)
		}
	}
	return scanner.Err()
}
