package events

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

var ErrBadEvent = errors.New("bad event")

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type verb string

const (
	verbNew    verb = "new"
	verbReveal verb = "reveal"
	verbFlag   verb = "flag"
)

var shortVerbs = map[string]verb{
	"n": verbNew,
	"o": verbReveal,
	"f": verbFlag,
}

// Decode parses one event line. Arguments are either url-encoded
// ("reveal row=3&col=4", "new difficulty=Easy") or positional
// ("o 3 4", "n Easy").
func Decode(line string) (Event, error) {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	args = strings.TrimSpace(args)

	v := verb(strings.ToLower(name))
	if short, ok := shortVerbs[string(v)]; ok {
		v = short
	}

	var (
		ev  Event
		err error
	)
	switch v {
	case verbNew:
		ev, err = decodeNewGame(args)
	case verbReveal:
		var e RevealAt
		e.Row, e.Col, err = decodeRowCol(args)
		ev = e
	case verbFlag:
		var e FlagAt
		e.Row, e.Col, err = decodeRowCol(args)
		ev = e
	default:
		return nil, fmt.Errorf("%w: unknown command %q", ErrBadEvent, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadEvent, v, err)
	}
	return ev, nil
}

func decodeNewGame(args string) (Event, error) {
	if args != "" && !strings.Contains(args, "=") {
		return NewGame{Difficulty: args}, nil
	}
	values, err := url.ParseQuery(args)
	if err != nil {
		return nil, err
	}
	var e NewGame
	if err := decoder.Decode(&e, values); err != nil {
		return nil, err
	}
	return e, nil
}

func decodeRowCol(args string) (row int, col int, err error) {
	if !strings.Contains(args, "=") {
		return parseRowCol(strings.Fields(args))
	}
	values, err := url.ParseQuery(args)
	if err != nil {
		return 0, 0, err
	}
	var p RevealAt
	err = decoder.Decode(&p, values)
	return p.Row, p.Col, err
}
