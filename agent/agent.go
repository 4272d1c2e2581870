package agent

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"nogo/game"
)

// ErrInvalidArgument marks a malformed agent configuration.
var ErrInvalidArgument = errors.New("invalid argument")

type Agent interface {
	OpenEpisode(flag string)
	CloseEpisode(flag string)
	// TakeAction returns the move to play on b, or game.None when there is none
	TakeAction(b game.Board) game.Move
	CheckForWin(b game.Board) bool
	Name() string
	Role() string
}

// Meta is the key-value property store parsed from "key=value" arguments.
type Meta struct {
	props map[string]string
}

// ParseMeta splits args on whitespace into key=value pairs. A token without
// "=" maps the token to itself; later keys override earlier ones.
func ParseMeta(args string) Meta {
	m := Meta{props: map[string]string{}}
	for _, pair := range strings.Fields("name=unknown role=unknown " + args) {
		m.Notify(pair)
	}
	return m
}

func (m Meta) Property(key string) (string, error) {
	value, ok := m.props[key]
	if !ok {
		return "", errors.Wrapf(ErrInvalidArgument, "missing property %q", key)
	}
	return value, nil
}

// Int reads a numeric property, truncating fractional values.
func (m Meta) Int(key string) (int64, error) {
	value, err := m.Property(key)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidArgument, "property %s=%s is not a number", key, value)
	}
	return int64(f), nil
}

func (m Meta) Has(key string) bool {
	_, ok := m.props[key]
	return ok
}

// Notify sets a property from a "key=value" message.
func (m Meta) Notify(msg string) {
	key, value, found := strings.Cut(msg, "=")
	if !found {
		value = msg
	}
	m.props[key] = value
}

func (m Meta) Name() string {
	return m.props["name"]
}

func (m Meta) Role() string {
	return m.props["role"]
}
