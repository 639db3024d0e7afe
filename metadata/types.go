package metadata

import (
	"github.com/wippyai/cil-codec/cil"
)

// EventType identifies a table change.
type EventType uint8

const (
	EventMemberAdded EventType = iota
	EventMemberRemoved
	EventStringInterned
	EventPlaceholderCreated
)

func (t EventType) String() string {
	switch t {
	case EventMemberAdded:
		return "member_added"
	case EventMemberRemoved:
		return "member_removed"
	case EventStringInterned:
		return "string_interned"
	case EventPlaceholderCreated:
		return "placeholder_created"
	}
	return "unknown"
}

// Event describes a table change. Value is the member or the string literal.
type Event struct {
	Value any
	Token cil.Token
	Type  EventType
}

// Observer receives table change notifications.
// Callbacks run outside the table lock and may call back into the table.
type Observer interface {
	OnTableEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnTableEvent(e Event) { f(e) }

// Ref stands in for a member the table knows only by token.
type Ref struct {
	Token cil.Token
}

func (r *Ref) String() string {
	return "ref " + r.Token.String()
}

// Options configures a Table.
type Options struct {
	// Placeholders makes unknown member tokens resolve to *Ref.
	Placeholders bool
}

// DefaultOptions returns the default table configuration.
func DefaultOptions() Options {
	return Options{}
}
