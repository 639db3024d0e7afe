package metadata

import (
	"iter"
	"maps"
	"reflect"
	"slices"
	"sync"

	"github.com/wippyai/cil-codec/cil"
	"github.com/wippyai/cil-codec/errors"
)

// Table is an in-memory token table with a user-string heap.
// It implements cil.MetadataResolver and cil.MetadataBuilder.
//
// Members are keyed by identity and must be comparable, typically pointers.
// Observers are called after the table lock is released.
type Table struct {
	members   map[cil.Token]cil.Member
	tokens    map[cil.Member]cil.Token
	nextRID   map[byte]uint32
	heap      *stringHeap
	observers map[int]Observer
	pending   []Event
	options   Options
	nextObs   int
	mu        sync.RWMutex
}

var (
	_ cil.MetadataResolver = (*Table)(nil)
	_ cil.MetadataBuilder  = (*Table)(nil)
)

// NewTable creates an empty table.
func NewTable(opts Options) *Table {
	return &Table{
		members:   make(map[cil.Token]cil.Member),
		tokens:    make(map[cil.Member]cil.Token),
		nextRID:   make(map[byte]uint32),
		heap:      newStringHeap(),
		observers: make(map[int]Observer),
		options:   opts,
	}
}

// Add registers m under token. The token needs a non-zero row id and must
// not be taken.
func (t *Table) Add(token cil.Token, m cil.Member) error {
	if token.RID() == 0 || token.Table() == cil.TableUserString {
		return errors.InvalidToken(errors.NoOffset, "", m, uint32(token))
	}
	if err := checkMember(m); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.unlock()

	if old, ok := t.members[token]; ok {
		if _, placeholder := old.(*Ref); !placeholder {
			return errors.New(errors.PhaseConstruct, errors.KindInvalidInput).
				Value(token).
				Detail("token %s already holds %v", token, old).
				Build()
		}
		delete(t.tokens, old)
	}
	t.insert(token, m)
	return nil
}

// Append registers m under the next free row id of table.
func (t *Table) Append(table byte, m cil.Member) (cil.Token, error) {
	if err := checkMember(m); err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.unlock()

	rid := t.nextRID[table] + 1
	for {
		if rid > 0x00FFFFFF {
			return 0, errors.Overflow(errors.PhaseConstruct, errors.NoOffset, rid, "24-bit row id")
		}
		if _, taken := t.members[cil.NewToken(table, rid)]; !taken {
			break
		}
		rid++
	}
	token := cil.NewToken(table, rid)
	t.insert(token, m)
	return token, nil
}

func checkMember(m cil.Member) error {
	if m == nil {
		return errors.InvalidInput(errors.PhaseConstruct, "nil member")
	}
	if !reflect.TypeOf(m).Comparable() {
		return errors.InvalidInput(errors.PhaseConstruct, "member of type "+reflect.TypeOf(m).String()+" is not comparable")
	}
	return nil
}

func (t *Table) insert(token cil.Token, m cil.Member) {
	if old, ok := t.tokens[m]; ok && old != token {
		delete(t.members, old)
	}
	t.members[token] = m
	t.tokens[m] = token
	if rid := token.RID(); rid > t.nextRID[token.Table()] {
		t.nextRID[token.Table()] = rid
	}
	t.notify(Event{Type: EventMemberAdded, Token: token, Value: m})
}

// Remove drops the member registered under token.
func (t *Table) Remove(token cil.Token) (cil.Member, bool) {
	t.mu.Lock()
	defer t.unlock()

	m, ok := t.members[token]
	if !ok {
		return nil, false
	}
	delete(t.members, token)
	delete(t.tokens, m)
	t.notify(Event{Type: EventMemberRemoved, Token: token, Value: m})
	return m, true
}

// Member returns the member registered under token, ignoring placeholders.
func (t *Table) Member(token cil.Token) (cil.Member, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	m, ok := t.members[token]
	if _, placeholder := m.(*Ref); placeholder {
		return nil, false
	}
	return m, ok
}

// Len returns the number of registered members, placeholders included.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.members)
}

// All yields registered members in token order.
func (t *Table) All() iter.Seq2[cil.Token, cil.Member] {
	t.mu.RLock()
	tokens := slices.Sorted(maps.Keys(t.members))
	members := make([]cil.Member, len(tokens))
	for i, tok := range tokens {
		members[i] = t.members[tok]
	}
	t.mu.RUnlock()

	return func(yield func(cil.Token, cil.Member) bool) {
		for i, tok := range tokens {
			if !yield(tok, members[i]) {
				return
			}
		}
	}
}

// AddString interns s and returns its user-string token.
// A zero token means the heap is full.
func (t *Table) AddString(s string) cil.Token {
	t.mu.Lock()
	defer t.unlock()
	return t.internLocked(s)
}

func (t *Table) internLocked(s string) cil.Token {
	off, added, ok := t.heap.intern(s)
	if !ok {
		return 0
	}
	token := cil.NewToken(cil.TableUserString, off)
	if added {
		t.notify(Event{Type: EventStringInterned, Token: token, Value: s})
	}
	return token
}

// SetString pins s to a user-string token taken from an existing heap.
func (t *Table) SetString(token cil.Token, s string) error {
	if token.Table() != cil.TableUserString || token.RID() == 0 {
		return errors.InvalidToken(errors.NoOffset, "", s, uint32(token))
	}

	t.mu.Lock()
	defer t.unlock()
	t.heap.pin(token.RID(), s)
	t.notify(Event{Type: EventStringInterned, Token: token, Value: s})
	return nil
}

// HeapSize returns the size the user-string heap would occupy.
func (t *Table) HeapSize() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return int(t.heap.size())
}

// ResolveMember implements cil.MetadataResolver.
func (t *Table) ResolveMember(token cil.Token) (cil.Member, bool) {
	t.mu.RLock()
	m, ok := t.members[token]
	t.mu.RUnlock()
	if ok || !t.options.Placeholders || token.RID() == 0 || token.Table() == cil.TableUserString {
		return m, ok
	}

	t.mu.Lock()
	defer t.unlock()
	if m, ok := t.members[token]; ok {
		return m, true
	}
	ref := &Ref{Token: token}
	t.members[token] = ref
	t.tokens[ref] = token
	t.notify(Event{Type: EventPlaceholderCreated, Token: token, Value: ref})
	return ref, true
}

// ResolveString implements cil.MetadataResolver.
func (t *Table) ResolveString(token cil.Token) (string, bool) {
	if token.Table() != cil.TableUserString {
		return "", false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.heap.lookup(token.RID())
}

// MemberToken implements cil.MetadataBuilder. A *Ref always maps to its own token.
func (t *Table) MemberToken(m cil.Member) cil.Token {
	if r, ok := m.(*Ref); ok {
		return r.Token
	}
	if m == nil || !reflect.TypeOf(m).Comparable() {
		return 0
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tokens[m]
}

// StringToken implements cil.MetadataBuilder. Unknown strings are interned.
func (t *Table) StringToken(s string) uint32 {
	t.mu.Lock()
	defer t.unlock()
	return uint32(t.internLocked(s))
}

// Subscribe registers o and returns a function that unregisters it.
func (t *Table) Subscribe(o Observer) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextObs
	t.nextObs++
	t.observers[id] = o
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		delete(t.observers, id)
	}
}

func (t *Table) notify(e Event) {
	if len(t.observers) > 0 {
		t.pending = append(t.pending, e)
	}
}

// unlock releases the write lock, then delivers the events queued under it.
func (t *Table) unlock() {
	events := t.pending
	t.pending = nil
	var observers []Observer
	if len(events) > 0 {
		observers = slices.Collect(maps.Values(t.observers))
	}
	t.mu.Unlock()

	for _, e := range events {
		for _, o := range observers {
			o.OnTableEvent(e)
		}
	}
}
