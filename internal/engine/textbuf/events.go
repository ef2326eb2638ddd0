package textbuf

import "github.com/dshills/keystorm-core/internal/engine/fixup"

// EditType tags why an edit happened (spec.md 6).
type EditType int

const (
	EditNormal EditType = iota
	EditUndo
	EditRedo
	EditExternal
)

func (t EditType) String() string {
	switch t {
	case EditUndo:
		return "undo"
	case EditRedo:
		return "redo"
	case EditExternal:
		return "external"
	default:
		return "normal"
	}
}

// ModifyEvent is published around each individual Modification within
// an edit (spec.md 4.2: begin_modify / end_modify).
type ModifyEvent struct {
	Position      int64
	ErasedBytes   []byte
	InsertedBytes []byte
}

// EditEvent is published once per edit batch (spec.md 4.2, 6:
// begin_edit / end_edit). Journal is only populated on EndEdit.
type EditEvent struct {
	Type     EditType
	SourceID int64
	Journal  []fixup.Entry
}

// Token identifies a subscription, per the Design Notes' "event
// subscription with tokens" pattern: subscribers are referenced only
// by an opaque token so the core holds no strong pointer into caller
// state.
type Token int64

// subscribers is a minimal generic token-addressed callback registry,
// reused for each of the buffer's four event kinds rather than
// hand-rolling the same bookkeeping four times.
type subscribers[F any] struct {
	next int64
	fns  map[Token]F
}

func newSubscribers[F any]() subscribers[F] {
	return subscribers[F]{fns: make(map[Token]F)}
}

func (s *subscribers[F]) subscribe(fn F) Token {
	s.next++
	tok := Token(s.next)
	s.fns[tok] = fn
	return tok
}

func (s *subscribers[F]) unsubscribe(tok Token) {
	delete(s.fns, tok)
}

// Events groups the buffer's four publishable event streams.
type Events struct {
	beginModify subscribers[func(ModifyEvent)]
	endModify   subscribers[func(ModifyEvent)]
	beginEdit   subscribers[func(EditEvent)]
	endEdit     subscribers[func(EditEvent)]
}

func newEvents() Events {
	return Events{
		beginModify: newSubscribers[func(ModifyEvent)](),
		endModify:   newSubscribers[func(ModifyEvent)](),
		beginEdit:   newSubscribers[func(EditEvent)](),
		endEdit:     newSubscribers[func(EditEvent)](),
	}
}

// SubscribeBeginModify registers fn to run before each modification
// is applied.
func (b *Buffer) SubscribeBeginModify(fn func(ModifyEvent)) Token {
	return b.events.beginModify.subscribe(fn)
}

// UnsubscribeBeginModify removes a subscription from SubscribeBeginModify.
func (b *Buffer) UnsubscribeBeginModify(tok Token) { b.events.beginModify.unsubscribe(tok) }

// SubscribeEndModify registers fn to run after each modification is applied.
func (b *Buffer) SubscribeEndModify(fn func(ModifyEvent)) Token {
	return b.events.endModify.subscribe(fn)
}

// UnsubscribeEndModify removes a subscription from SubscribeEndModify.
func (b *Buffer) UnsubscribeEndModify(tok Token) { b.events.endModify.unsubscribe(tok) }

// SubscribeBeginEdit registers fn to run before an edit batch starts.
func (b *Buffer) SubscribeBeginEdit(fn func(EditEvent)) Token {
	return b.events.beginEdit.subscribe(fn)
}

// UnsubscribeBeginEdit removes a subscription from SubscribeBeginEdit.
func (b *Buffer) UnsubscribeBeginEdit(tok Token) { b.events.beginEdit.unsubscribe(tok) }

// SubscribeEndEdit registers fn to run after an edit batch completes,
// with the full position journal, for observers that patch themselves
// once per edit batch (spec.md 4.6). In this module interp keeps its
// index current from SubscribeEndModify instead, and edit.Pipeline
// drives caret, theme and fold fixup itself after each call.
func (b *Buffer) SubscribeEndEdit(fn func(EditEvent)) Token {
	return b.events.endEdit.subscribe(fn)
}

// UnsubscribeEndEdit removes a subscription from SubscribeEndEdit.
func (b *Buffer) UnsubscribeEndEdit(tok Token) { b.events.endEdit.unsubscribe(tok) }

func (b *Buffer) publishBeginModify(e ModifyEvent) {
	for _, fn := range b.events.beginModify.fns {
		fn(e)
	}
}

func (b *Buffer) publishEndModify(e ModifyEvent) {
	for _, fn := range b.events.endModify.fns {
		fn(e)
	}
}

func (b *Buffer) publishBeginEdit(e EditEvent) {
	for _, fn := range b.events.beginEdit.fns {
		fn(e)
	}
}

func (b *Buffer) publishEndEdit(e EditEvent) {
	for _, fn := range b.events.endEdit.fns {
		fn(e)
	}
}
