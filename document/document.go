// Package document provides the Document façade: the single entry point a
// host binding layer uses to drive the editing core. It composes a
// piecetable.PieceTable (storage) with a history.History (undo/redo),
// validates every edit's bounds before touching the table, and captures
// the reversible history.Operation the edit implies.
//
// Document is not safe for concurrent use, and its methods are not
// reentrant — it has no locks, by design (see spec §5): two Documents
// never share state, and nothing here suspends, blocks, or yields.
package document

import (
	"io"

	"github.com/google/uuid"

	"github.com/seijikohara/teppan/history"
	"github.com/seijikohara/teppan/piecetable"
)

// Position and Range are re-exported so callers need not import
// piecetable directly for the external wire types.
type (
	Position = piecetable.Position
	Range    = piecetable.Range
)

// Document is the main façade over the piece table and its history.
type Document struct {
	id         uuid.UUID
	table      *piecetable.PieceTable
	history    *history.History
	maxHistory int
}

// New creates a Document from the given options. With no options, the
// document starts empty.
func New(opts ...Option) *Document {
	c := newConfig(opts)
	return &Document{
		id:         uuid.New(),
		table:      piecetable.New(c.content),
		history:    history.New(c.maxHistory),
		maxHistory: c.maxHistory,
	}
}

// NewFromReader creates a Document whose initial content is read in full
// from r. Options other than WithContent still apply; WithContent is
// ignored if also supplied, since r is the source of truth.
func NewFromReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	c := newConfig(opts)
	c.content = string(data)

	return &Document{
		id:         uuid.New(),
		table:      piecetable.New(c.content),
		history:    history.New(c.maxHistory),
		maxHistory: c.maxHistory,
	}, nil
}

// ID returns a stable identifier for this document instance, generated
// once at construction. Hosts embedding multiple documents can use it to
// key them without inventing their own identity scheme.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Read operations

// GetText returns the full document content.
func (d *Document) GetText() string {
	return d.table.GetText()
}

// GetLength returns the document's byte length.
func (d *Document) GetLength() int {
	return d.table.GetLength()
}

// GetLineCount returns the document's line count (always >= 1).
func (d *Document) GetLineCount() int {
	return d.table.GetLineCount()
}

// GetLine returns the text of line, without its trailing newline, and
// true. It returns "", false if line is out of range.
func (d *Document) GetLine(line int) (string, bool) {
	return d.table.GetLine(line)
}

// GetLineOffset returns the absolute byte offset of the first character of
// line, or false if line is out of range.
func (d *Document) GetLineOffset(line int) (int, bool) {
	return d.table.GetLineOffset(line)
}

// GetTextRange returns the substring [offset, offset+length), or false if
// the range extends past the end of the document.
func (d *Document) GetTextRange(offset, length int) (string, bool) {
	if offset < 0 || length < 0 || offset+length > d.table.GetLength() {
		return "", false
	}
	return d.table.GetTextRange(offset, length), true
}

// OffsetToPosition converts a byte offset to a (line, column) position.
// The offset is clamped to [0, GetLength()].
func (d *Document) OffsetToPosition(offset int) Position {
	return d.table.OffsetToPosition(offset)
}

// PositionToOffset converts a (line, column) position to a byte offset, or
// returns false if line is out of range. Column is clamped to the line's
// length.
func (d *Document) PositionToOffset(line, column uint32) (int, bool) {
	return d.table.PositionToOffset(line, column)
}

// Write operations

// Insert inserts text at offset. It returns false, without mutating the
// document or touching history, if offset is past the end of the
// document.
func (d *Document) Insert(offset int, text string) bool {
	if offset < 0 || offset > d.table.GetLength() {
		return false
	}
	if len(text) == 0 {
		return true
	}

	op := history.NewInsertOperation(offset, text)
	d.table.Insert(offset, text)
	d.history.Push(op)
	return true
}

// Delete removes the [offset, offset+length) range. It returns false,
// without mutating the document or touching history, if the range extends
// past the end of the document.
func (d *Document) Delete(offset, length int) bool {
	if offset < 0 || length < 0 || offset+length > d.table.GetLength() {
		return false
	}
	if length == 0 {
		return true
	}

	removed := d.table.GetTextRange(offset, length)
	op := history.NewDeleteOperation(offset, removed)
	d.table.Delete(offset, length)
	d.history.Push(op)
	return true
}

// Replace replaces the [offset, offset+length) range with text. It
// returns false, without mutating the document or touching history, if
// the range extends past the end of the document.
func (d *Document) Replace(offset, length int, text string) bool {
	if offset < 0 || length < 0 || offset+length > d.table.GetLength() {
		return false
	}

	removed := d.table.GetTextRange(offset, length)
	op := history.NewReplaceOperation(offset, length, removed, text)
	d.table.Delete(offset, length)
	d.table.Insert(offset, text)
	d.history.Push(op)
	return true
}

// Undo/redo

// Undo reverses the last operation. It returns false if there is nothing
// to undo. Undo bypasses history.Push: it is not itself a new edit, and it
// does not clear the redo stack.
func (d *Document) Undo() bool {
	op, ok := d.history.Undo()
	if !ok {
		return false
	}
	d.apply(op.Invert())
	return true
}

// Redo reapplies the last undone operation. It returns false if there is
// nothing to redo.
func (d *Document) Redo() bool {
	op, ok := d.history.Redo()
	if !ok {
		return false
	}
	d.apply(op)
	return true
}

// apply performs the forward mutation an Operation describes, without
// touching history — used by both Redo (forward) and Undo (via Invert).
func (d *Document) apply(op *history.Operation) {
	switch op.Kind {
	case history.KindInsert:
		d.table.Insert(op.Offset, op.Text)
	case history.KindDelete:
		d.table.Delete(op.Offset, op.Length)
	case history.KindReplace:
		d.table.Delete(op.Offset, len(op.OldText))
		d.table.Insert(op.Offset, op.Text)
	}
}

// CanUndo reports whether Undo would succeed.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// UndoCount returns the number of operations available to undo.
func (d *Document) UndoCount() int {
	return d.history.UndoCount()
}

// RedoCount returns the number of operations available to redo.
func (d *Document) RedoCount() int {
	return d.history.RedoCount()
}

// ClearHistory discards all undo and redo state without touching the
// document's text.
func (d *Document) ClearHistory() {
	d.history.Clear()
}

// Rebuild returns a new Document with the same text, the same ID, and
// empty history. It is the supported way to reclaim the memory held by
// the Add buffer's monotonic growth (spec §5, §9): the Add buffer itself
// is never garbage collected within a Document's lifetime, but a host that
// has done heavy editing can periodically call Rebuild to start over with
// a single Original-buffer piece.
func (d *Document) Rebuild() *Document {
	return &Document{
		id:         d.id,
		table:      piecetable.New(d.table.GetText()),
		history:    history.New(d.maxHistory),
		maxHistory: d.maxHistory,
	}
}
