// Package piecetable implements the document storage core of an in-memory
// text editing engine: a piece table over two append/read-only buffers.
//
// A PieceTable answers random-access queries — offset to text, line to
// offset, offset to line/column — and mutates under insert and delete
// without copying the document's initial content. The Original buffer is
// written once at construction and never touched again; the Add buffer
// only ever grows. Every Piece is a (buffer, start, length) view into one
// of the two, so neither buffer is ever mutated in place.
//
// Offsets and lengths throughout this package are byte offsets into the
// UTF-8 encoded document, not rune or grapheme counts. Callers are
// responsible for passing offsets that land on character boundaries; the
// table does not validate this.
//
// PieceTable is not safe for concurrent use. A single document has no
// internal locking, and two PieceTable values never share state.
//
// Basic usage:
//
//	pt := piecetable.New("hello")
//	pt.Insert(5, " world")
//	pt.GetText() // "hello world"
package piecetable
