package piecetable

import "strings"

// PieceTable is the document storage core. It owns two buffers — an
// Original buffer written once at construction and an append-only Add
// buffer — and an ordered list of pieces whose concatenation is the
// current document text.
//
// PieceTable has no notion of undo/redo or validated bounds; callers that
// pass offsets outside [0, GetLength()] to Insert or Delete get undefined
// results. The document package builds bounds checking and history on top
// of this type.
type PieceTable struct {
	original   string
	addBuffer  []byte
	pieces     []piece
	totalLen   int
	lineCount  int
}

// New creates a piece table over the given initial content. The content
// becomes the Original buffer and is never copied or mutated again.
func New(initial string) *PieceTable {
	pt := &PieceTable{
		original:  initial,
		lineCount: strings.Count(initial, "\n") + 1,
	}
	if len(initial) > 0 {
		pt.pieces = []piece{newPiece(Original, 0, len(initial), initial)}
		pt.totalLen = len(initial)
	}
	return pt
}

// sliceOf returns the bytes [start, start+length) of the named buffer as a
// string, without copying the Original buffer (a Go string slice is a
// view) and copying only the requested span of the Add buffer.
func (pt *PieceTable) sliceOf(tag BufferTag, start, length int) string {
	if tag == Original {
		return pt.original[start : start+length]
	}
	return string(pt.addBuffer[start : start+length])
}

func (pt *PieceTable) textOf(p piece) string {
	return pt.sliceOf(p.buffer, p.start, p.length)
}

// GetText concatenates every piece in document order.
func (pt *PieceTable) GetText() string {
	var b strings.Builder
	b.Grow(pt.totalLen)
	for _, p := range pt.pieces {
		b.WriteString(pt.textOf(p))
	}
	return b.String()
}

// GetLength returns the cached total byte length of the document.
func (pt *PieceTable) GetLength() int {
	return pt.totalLen
}

// GetLineCount returns the cached line count (always >= 1).
func (pt *PieceTable) GetLineCount() int {
	return pt.lineCount
}

// GetTextRange returns the substring [offset, offset+length) of the
// document. A zero length returns the empty string. The caller is
// responsible for ensuring the range lies within the document; an
// out-of-range request is clamped by the piece walk rather than rejected
// (the document façade enforces real bounds checking before calling).
func (pt *PieceTable) GetTextRange(offset, length int) string {
	if length == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(length)
	current := 0
	end := offset + length

	for _, p := range pt.pieces {
		pieceEnd := current + p.length

		if pieceEnd <= offset {
			current = pieceEnd
			continue
		}
		if current >= end {
			break
		}

		startInPiece := 0
		if offset > current {
			startInPiece = offset - current
		}
		endInPiece := p.length
		if end < pieceEnd {
			endInPiece = end - current
		}

		text := pt.textOf(p)
		b.WriteString(text[startInPiece:endInPiece])

		current = pieceEnd
	}

	return b.String()
}

// GetLine returns the text of the given line, without its trailing '\n',
// and true. It returns "", false if line is out of range.
func (pt *PieceTable) GetLine(line int) (string, bool) {
	if line >= pt.lineCount {
		return "", false
	}

	start, ok := pt.GetLineOffset(line)
	if !ok {
		return "", false
	}

	var end int
	if next, ok := pt.GetLineOffset(line + 1); ok {
		end = next
	} else {
		end = pt.totalLen
	}

	text := pt.GetTextRange(start, end-start)
	text = strings.TrimSuffix(text, "\n")
	return text, true
}

// GetLineOffset returns the absolute byte offset of the first character of
// line, or false if line is out of range. Line 0 is always offset 0.
func (pt *PieceTable) GetLineOffset(line int) (int, bool) {
	if line == 0 {
		return 0, true
	}
	if line >= pt.lineCount {
		return 0, false
	}

	current := 0
	seen := 0
	for _, p := range pt.pieces {
		for _, ls := range p.lineStarts {
			seen++
			if seen == line {
				return current + ls, true
			}
		}
		current += p.length
	}

	return 0, false
}

// OffsetToPosition converts a byte offset to a (line, column) position.
// The offset is clamped to [0, GetLength()].
func (pt *PieceTable) OffsetToPosition(offset int) Position {
	if offset <= 0 {
		return Zero()
	}

	clamped := offset
	if clamped > pt.totalLen {
		clamped = pt.totalLen
	}

	var line uint32
	lastLineStart := 0
	current := 0

	for _, p := range pt.pieces {
		for _, ls := range p.lineStarts {
			abs := current + ls
			if abs <= clamped {
				line++
				lastLineStart = abs
			} else {
				break
			}
		}
		current += p.length
		if current >= clamped {
			break
		}
	}

	return Position{Line: line, Column: uint32(clamped - lastLineStart)}
}

// PositionToOffset converts a (line, column) position to a byte offset.
// Column is clamped to the length of the (newline-stripped) line text. It
// returns false if line is out of range.
func (pt *PieceTable) PositionToOffset(line, column uint32) (int, bool) {
	lineOffset, ok := pt.GetLineOffset(int(line))
	if !ok {
		return 0, false
	}

	lineText, ok := pt.GetLine(int(line))
	if !ok {
		return 0, false
	}

	maxColumn := uint32(len(lineText))
	clamped := column
	if clamped > maxColumn {
		clamped = maxColumn
	}

	return lineOffset + int(clamped), true
}

// Insert splices text into the document at offset, growing the Add buffer
// and updating the piece list, total length, and line count. Inserting
// empty text is a no-op.
func (pt *PieceTable) Insert(offset int, text string) {
	if len(text) == 0 {
		return
	}

	addStart := len(pt.addBuffer)
	pt.addBuffer = append(pt.addBuffer, text...)

	newPiece := newPiece(Add, addStart, len(text), text)

	if len(pt.pieces) == 0 {
		pt.pieces = append(pt.pieces, newPiece)
	} else {
		pt.insertPieceAt(offset, newPiece)
	}

	pt.totalLen += len(text)
	pt.lineCount += newPiece.lineCount()
}

// insertPieceAt splices newPiece into pt.pieces so that it begins at
// document offset, splitting an existing piece if offset falls strictly
// inside it.
func (pt *PieceTable) insertPieceAt(offset int, newPiece piece) {
	if offset <= 0 {
		pt.pieces = append([]piece{newPiece}, pt.pieces...)
		return
	}
	if offset >= pt.totalLen {
		pt.pieces = append(pt.pieces, newPiece)
		return
	}

	current := 0
	for i, p := range pt.pieces {
		pieceEnd := current + p.length

		if offset == current {
			pt.pieces = append(pt.pieces[:i], append([]piece{newPiece}, pt.pieces[i:]...)...)
			return
		}

		if offset > current && offset < pieceEnd {
			splitPoint := offset - current
			left := pt.splitPiece(p, 0, splitPoint)
			right := pt.splitPiece(p, splitPoint, p.length-splitPoint)

			replacement := make([]piece, 0, len(pt.pieces)+2)
			replacement = append(replacement, pt.pieces[:i]...)
			replacement = append(replacement, left, newPiece, right)
			replacement = append(replacement, pt.pieces[i+1:]...)
			pt.pieces = replacement
			return
		}

		if offset == pieceEnd {
			pt.pieces = append(pt.pieces[:i+1], append([]piece{newPiece}, pt.pieces[i+1:]...)...)
			return
		}

		current = pieceEnd
	}

	pt.pieces = append(pt.pieces, newPiece)
}

// Delete removes the [offset, offset+length) byte range from the
// document. A zero length, or an offset at or past the end of the
// document, is a no-op.
func (pt *PieceTable) Delete(offset, length int) {
	if length == 0 || offset >= pt.totalLen {
		return
	}

	deletedLines := strings.Count(pt.GetTextRange(offset, length), "\n")

	pt.deleteRange(offset, length)

	pt.totalLen -= length
	pt.lineCount -= deletedLines
}

// deleteRange rebuilds pt.pieces with [offset, offset+length) removed,
// splitting any piece that straddles a boundary of the deleted range.
func (pt *PieceTable) deleteRange(offset, length int) {
	end := offset + length
	newPieces := make([]piece, 0, len(pt.pieces))
	current := 0

	for _, p := range pt.pieces {
		pieceStart := current
		pieceEnd := current + p.length

		switch {
		case pieceEnd <= offset || pieceStart >= end:
			// Entirely outside the delete range: keep as-is.
			newPieces = append(newPieces, p)
		case pieceStart >= offset && pieceEnd <= end:
			// Entirely inside the delete range: drop it.
		case pieceStart < offset && pieceEnd > end:
			// Delete range sits inside this piece: keep both edges.
			leftLen := offset - pieceStart
			rightStart := end - pieceStart
			rightLen := pieceEnd - end
			newPieces = append(newPieces, pt.splitPiece(p, 0, leftLen))
			newPieces = append(newPieces, pt.splitPiece(p, rightStart, rightLen))
		case pieceStart < offset:
			// Delete range starts inside this piece: keep the left edge.
			keepLen := offset - pieceStart
			newPieces = append(newPieces, pt.splitPiece(p, 0, keepLen))
		default:
			// Delete range ends inside this piece: keep the right edge.
			skipLen := end - pieceStart
			keepLen := p.length - skipLen
			newPieces = append(newPieces, pt.splitPiece(p, skipLen, keepLen))
		}

		current = pieceEnd
	}

	pt.pieces = newPieces
}

// splitPiece carves out [offset, offset+length) of p's own view (offset
// relative to p.start) as a new, independently-cached piece. A zero-length
// result is never appended by callers, but splitPiece itself is a pure
// constructor and leaves that filtering to the caller.
func (pt *PieceTable) splitPiece(p piece, offset, length int) piece {
	text := pt.sliceOf(p.buffer, p.start+offset, length)
	return newPiece(p.buffer, p.start+offset, length, text)
}
