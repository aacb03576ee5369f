package piecetable

// BufferTag selects one of the two buffers a PieceTable owns.
type BufferTag uint8

const (
	// Original identifies the buffer written once at construction.
	Original BufferTag = iota
	// Add identifies the append-only buffer that grows with every insert.
	Add
)

// String returns a human-readable name for the buffer tag.
func (t BufferTag) String() string {
	if t == Add {
		return "add"
	}
	return "original"
}

// piece is a contiguous view into one buffer, plus a cache of the newline
// offsets it contains. lineStarts holds one entry per '\n' in the piece's
// text, each the byte offset (relative to the piece's own start) of the
// character immediately following that newline.
//
// Invariants: start+length <= len(buffer); every entry of lineStarts lies
// in (0, length]; lineStarts is strictly increasing.
type piece struct {
	buffer     BufferTag
	start      int
	length     int
	lineStarts []int
}

// newPiece builds a piece over buf[start:start+length], computing its
// line-start cache from the given text (the exact slice the piece views).
func newPiece(buf BufferTag, start, length int, text string) piece {
	return piece{
		buffer:     buf,
		start:      start,
		length:     length,
		lineStarts: computeLineStarts(text),
	}
}

// computeLineStarts scans text for '\n' bytes and records, for each one,
// the offset of the byte immediately following it.
func computeLineStarts(text string) []int {
	var starts []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineCount returns the number of line breaks this piece contributes.
func (p piece) lineCount() int {
	return len(p.lineStarts)
}
