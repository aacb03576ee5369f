package history

// Kind identifies what sort of edit an Operation records.
type Kind uint8

const (
	// KindInsert records text added to the document.
	KindInsert Kind = iota
	// KindDelete records text removed from the document.
	KindDelete
	// KindReplace records text removed and replaced with new text.
	KindReplace
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Operation is an immutable, reversible descriptor of one edit.
//
// Length means something different per Kind, matching exactly what the
// piece table needs to reverse the edit:
//   - Insert: the byte length of Text (what was inserted).
//   - Delete: the byte length removed (len(Text), the removed bytes).
//   - Replace: the byte length of the pre-existing text that was removed —
//     i.e. len(OldText), not len(Text).
//
// OldText is populated only for Replace; it holds the text that was there
// before the edit, needed to undo it.
type Operation struct {
	Kind    Kind
	Offset  int
	Length  int
	Text    string
	OldText string // only meaningful when Kind == KindReplace
}

// NewInsertOperation describes an insertion of text at offset.
func NewInsertOperation(offset int, text string) *Operation {
	return &Operation{
		Kind:   KindInsert,
		Offset: offset,
		Length: len(text),
		Text:   text,
	}
}

// NewDeleteOperation describes a deletion at offset. removedText is the
// text that was removed, retained so the deletion can be undone.
func NewDeleteOperation(offset int, removedText string) *Operation {
	return &Operation{
		Kind:   KindDelete,
		Offset: offset,
		Length: len(removedText),
		Text:   removedText,
	}
}

// NewReplaceOperation describes replacing removedText (removedLength
// bytes of pre-existing text) at offset with newText.
func NewReplaceOperation(offset, removedLength int, removedText, newText string) *Operation {
	return &Operation{
		Kind:    KindReplace,
		Offset:  offset,
		Length:  removedLength,
		Text:    newText,
		OldText: removedText,
	}
}

// Invert returns the Operation that undoes op.
func (op *Operation) Invert() *Operation {
	switch op.Kind {
	case KindInsert:
		return NewDeleteOperation(op.Offset, op.Text)
	case KindDelete:
		return NewInsertOperation(op.Offset, op.Text)
	case KindReplace:
		return NewReplaceOperation(op.Offset, len(op.Text), op.Text, op.OldText)
	default:
		return op
	}
}
