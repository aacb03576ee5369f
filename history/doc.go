// Package history provides the bounded undo/redo stack for the document
// engine.
//
// An Operation is an immutable, reversible descriptor of one edit: what
// kind it was (insert, delete, replace), where it happened, and the text
// needed to reverse it. History stores Operations on two LIFO stacks:
//
//	h := history.New(0) // 0 selects DefaultMaxHistory (1000)
//	h.Push(history.NewInsertOperation(0, "hello"))
//	op, ok := h.Undo() // pops the undo stack, pushes onto the redo stack
//	op, ok = h.Redo()  // pops the redo stack, pushes back onto the undo stack
//
// Pushing a new Operation always clears the redo stack — once a caller
// performs a fresh edit, previously undone operations are no longer
// reachable. Undo and Redo themselves never call Push; they move records
// between the two stacks directly, so the document package must not treat
// an undo as a new edit.
package history
