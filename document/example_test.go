package document_test

import (
	"fmt"

	"github.com/seijikohara/teppan/document"
)

// Example demonstrates the core edit/undo/redo cycle a host binding layer
// drives.
func Example() {
	d := document.New(document.WithContent("world"))

	d.Insert(0, "hello ")
	fmt.Println(d.GetText())

	d.Undo()
	fmt.Println(d.GetText(), d.CanRedo())

	d.Redo()
	fmt.Println(d.GetText())

	// Output:
	// hello world
	// world true
	// hello world
}
