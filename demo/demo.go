package demo

import (
	"io"
	"os"
)

// Version is the semantic version of demo-project.
const Version = "0.1.0"

// Greeting is the line HelloWorld emits, without its trailing newline.
const Greeting = "hello world"

// Fprint writes the greeting followed by a single newline to w.
func Fprint(w io.Writer) error {
	_, err := io.WriteString(w, Greeting+"\n")
	return err
}

// HelloWorld writes "hello world\n" to standard output.
// Write errors are not reported; use Fprint to observe them.
func HelloWorld() {
	_ = Fprint(os.Stdout)
}
