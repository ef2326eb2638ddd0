// Command keystorm is a thin smoke-test harness for the engine package
// tree: it opens a file through textbuf and interp exactly the way a
// real editor's first buffer load would, and reports the line and
// character counts the interpretation computed. It is not a CLI; it
// exists only so the module has a runnable entry point the way the
// teacher's does.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/keystorm-core/internal/engine/interp"
	"github.com/dshills/keystorm-core/internal/engine/textbuf"
)

func main() {
	os.Exit(run())
}

func run() int {
	encodingName := flag.String("encoding", "UTF-8", "encoding to interpret the file as")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: keystorm [-encoding NAME] <file>\n")
		return 2
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "keystorm: %v\n", err)
		return 1
	}

	buf := textbuf.NewFromBytes(data)
	in, err := interp.New(buf, *encodingName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keystorm: %v\n", err)
		return 1
	}
	defer in.Close()

	fmt.Printf("%s: %d lines, %d characters, %d codepoints\n",
		args[0], in.Lines().LineCount(), in.TotalCharacters(), in.TotalCodepoints())
	return 0
}
