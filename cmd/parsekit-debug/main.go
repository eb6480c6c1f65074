// Command parsekit-debug is a thin operational wrapper for exercising
// one of the library's example grammars against stdin, optionally
// instrumented with the report package's debug or profile rendering.
//
// It is not a grammar-definition front end: the grammars it runs are
// the ones already wired in examples/, selected by name.
package main

import (
	"fmt"
	"os"

	"github.com/kalopsian/parsekit/cmd/parsekit-debug/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
