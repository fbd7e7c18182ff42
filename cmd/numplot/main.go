package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/thiagonache/numcmp"
)

var usage = fmt.Sprintf("Usage: %s [-o out.png] [-title text] file1 file2", os.Args[0])

func main() {
	err := numcmp.RunPlotCLI(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if errors.Is(err, numcmp.ErrNoPaths) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		os.Exit(1)
	}
}
