package main

import (
	"os"

	"github.com/thiagonache/numcmp"
)

func main() {
	if err := numcmp.RunCLI(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
