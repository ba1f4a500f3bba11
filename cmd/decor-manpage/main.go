package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/decor/cmd/decor"
	"github.com/arthur-debert/decor/internal/version"
	"github.com/arthur-debert/decor/pkg/core"
)

func main() {
	core.MustInitialize()
	rootCmd := decor.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "DECOR",
		Section: "1",
		Source:  "decor " + version.Version,
		Manual:  "decor manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
