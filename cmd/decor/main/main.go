package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/decor/cmd/decor"
	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/ui/styles"
)

func main() {
	// Register policies, shapes and decorators
	core.MustInitialize()

	rootCmd := decor.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
