package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/sharelink/cmd/sharelink"
	"github.com/arthur-debert/sharelink/pkg/style"
)

func main() {
	rootCmd := sharelink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.FailedStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
