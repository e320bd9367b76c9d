// ABOUTME: Entry point for the ectokit patch builder CLI
// ABOUTME: Executes the root cobra command
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
