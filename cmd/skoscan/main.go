// main is the entry point for the skoscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/skoscan/skoscan/cmd"
	"github.com/skoscan/skoscan/internal/registry"
)

func main() {
	err := cmd.Execute()
	registry.CloseStore()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
