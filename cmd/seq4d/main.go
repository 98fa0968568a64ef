// main is the command-line entrypoint for the seq4d resolver.
package main

import (
	"fmt"
	"os"

	"github.com/svisuals/seq4d/cmd"
	"github.com/svisuals/seq4d/internal/profilestore"
)

func main() {
	err := cmd.Execute()
	profilestore.CloseStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
