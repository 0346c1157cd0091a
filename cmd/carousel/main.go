// Command carousel inspects, scripts, renders and previews image carousels.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/carousel/cmd/carousel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
