// Command erasedbench compares traversal through concrete slices with
// traversal through erased cursors, views and locations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
