// Command checkstyle checks Go and Java source trees against a module
// configuration.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "checkstyle:", err)
		}
		os.Exit(1)
	}
}
