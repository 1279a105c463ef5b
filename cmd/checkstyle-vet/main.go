// Command checkstyle-vet runs the checkstyle analyzer over Go packages, in
// the manner of go vet.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/thanujayalath/checkstyle"
)

func main() {
	singlechecker.Main(checkstyle.Analyzer)
}
