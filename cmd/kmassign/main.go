// Command kmassign solves an assignment problem read from a JSON, YAML or
// TOML document and prints the optimal pairs.
package main

import (
	"os"

	"github.com/katalvlaran/kuhnmunkres/cmd/kmassign/app"
	"k8s.io/klog/v2"
)

func main() {
	cmd := app.NewKMAssignCmd()
	err := cmd.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
