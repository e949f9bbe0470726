// mdinspect prints the header and contents of array containers.
package main

import (
	"fmt"
	"os"

	"github.com/robert-malhotra/go-multiarray/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
