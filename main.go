// txview keeps a display-ordered view of a wallet's transactions in sync with
// a simulated ledger.
package main

import (
	"fmt"
	"os"

	"github.com/spacemeshos/go-txview/cmd"
	"github.com/spacemeshos/go-txview/cmd/viewer"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := viewer.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
