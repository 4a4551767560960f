// Package viewer implements the txview command line: it runs a view session
// against a simulated ledger.
package viewer

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	cmdp "github.com/spacemeshos/go-txview/cmd"
)

// Cmd is the cobra wrapper for the viewer, that allows adding parameters to it.
var Cmd = &cobra.Command{
	Use:   "txview",
	Short: "follow a simulated wallet ledger through a transaction view",
}

// RunCmd keeps a view in sync with a simulated chain until interrupted.
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "run the view against a simulated chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := cmdp.LoadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		app, err := New(conf)
		if err != nil {
			return err
		}
		cmdp.HandleInterrupts(app.log)
		return app.Run(cmdp.Ctx())
	},
}

// DumpCmd produces a fixed number of blocks and writes the resulting view to a file.
var DumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "write a snapshot of the view after a number of simulated blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := cmdp.LoadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		app, err := New(conf)
		if err != nil {
			return err
		}
		cmdp.HandleInterrupts(app.log)
		return app.Dump(cmdp.Ctx())
	},
}

// VerifyCmd checks a snapshot file against the snapshot schema.
var VerifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "validate a snapshot written by dump",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) > 0 {
			path = args[0]
		} else {
			conf, err := cmdp.LoadConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			path = conf.DumpFile
		}
		snap, err := ReadSnapshot(afero.NewOsFs(), path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: tip %d, %d records, digest %s\n", path, snap.Tip, len(snap.Records), snap.Digest)
		return nil
	},
}

// VersionCmd returns the current version of txview.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(cmdp.Version)
		if cmdp.Commit != "" {
			fmt.Printf("+%s", cmdp.Commit)
		}
		fmt.Println()
	},
}

func init() {
	cmdp.AddCommands(Cmd)
	Cmd.AddCommand(RunCmd, DumpCmd, VerifyCmd, VersionCmd)
}
