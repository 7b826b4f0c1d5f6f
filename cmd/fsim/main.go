package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	logging "github.com/ipfs/go-log/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/common"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/filesystem"
	"github.com/andreluiz2431/Simulador-de-Sistema-de-Arquivos/shell"
)

var log = logging.Logger("fsim")

var ErrNegativeSize = errors.New("disk size cannot be negative")

type config struct {
	size     int
	script   string
	logOut   string
	logLevel string
}

func newCmdFsim() *cobra.Command {
	cfg := &config{}
	cmd := &cobra.Command{
		Use:   "fsim",
		Short: "Simulate a file system over a virtual block device.",
		Long: `fsim - Simulate a file system over a virtual block device.

    Starts an interactive shell reading commands from stdin. With --script
    the commands are read from a file instead, and a transcript ending with
    the final tree and disk info is printed.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return run(c, cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.size, "size", "s", common.DefaultDiskSize, "number of blocks of the virtual disk")
	cmd.Flags().StringVar(&cfg.script, "script", "", "run commands from this file and print a transcript")
	cmd.Flags().StringVar(&cfg.logOut, "log-out", "", "export the operation log as json to this file when the session ends")
	cmd.Flags().StringVar(&cfg.logLevel, "log-level", "error", "diagnostic log level (debug, info, warn, error)")
	return cmd
}

func run(c *cobra.Command, cfg *config) error {
	lvl, err := logging.LevelFromString(cfg.logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", cfg.logLevel)
	}
	logging.SetAllLoggers(lvl)

	if cfg.size < 0 {
		return errors.Wrapf(ErrNegativeSize, "size %d", cfg.size)
	}

	fs := filesystem.New(cfg.size)
	sh := shell.New(fs)
	log.Debugw("session", "id", fs.SessionID(), "blocks", cfg.size)

	var merr *multierror.Error
	if cfg.script != "" {
		merr = multierror.Append(merr, sh.RunScriptFile(cfg.script, c.OutOrStdout()))
	} else {
		fmt.Fprintf(c.OutOrStdout(), "File system simulator, %s blocks\n\n", humanize.Comma(int64(cfg.size)))
		merr = multierror.Append(merr, sh.Run(c.InOrStdin(), c.OutOrStdout()))
	}

	if cfg.logOut != "" {
		merr = multierror.Append(merr, fs.ExportLog(cfg.logOut))
	}

	return merr.ErrorOrNil()
}

func main() {
	cmd := newCmdFsim()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
