// Command sortbench times one ordering strategy over a freshly generated
// collection of one million records and prints the leading keys.
//
// Usage:
//
//	sortbench <mode>
//
// See sortbench.Modes for the supported modes. An unsupported mode does
// nothing and exits successfully; a warning is logged on stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sortbench"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code) // nolint:gocritic
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...sortbench.Option) int {
	logger := sortbench.NewLogger(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	rootCmd := newRootCmd(stdout, logger, opts...)
	// Usage and errors never mix with benchmark output.
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer, logger *sortbench.Logger, opts ...sortbench.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "sortbench <mode>",
		Short: fmt.Sprintf("sortbench times one ordering strategy: %s", sortbench.ModeList("|")),
		Long: fmt.Sprintf(`sortbench generates %d records, orders them once with the
selected strategy and prints the elapsed time and the first %d keys.

Modes: %s`, sortbench.DefaultSize, sortbench.DefaultPreview, sortbench.ModeList(", ")),
		Args: cobra.ExactArgs(1),
		// Every argument is a mode candidate, including "-x", "--help" and "--".
		DisableFlagParsing: true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		ValidArgs:          modeNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors print usage; run failures do not.
			cmd.SilenceUsage = true
			ctx := cmd.Context()

			mode, err := sortbench.ParseMode(args[0])
			if err != nil {
				logger.WarnContext(ctx, "nothing to do",
					"mode", args[0],
					"supported", sortbench.ModeList(", "),
				)
				return nil
			}

			b, err := sortbench.New(append([]sortbench.Option{sortbench.WithLogger(logger)}, opts...)...)
			if err != nil {
				return err
			}

			res, err := b.Run(ctx, mode)
			if err != nil {
				return err
			}

			_, err = res.WriteTo(stdout)
			return err
		},
	}
}

func modeNames() []string {
	modes := sortbench.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = string(m)
	}
	return names
}
