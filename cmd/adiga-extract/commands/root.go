package commands

import (
	"context"
	"fmt"
	"os"

	"adiga-extract/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	quiet        bool
	verbose      bool
	encodingName string
)

var rootCmd = &cobra.Command{
	Use:   "adiga-extract",
	Short: "adiga-extract pulls admission statistics out of saved adiga.kr result pages.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			telemetry.InitSlog(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the console summary")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&encodingName, "encoding", "auto", "input document encoding (auto, utf-8, euc-kr, ...)")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
