package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	input      string
	outDir     string
	format     string
	deliver    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "formgen",
		Short:         "Generate birth-care clinical forms as PDF",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a config file")
	flags.StringVarP(&opts.input, "input", "i", "-", "JSON input file, - for stdin")
	flags.StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	flags.StringVarP(&opts.format, "format", "f", "pdf", "output format: pdf or payload (labor also accepts xlsx, csv)")
	flags.BoolVar(&opts.deliver, "deliver", false, "send the payload to the patient documents API")

	for _, kind := range formKinds {
		rootCmd.AddCommand(formCmd(kind, opts))
	}
	return rootCmd
}

func formCmd(kind formKind, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   kind.name,
		Short: kind.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), kind, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
