package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/embedgen/file2header/internal/dispatch"
	"github.com/embedgen/file2header/internal/encoder"
	"github.com/embedgen/file2header/internal/ui"
	"github.com/embedgen/file2header/pkg/log"
)

// usageText is printed verbatim to stdout for /? and /help.
const usageText = `Usage:
    ./file2header [option] <input_file> <output_file> <array_name>

Description:
    This program copies data from the input file into the output file.
    If the output file does not exist, it is created; otherwise it is overwritten.
    The output file is formatted as a C++ header file.
    By default the data is stored into a static const char array as hex values.

Options:
    /s or /string           Store the data as a static const char* string instead.
    /? or /help             Displays this help message.
`

// errExit signals a failure already reported on the error stream.
var errExit = errors.New("exit 1")

// rootCmd represents the base command. The tool's option grammar uses
// /-style tokens rather than flags, so flag parsing is disabled and the raw
// argument vector is handed to the dispatcher.
var rootCmd = &cobra.Command{
	Use:                "file2header [option] <input_file> <output_file> <array_name>",
	Short:              "Convert a file into a C++ header embedding its contents",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if code := run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args); code != 0 {
			return errExit
		}
		return nil
	},
}

// Execute runs the root command. This is called by main.main(). It only needs
// to happen once to the rootCmd.
func Execute() {
	if err := log.Init("", ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init initializes the root command.
func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// run classifies the argument vector and performs the selected terminal
// action, returning the process exit code. Help goes to stdout; every
// diagnostic goes to stderr.
func run(stdout, stderr io.Writer, args []string) int {
	action := dispatch.Classify(args)

	switch action.Kind {
	case dispatch.ShowHelp:
		fmt.Fprint(stdout, usageText)
		return 0

	case dispatch.Fail:
		ui.PrintArgError(stderr, action.Message)
		return 1
	}

	req := encoder.Request{
		InputPath:  action.InputPath,
		OutputPath: action.OutputPath,
		ArrayName:  action.ArrayName,
	}

	var err error
	if action.Kind == dispatch.RunString {
		err = encoder.WriteStringHeader(req)
	} else {
		err = encoder.WriteHexHeader(req)
	}
	if err != nil {
		if errors.Is(err, encoder.ErrInvalidName) {
			ui.PrintNameError(stderr)
		} else {
			ui.PrintFileError(stderr, err.Error())
		}
		return 1
	}

	return 0
}
