// Package root contains the root command for the application
package root

import (
	"fmt"
	"strings"
	"sync"

	"ing2ofx/internal/config"
	"ing2ofx/internal/converter"
	"ing2ofx/internal/fileutils"
	"ing2ofx/internal/ingparser"
	"ing2ofx/internal/ofx"
	"ing2ofx/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandFlags represents the command line flags of the conversion command
type CommandFlags struct {
	Split   bool
	OutFile string
	OutDir  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "ing2ofx csvfile",
		Short: "Convert ING CSV exports to OFX documents.",
		Long: `ing2ofx converts transaction exports downloaded from ING (www.ing.nl) in CSV
format into OFX documents that personal finance applications can import.
The default output filename is the input filename with an .ofx extension.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			cfg := config.GetGlobalConfig()
			Log = config.Logger

			// Hand the configured logger to every package that logs
			ingparser.SetLogger(Log)
			converter.SetLogger(Log)
			fileutils.SetLogger(Log)
			store.SetLogger(Log)

			if delim := cfg.CSV.Delimiter; delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from configuration")
				ingparser.SetDelimiter([]rune(delim)[0])
			}
		},
		RunE: runConvert,
	}

	// SharedFlags holds the flag values bound by Init
	SharedFlags = CommandFlags{}

	initOnce sync.Once
)

func runConvert(cmd *cobra.Command, args []string) error {
	csvPath := args[0]
	if !fileutils.FileExists(csvPath) {
		return fmt.Errorf("input file does not exist: %s", csvPath)
	}

	cfg := config.GetGlobalConfig()

	renderer := ofx.NewRenderer()
	renderer.BankID = cfg.OFX.BankID
	renderer.Currency = cfg.OFX.Currency
	renderer.Org = cfg.OFX.Org
	renderer.FID = cfg.OFX.FID

	outDir := SharedFlags.OutDir
	if outDir == "" {
		outDir = cfg.Output.Directory
	}

	result, err := converter.Convert(csvPath, converter.Options{
		SplitByMonth: SharedFlags.Split,
		OutFile:      SharedFlags.OutFile,
		OutDir:       outDir,
		CodesFile:    cfg.Codes.File,
		Renderer:     renderer,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Transactions: %d\n", result.TransactionCount)
	cmd.Printf("Input:        %s\n", csvPath)
	cmd.Printf("Output(s):    %s\n", strings.Join(result.Outputs, ","))
	return nil
}

// Init initializes the root command flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		Cmd.Flags().BoolVarP(&SharedFlags.Split, "split", "s", false, "Split the output by month")
		Cmd.Flags().StringVarP(&SharedFlags.OutFile, "outfile", "o", "", "Output filename (cannot be combined with --split)")
		Cmd.Flags().StringVarP(&SharedFlags.OutDir, "directory", "d", "", "Directory to store output, default is ./ofx")
	})
}
