package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/valuecore/cmd/valuectl/logger"
	"github.com/spf13/cobra"
)

var (
	convertFrom   string
	convertTo     string
	convertOutput string
	convertStrict bool
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVar(&convertFrom, "from", "", "Input format: binary, textual, json, xml (default: config default_format)")
	cmd.Flags().StringVar(&convertTo, "to", "", "Output format: binary, textual, json, xml (default: config default_format)")
	cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail on the first malformed cell instead of degrading to a null cell")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a value container between encodings",
		Long: `convert reads a value container in one encoding and writes it in another.

Example:
  valuectl convert quote.txt --from textual --to json
  valuectl convert quote.bin --from binary --to textual -o quote.txt
  valuectl convert quote.xml --from xml --to binary --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0])
		},
	}
}

func runConvert(inputPath string) error {
	from := convertFrom
	if from == "" {
		from = cfg.DefaultFormat
	}
	to := convertTo
	if to == "" {
		to = cfg.DefaultFormat
	}
	strict := convertStrict || cfg.Strict

	logger.Info("convert started", "input", inputPath, "from", from, "to", to, "strict", strict)

	printVerbose("reading %s as %s\n", inputPath, from)
	data, err := os.ReadFile(inputPath)
	if err != nil {
		logger.Error("convert: read failed", "input", inputPath, "error", err)
		return fmt.Errorf("valuectl: read %s: %w", inputPath, err)
	}

	s, h, err := decodeFormat(data, from, strict)
	if err != nil && (strict || s == nil) {
		logger.Error("convert: decode failed", "input", inputPath, "from", from, "error", err)
		return fmt.Errorf("valuectl: decode: %w", err)
	}
	if err != nil {
		logger.Warn("convert: decode degraded", "input", inputPath, "error", err)
		printInfo("warning: %v\n", err)
	}

	printVerbose("encoding as %s\n", to)
	out, err := encodeFormat(s, h, to)
	if err != nil {
		return fmt.Errorf("valuectl: encode: %w", err)
	}

	if convertOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(convertOutput, out, 0o644); err != nil {
		return fmt.Errorf("valuectl: write %s: %w", convertOutput, err)
	}
	printInfo("wrote %s (%d bytes)\n", convertOutput, len(out))
	return nil
}
