package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/valuecore/cell"
	"github.com/spf13/cobra"
)

var inspectFormat string

func init() {
	cmd := newInspectCmd()
	cmd.Flags().StringVar(&inspectFormat, "format", "", "Input format: binary, textual, json, xml (default: config default_format)")
	rootCmd.AddCommand(cmd)
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Print a value container's cells as an indented tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(inputPath string) error {
	format := inspectFormat
	if format == "" {
		format = cfg.DefaultFormat
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("valuectl: read %s: %w", inputPath, err)
	}

	s, h, err := decodeFormat(data, format, false)
	if s == nil {
		return fmt.Errorf("valuectl: decode: %w", err)
	}
	if err != nil {
		printInfo("warning: %v\n", err)
	}

	if h.SourceID != "" || h.TargetID != "" {
		printInfo("header: source=%s target=%s type=%s version=%s\n", h.SourceID, h.TargetID, h.MessageType, h.Version)
	}
	printTree(s, 0)
	return nil
}

func printTree(con cell.Container, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	con.ForEach(func(key string, c *cell.Cell) bool {
		fmt.Printf("%s%s (%s) = %s\n", indent, key, c.Tag(), valuePreview(c))
		if nested, ok := c.GetContainer(); ok {
			printTree(nested, depth+1)
		}
		if elems, ok := c.GetArray(); ok {
			for i, e := range elems {
				fmt.Printf("%s  [%d] (%s) = %s\n", indent, i, e.Tag(), valuePreview(e))
			}
		}
		return true
	})
}

func valuePreview(c *cell.Cell) string {
	switch c.Tag() {
	case cell.Container:
		con, _ := c.GetContainer()
		return fmt.Sprintf("<%d entries>", con.Len())
	case cell.Array:
		arr, _ := c.GetArray()
		return fmt.Sprintf("<%d elements>", len(arr))
	default:
		return c.ToString()
	}
}
