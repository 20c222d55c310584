package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/lbxkit/lbx"
	"github.com/lbxkit/lbx/palette"
)

func newLogger() hclog.Logger {
	level := os.Getenv("LBX_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "lbxdump",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

func main() {
	logger := newLogger()

	root := &cobra.Command{
		Use:           "lbxdump",
		Short:         "Inspect and extract LBX archive containers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newListCmd(logger),
		newExtractCmd(logger),
		newPaletteCmd(logger),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newListCmd(logger hclog.Logger) *cobra.Command {
	var digest bool

	cmd := &cobra.Command{
		Use:   "list <container>",
		Short: "List the entries of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lbx.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("parsed container", "path", args[0], "type", c.Type().String(), "entries", c.Count())

			fmt.Printf("%s: %s container, %d entries\n", args[0], c.Type(), c.Count())
			for i, e := range c.Entries() {
				fmt.Printf("%4d  %-8s  [%10d, %10d)", i, e.Name, e.Start, e.End)
				if digest {
					h := xxhash.New()
					if _, err := io.Copy(h, c.Reader(i)); err != nil {
						return err
					}
					fmt.Printf("  %016x", h.Sum64())
				}
				if e.Comment != "" {
					fmt.Printf("  %s", e.Comment)
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&digest, "digest", false, "print an xxhash digest of each entry's payload")
	return cmd
}

func newExtractCmd(logger hclog.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract <container> <entry-index>",
		Short: "Write one entry's payload to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := lbx.Load(args[0])
			if err != nil {
				return err
			}
			idx, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid entry index %q: %w", args[1], err)
			}
			r := c.Reader(idx)
			if r == nil {
				return fmt.Errorf("container has no entry %d (%d entries)", idx, c.Count())
			}
			if err := c.Validate(); err != nil {
				logger.Warn("container has out-of-range payload spans, extraction is clamped", "error", err)
			}

			if out == "" {
				out = fmt.Sprintf("entry-%03d.bin", idx)
			}
			f, err := os.OpenFile(out, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			defer f.Close()

			n, err := io.Copy(f, r)
			if err != nil {
				return err
			}
			logger.Info("extracted entry", "index", idx, "bytes", n, "out", out)
			fmt.Printf("wrote %d bytes to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default entry-<index>.bin)")
	return cmd
}

func newPaletteCmd(logger hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "palette <resource-file>",
		Short: "Extract the 256-color palette from an external resource file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := palette.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded palette", "path", args[0])

			for i := 0; i < len(p); i += 8 {
				for j := i; j < i+8; j++ {
					c := p.At(j)
					fmt.Printf("#%02x%02x%02x ", c.R, c.G, c.B)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
