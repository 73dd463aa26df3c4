package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"imgpick/internal/config"
	"imgpick/internal/probe"
	"imgpick/internal/scanner"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var longFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the image pool in emit order",
		Long: `list scans the source directory and prints the pool in the order
emit would consume it. With --long each file header is probed for its
format, pixel sizes and camera model.

When stdout is not a terminal the plain variant prints bare paths, one
per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir := cfg.SourceDir
			if sourceFlag != "" {
				expanded, err := config.ExpandPath(sourceFlag)
				if err != nil {
					return err
				}
				dir = expanded
			}
			if dir == "" {
				return errors.New("no source directory configured (set source_dir or pass --source)")
			}

			res, err := scanner.Scan(dir)
			if err != nil {
				return err
			}
			ctx.logger.Debug().
				Str("source", dir).
				Int("files", len(res.Paths)).
				Int("dirs", res.Dirs).
				Msg("scan complete")

			if len(res.Paths) == 0 {
				fmt.Println("No files found.")
				return nil
			}

			if !longFlag && !isTerminal(os.Stdout) {
				for _, path := range res.Paths {
					fmt.Println(path)
				}
				return nil
			}

			if !longFlag {
				rows := make([][]string, 0, len(res.Paths))
				for i, path := range res.Paths {
					rows = append(rows, []string{strconv.Itoa(i + 1), relTo(dir, path)})
				}
				fmt.Println(renderTable(
					[]string{"#", "FILE"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				))
				return nil
			}

			rows := make([][]string, 0, len(res.Paths))
			for i, path := range res.Paths {
				rows = append(rows, longRow(i+1, dir, path))
			}
			fmt.Println(renderTable(
				[]string{"#", "FILE", "FORMAT", "PIXELS", "SIZE", "CAMERA"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source directory (overrides configuration)")
	cmd.Flags().BoolVarP(&longFlag, "long", "l", false, "Probe each file for format, sizes and camera model")

	return cmd
}

// longRow probes one pool file. Files the probe cannot read still get a row;
// the pool does not shrink just because a header is unreadable.
func longRow(n int, dir, path string) []string {
	rel := relTo(dir, path)
	info, err := probe.File(path)
	if err != nil {
		return []string{strconv.Itoa(n), rel, "-", "-", "-", "-"}
	}
	camera := info.Camera
	if camera == "" {
		camera = "-"
	}
	return []string{
		strconv.Itoa(n),
		rel,
		info.Format,
		fmt.Sprintf("%dx%d", info.Width, info.Height),
		humanSize(info.Size),
		camera,
	}
}

func relTo(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return path
	}
	return rel
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<30:
		return fmt.Sprintf("%.1f GiB", float64(n)/(1<<30))
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
