package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imgpick/internal/config"
	"imgpick/internal/emitter"
	"imgpick/internal/fileutil"
	"imgpick/internal/picker"
	"imgpick/internal/report"
)

func newEmitCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var formatFlag string
	var widthFlag int
	var heightFlag int
	var countFlag int
	var noOverwriteFlag bool

	cmd := &cobra.Command{
		Use:   "emit <dest>...",
		Short: "Write pool images to the given destination files",
		Long: `emit writes one pool image per destination file, in order. Each
destination name chooses the output format through its extension unless
a fixed format is configured or passed with --format.

With --count N and a single destination, N numbered files are written:
emit --count 3 wall.png produces wall_1.png, wall_2.png and wall_3.png.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			pcfg := cfg.Picker()
			if sourceFlag != "" {
				expanded, err := config.ExpandPath(sourceFlag)
				if err != nil {
					return err
				}
				pcfg.SourceDir = expanded
			}
			if formatFlag != "" {
				pcfg.Format = formatFlag
			}
			if cmd.Flags().Changed("width") {
				pcfg.Width = widthFlag
			}
			if cmd.Flags().Changed("height") {
				pcfg.Height = heightFlag
			}

			if countFlag < 1 {
				return fmt.Errorf("count must be positive, got %d", countFlag)
			}
			dests := args
			if countFlag > 1 {
				if len(args) != 1 {
					return fmt.Errorf("--count needs exactly one destination template, got %d", len(args))
				}
				dests = fileutil.NumberedDests(args[0], countFlag)
			}
			if noOverwriteFlag {
				for i, dest := range dests {
					dests[i] = fileutil.NextAvailable(dest)
				}
			}

			fmt.Printf("Scanning %s...\n", pcfg.SourceDir)
			p, err := picker.New(pcfg)
			if err != nil {
				return err
			}
			fmt.Printf("Found %d images\n", p.Len())

			release, err := fileutil.LockDir(pcfg.SourceDir)
			if err != nil {
				return err
			}
			defer release()

			ctx.logger.Debug().
				Str("source", pcfg.SourceDir).
				Int("images", p.Len()).
				Int("destinations", len(dests)).
				Msg("pool ready")

			results, emitErr := emitter.Emit(p, dests, func(current, total int) {
				fmt.Printf("\rWriting image %d/%d...", current, total)
			})
			fmt.Println() // newline after progress

			report.Print(os.Stdout, results, p.Remaining())
			return emitErr
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Source directory (overrides configuration)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Fixed output format for every destination")
	cmd.Flags().IntVar(&widthFlag, "width", 0, "Advisory output width in pixels")
	cmd.Flags().IntVar(&heightFlag, "height", 0, "Advisory output height in pixels")
	cmd.Flags().IntVarP(&countFlag, "count", "n", 1, "Number of numbered files to derive from a single destination")
	cmd.Flags().BoolVar(&noOverwriteFlag, "no-overwrite", false, "Never replace existing files; use the next free numbered name instead")

	return cmd
}
