package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"imgpick/internal/codec"
	"imgpick/internal/format"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "Show the supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(format.All()))
			for _, f := range format.All() {
				rows = append(rows, []string{
					string(f),
					yesNo(codec.CanDecode(f)),
					"yes",
				})
			}
			fmt.Println(renderTable(
				[]string{"FORMAT", "DECODE", "ENCODE"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			fmt.Println("Destination names ending in .jpg are written as jpeg.")
			return nil
		},
	}
}
