package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/simonhull/mp4meta"
)

var showWarnings bool

var tagsCmd = &cobra.Command{
	Use:   "tags <file>...",
	Short: "List the metadata items of one or more files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := mp4meta.ReadManyWith(cmd.Context(), args, readOptions()...)
		if err != nil {
			return err
		}
		for i, tag := range tags {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if err := printTag(cmd.OutOrStdout(), tag); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().BoolVarP(&showWarnings, "warnings", "w", false, "also print parse warnings")
}

// itemLabel names an item for display.
func itemLabel(id mp4meta.Ident) string {
	if name, ok := mp4meta.FriendlyName(id); ok {
		return name
	}
	return id.String()
}

func printTag(w io.Writer, tag *mp4meta.Tag) error {
	if _, err := fmt.Fprintf(w, "%s (%s, brand %q)\n", tag.Path, tag.Format, tag.Brand); err != nil {
		return err
	}
	for id, v := range tag.All() {
		if _, err := fmt.Fprintf(w, "  %-24s %s\n", itemLabel(id)+":", v); err != nil {
			return err
		}
	}
	if showWarnings {
		for _, warn := range tag.Warnings {
			if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
}
