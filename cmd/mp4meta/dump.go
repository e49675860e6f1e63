package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/mp4meta"
	"github.com/simonhull/mp4meta/internal/binary"
	"github.com/simonhull/mp4meta/internal/m4a"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Print the atom tree of a file",
	Long: `Print every atom of the file with its size and offset, descending
into containers and metadata items.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}
		return dumpAtoms(cmd.OutOrStdout(), f, info.Size(), args[0])
	},
}

// dumpAtoms writes one line per atom, indented by depth.
func dumpAtoms(w io.Writer, r io.ReaderAt, size int64, path string) error {
	sr := binary.NewSafeReader(r, size, path)
	return m4a.Walk(sr, 0, size, func(n m4a.Node) error {
		typ, name := n.Type, ""
		if f, err := mp4meta.ParseFourcc(n.Type); err == nil {
			typ = f.String()
			name, _ = mp4meta.FriendlyName(mp4meta.FourccIdent(f))
		}
		line := fmt.Sprintf("%s%s (size: %d, offset: %d)", strings.Repeat("  ", n.Depth), typ, n.Size, n.Offset)
		if name != "" {
			line += " " + name
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
