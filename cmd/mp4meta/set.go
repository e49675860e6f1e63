package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/mp4meta"
)

var (
	setValues     []string
	removeItems   []string
	artworkPath   string
	backupSuffix  string
	validateWrite bool
	keepModTime   bool
)

var setCmd = &cobra.Command{
	Use:   "set <file>",
	Short: "Edit metadata items in place",
	Long: `Edit metadata items in place. Items are named by fourcc ("©nam"),
friendly name ("Title") or freeform ident ("----:com.apple.iTunes:MOOD").

  mp4meta set song.m4a --set Title="New Title" --set "Track Number=3/12"
  mp4meta set song.m4a --remove Comment --artwork cover.jpg

Track and disc numbers take "n" or "n/total", flags take true or false,
Custom Genre takes a name and Standard Genre a numeric code. Everything else is
stored as text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		edits, err := parseEdits(setValues)
		if err != nil {
			return err
		}
		removals := make([]mp4meta.Ident, 0, len(removeItems))
		for _, name := range removeItems {
			id, err := resolveIdent(name)
			if err != nil {
				return err
			}
			removals = append(removals, id)
		}

		var items []mp4meta.Ident
		for _, e := range edits {
			items = append(items, e.ident)
		}
		tag, err := mp4meta.ReadFile(args[0], append(readOptions(), mp4meta.WithItems(append(items, removals...)...))...)
		if err != nil {
			return err
		}

		for _, id := range removals {
			tag.Remove(id)
		}
		for _, e := range edits {
			if err := applyEdit(tag, e); err != nil {
				return err
			}
		}
		if artworkPath != "" {
			b, err := os.ReadFile(artworkPath)
			if err != nil {
				return err
			}
			art, err := mp4meta.NewArtwork(b)
			if err != nil {
				return err
			}
			if err := tag.SetArtwork(art); err != nil {
				return err
			}
		}

		if !tag.Modified() {
			logger.Info("nothing to change")
			return nil
		}

		var opts []mp4meta.SaveOption
		if backupSuffix != "" {
			opts = append(opts, mp4meta.WithBackup(backupSuffix))
		}
		if validateWrite {
			opts = append(opts, mp4meta.WithValidation())
		}
		if keepModTime {
			opts = append(opts, mp4meta.WithPreserveModTime())
		}

		changed := len(tag.Changed())
		if err := tag.Save(opts...); err != nil {
			return err
		}
		logger.WithField("path", args[0]).WithField("items", changed).Info("saved")
		return nil
	},
}

func init() {
	setCmd.Flags().StringArrayVarP(&setValues, "set", "s", nil, "set an item, as name=value (repeatable)")
	setCmd.Flags().StringArrayVarP(&removeItems, "remove", "r", nil, "remove an item (repeatable)")
	setCmd.Flags().StringVar(&artworkPath, "artwork", "", "replace the cover art with this JPEG, PNG or BMP file")
	setCmd.Flags().StringVar(&backupSuffix, "backup", "", "keep the original file with this suffix appended")
	setCmd.Flags().BoolVar(&validateWrite, "validate", false, "re-read the saved file and compare every item")
	setCmd.Flags().BoolVar(&keepModTime, "preserve-mtime", false, "keep the file modification time")
}

type edit struct {
	ident mp4meta.Ident
	value string
}

func parseEdits(assignments []string) ([]edit, error) {
	edits := make([]edit, 0, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid assignment %q, want name=value", a)
		}
		id, err := resolveIdent(name)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit{ident: id, value: value})
	}
	return edits, nil
}

// resolveIdent accepts a friendly name or an ident.
func resolveIdent(name string) (mp4meta.Ident, error) {
	name = strings.TrimSpace(name)
	if id, ok := mp4meta.IdentByFriendlyName(name); ok {
		return id, nil
	}
	id, err := mp4meta.ParseIdent(name)
	if err != nil {
		return mp4meta.Ident{}, fmt.Errorf("unknown item %q: %w", name, err)
	}
	return id, nil
}

var flagSetters = map[mp4meta.Ident]func(*mp4meta.Tag, bool){
	mp4meta.CompilationIdent:     (*mp4meta.Tag).SetCompilation,
	mp4meta.GaplessPlaybackIdent: (*mp4meta.Tag).SetGaplessPlayback,
	mp4meta.PodcastIdent:         (*mp4meta.Tag).SetPodcast,
	mp4meta.ShowMovementIdent:    (*mp4meta.Tag).SetShowMovement,
}

// applyEdit stores value under e.ident, using the typed setter for items
// that are not plain text.
func applyEdit(tag *mp4meta.Tag, e edit) error {
	v := e.value
	if set, ok := flagSetters[e.ident]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		set(tag, b)
		return nil
	}

	switch e.ident {
	case mp4meta.TrackNumberIdent, mp4meta.DiscNumberIdent:
		n, total, err := parsePair(v)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		if e.ident == mp4meta.TrackNumberIdent {
			tag.SetTrackNumber(n, total)
		} else {
			tag.SetDiscNumber(n, total)
		}
	case mp4meta.BPMIdent, mp4meta.MovementCountIdent, mp4meta.MovementIndexIdent:
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		tag.Set(e.ident, mp4meta.Int(int64(n), 2))
	case mp4meta.TVEpisodeIdent, mp4meta.TVSeasonIdent:
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		tag.Set(e.ident, mp4meta.Int(int64(n), 4))
	case mp4meta.MediaTypeIdent:
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		tag.SetMediaType(mp4meta.MediaType(n))
	case mp4meta.StandardGenreIdent:
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("%s: %w", itemLabel(e.ident), err)
		}
		tag.SetStandardGenre(uint16(n))
	case mp4meta.CustomGenreIdent:
		tag.SetGenre(v)
	default:
		if v == "" {
			tag.Remove(e.ident)
			return nil
		}
		tag.Set(e.ident, mp4meta.Text(v))
	}
	return nil
}

// parsePair parses "n" or "n/total".
func parsePair(s string) (uint16, uint16, error) {
	num, total, hasTotal := strings.Cut(s, "/")
	n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 16)
	if err != nil {
		return 0, 0, err
	}
	if !hasTotal {
		return uint16(n), 0, nil
	}
	t, err := strconv.ParseUint(strings.TrimSpace(total), 10, 16)
	if err != nil {
		return 0, 0, err
	}
	return uint16(n), uint16(t), nil
}
