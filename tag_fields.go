package mp4meta

import (
	"encoding/binary"

	"github.com/simonhull/mp4meta/internal/atom"
	"github.com/simonhull/mp4meta/internal/data"
)

func (t *Tag) text(f Fourcc) (string, bool) {
	v, ok := t.Value(atom.FourccIdent(f))
	if !ok {
		return "", false
	}
	return v.AsText()
}

// setText stores s as UTF-8, or removes the item when s is empty.
func (t *Tag) setText(f Fourcc, s string) {
	if s == "" {
		t.Remove(atom.FourccIdent(f))
		return
	}
	t.Set(atom.FourccIdent(f), data.UTF8(s))
}

func (t *Tag) integer(f Fourcc) (int64, bool) {
	v, ok := t.Value(atom.FourccIdent(f))
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

func (t *Tag) flag(f Fourcc) bool {
	v, ok := t.Value(atom.FourccIdent(f))
	if !ok {
		return false
	}
	b, _ := v.AsBool()
	return b
}

// setFlag stores true as a one byte integer and removes the item for false.
func (t *Tag) setFlag(f Fourcc, b bool) {
	if !b {
		t.Remove(atom.FourccIdent(f))
		return
	}
	t.Set(atom.FourccIdent(f), data.Bool(true))
}

// Title returns the ©nam item.
func (t *Tag) Title() (string, bool) { return t.text(atom.Title) }

// SetTitle sets the ©nam item. An empty string removes it, as for every
// text setter.
func (t *Tag) SetTitle(s string) { t.setText(atom.Title, s) }

// Artist returns the ©ART item.
func (t *Tag) Artist() (string, bool) { return t.text(atom.Artist) }

// SetArtist sets the ©ART item.
func (t *Tag) SetArtist(s string) { t.setText(atom.Artist, s) }

// Album returns the ©alb item.
func (t *Tag) Album() (string, bool) { return t.text(atom.Album) }

// SetAlbum sets the ©alb item.
func (t *Tag) SetAlbum(s string) { t.setText(atom.Album, s) }

// AlbumArtist returns the aART item.
func (t *Tag) AlbumArtist() (string, bool) { return t.text(atom.AlbumArtist) }

// SetAlbumArtist sets the aART item.
func (t *Tag) SetAlbumArtist(s string) { t.setText(atom.AlbumArtist, s) }

// Comment returns the ©cmt item.
func (t *Tag) Comment() (string, bool) { return t.text(atom.Comment) }

// SetComment sets the ©cmt item.
func (t *Tag) SetComment(s string) { t.setText(atom.Comment, s) }

// Composer returns the ©wrt item.
func (t *Tag) Composer() (string, bool) { return t.text(atom.Composer) }

// SetComposer sets the ©wrt item.
func (t *Tag) SetComposer(s string) { t.setText(atom.Composer, s) }

// Copyright returns the cprt item.
func (t *Tag) Copyright() (string, bool) { return t.text(atom.Copyright) }

// SetCopyright sets the cprt item.
func (t *Tag) SetCopyright(s string) { t.setText(atom.Copyright, s) }

// Year returns the ©day item. iTunes stores either a year or a full
// ISO 8601 timestamp.
func (t *Tag) Year() (string, bool) { return t.text(atom.Year) }

// SetYear sets the ©day item.
func (t *Tag) SetYear(s string) { t.setText(atom.Year, s) }

// Grouping returns the ©grp item.
func (t *Tag) Grouping() (string, bool) { return t.text(atom.Grouping) }

// SetGrouping sets the ©grp item.
func (t *Tag) SetGrouping(s string) { t.setText(atom.Grouping, s) }

// Lyrics returns the ©lyr item.
func (t *Tag) Lyrics() (string, bool) { return t.text(atom.Lyrics) }

// SetLyrics sets the ©lyr item.
func (t *Tag) SetLyrics(s string) { t.setText(atom.Lyrics, s) }

// Encoder returns the ©too item.
func (t *Tag) Encoder() (string, bool) { return t.text(atom.Encoder) }

// SetEncoder sets the ©too item.
func (t *Tag) SetEncoder(s string) { t.setText(atom.Encoder, s) }

// Description returns the desc item.
func (t *Tag) Description() (string, bool) { return t.text(atom.Description) }

// SetDescription sets the desc item.
func (t *Tag) SetDescription(s string) { t.setText(atom.Description, s) }

// Category returns the catg item.
func (t *Tag) Category() (string, bool) { return t.text(atom.Category) }

// SetCategory sets the catg item.
func (t *Tag) SetCategory(s string) { t.setText(atom.Category, s) }

// Keyword returns the keyw item.
func (t *Tag) Keyword() (string, bool) { return t.text(atom.Keyword) }

// SetKeyword sets the keyw item.
func (t *Tag) SetKeyword(s string) { t.setText(atom.Keyword, s) }

// PodcastURL returns the purl item.
func (t *Tag) PodcastURL() (string, bool) { return t.text(atom.PodcastURL) }

// SetPodcastURL sets the purl item.
func (t *Tag) SetPodcastURL(s string) { t.setText(atom.PodcastURL, s) }

// PodcastEpisodeGUID returns the egid item.
func (t *Tag) PodcastEpisodeGUID() (string, bool) { return t.text(atom.PodcastEpisodeGUID) }

// SetPodcastEpisodeGUID sets the egid item.
func (t *Tag) SetPodcastEpisodeGUID(s string) { t.setText(atom.PodcastEpisodeGUID, s) }

// PurchaseDate returns the purd item.
func (t *Tag) PurchaseDate() (string, bool) { return t.text(atom.PurchaseDate) }

// SetPurchaseDate sets the purd item.
func (t *Tag) SetPurchaseDate(s string) { t.setText(atom.PurchaseDate, s) }

// TVShowName returns the tvsh item.
func (t *Tag) TVShowName() (string, bool) { return t.text(atom.TVShowName) }

// SetTVShowName sets the tvsh item.
func (t *Tag) SetTVShowName(s string) { t.setText(atom.TVShowName, s) }

// TVNetworkName returns the tvnn item.
func (t *Tag) TVNetworkName() (string, bool) { return t.text(atom.TVNetworkName) }

// SetTVNetworkName sets the tvnn item.
func (t *Tag) SetTVNetworkName(s string) { t.setText(atom.TVNetworkName, s) }

// TVEpisodeName returns the tven item.
func (t *Tag) TVEpisodeName() (string, bool) { return t.text(atom.TVEpisodeName) }

// SetTVEpisodeName sets the tven item.
func (t *Tag) SetTVEpisodeName(s string) { t.setText(atom.TVEpisodeName, s) }

// Work returns the ©wrk item.
func (t *Tag) Work() (string, bool) { return t.text(atom.Work) }

// SetWork sets the ©wrk item.
func (t *Tag) SetWork(s string) { t.setText(atom.Work, s) }

// Movement returns the ©mvn item.
func (t *Tag) Movement() (string, bool) { return t.text(atom.Movement) }

// SetMovement sets the ©mvn item.
func (t *Tag) SetMovement(s string) { t.setText(atom.Movement, s) }

// ISRC returns the freeform ISRC item.
func (t *Tag) ISRC() (string, bool) {
	v, ok := t.Value(atom.ISRC)
	if !ok {
		return "", false
	}
	return v.AsText()
}

// SetISRC sets the freeform ISRC item.
func (t *Tag) SetISRC(s string) { t.setFreeformText(atom.ISRC, s) }

// Lyricist returns the freeform LYRICIST item.
func (t *Tag) Lyricist() (string, bool) {
	v, ok := t.Value(atom.Lyricist)
	if !ok {
		return "", false
	}
	return v.AsText()
}

// SetLyricist sets the freeform LYRICIST item.
func (t *Tag) SetLyricist(s string) { t.setFreeformText(atom.Lyricist, s) }

func (t *Tag) setFreeformText(id Ident, s string) {
	if s == "" {
		t.Remove(id)
		return
	}
	t.Set(id, data.UTF8(s))
}

// BPM returns the tmpo item.
func (t *Tag) BPM() (int, bool) {
	n, ok := t.integer(atom.BPM)
	return int(n), ok
}

// SetBPM sets the tmpo item as a 2 byte integer.
func (t *Tag) SetBPM(bpm uint16) {
	t.Set(atom.FourccIdent(atom.BPM), data.Int(int64(bpm), 2))
}

// TVEpisode returns the tves item.
func (t *Tag) TVEpisode() (int, bool) {
	n, ok := t.integer(atom.TVEpisode)
	return int(n), ok
}

// SetTVEpisode sets the tves item as a 4 byte integer.
func (t *Tag) SetTVEpisode(n uint32) {
	t.Set(atom.FourccIdent(atom.TVEpisode), data.Int(int64(n), 4))
}

// TVSeason returns the tvsn item.
func (t *Tag) TVSeason() (int, bool) {
	n, ok := t.integer(atom.TVSeason)
	return int(n), ok
}

// SetTVSeason sets the tvsn item as a 4 byte integer.
func (t *Tag) SetTVSeason(n uint32) {
	t.Set(atom.FourccIdent(atom.TVSeason), data.Int(int64(n), 4))
}

// MovementCount returns the ©mvc item.
func (t *Tag) MovementCount() (int, bool) {
	n, ok := t.integer(atom.MovementCount)
	return int(n), ok
}

// SetMovementCount sets the ©mvc item as a 2 byte integer.
func (t *Tag) SetMovementCount(n uint16) {
	t.Set(atom.FourccIdent(atom.MovementCount), data.Int(int64(n), 2))
}

// MovementIndex returns the ©mvi item.
func (t *Tag) MovementIndex() (int, bool) {
	n, ok := t.integer(atom.MovementIndex)
	return int(n), ok
}

// SetMovementIndex sets the ©mvi item as a 2 byte integer.
func (t *Tag) SetMovementIndex(n uint16) {
	t.Set(atom.FourccIdent(atom.MovementIndex), data.Int(int64(n), 2))
}

// Compilation reports whether the cpil flag is set.
func (t *Tag) Compilation() bool { return t.flag(atom.Compilation) }

// SetCompilation sets or removes the cpil flag.
func (t *Tag) SetCompilation(b bool) { t.setFlag(atom.Compilation, b) }

// GaplessPlayback reports whether the pgap flag is set.
func (t *Tag) GaplessPlayback() bool { return t.flag(atom.GaplessPlayback) }

// SetGaplessPlayback sets or removes the pgap flag.
func (t *Tag) SetGaplessPlayback(b bool) { t.setFlag(atom.GaplessPlayback, b) }

// Podcast reports whether the pcst flag is set.
func (t *Tag) Podcast() bool { return t.flag(atom.Podcast) }

// SetPodcast sets or removes the pcst flag.
func (t *Tag) SetPodcast(b bool) { t.setFlag(atom.Podcast, b) }

// ShowMovement reports whether the shwm flag is set.
func (t *Tag) ShowMovement() bool { return t.flag(atom.ShowMovement) }

// SetShowMovement sets or removes the shwm flag.
func (t *Tag) SetShowMovement(b bool) { t.setFlag(atom.ShowMovement, b) }

// TrackNumber returns the track number and total track count of the trkn
// item. Either may be zero when unset.
func (t *Tag) TrackNumber() (number, total int, ok bool) {
	return t.pair(atom.TrackNumber)
}

// SetTrackNumber sets the trkn item.
func (t *Tag) SetTrackNumber(number, total uint16) {
	t.Set(atom.FourccIdent(atom.TrackNumber), data.Reserved(encodePair(number, total, 8)))
}

// DiscNumber returns the disc number and total disc count of the disk item.
func (t *Tag) DiscNumber() (number, total int, ok bool) {
	return t.pair(atom.DiscNumber)
}

// SetDiscNumber sets the disk item.
func (t *Tag) SetDiscNumber(number, total uint16) {
	t.Set(atom.FourccIdent(atom.DiscNumber), data.Reserved(encodePair(number, total, 6)))
}

// pair decodes the implicit layout of trkn and disk: 2 padding bytes, the
// number and the total as 16-bit big endian, then optional padding.
func (t *Tag) pair(f Fourcc) (int, int, bool) {
	v, ok := t.Value(atom.FourccIdent(f))
	if !ok || v.Kind != data.KindReserved {
		return 0, 0, false
	}
	switch {
	case len(v.Bytes) >= 6:
		return int(binary.BigEndian.Uint16(v.Bytes[2:])), int(binary.BigEndian.Uint16(v.Bytes[4:])), true
	case len(v.Bytes) >= 4:
		return int(binary.BigEndian.Uint16(v.Bytes[2:])), 0, true
	default:
		return 0, 0, false
	}
}

func encodePair(number, total uint16, size int) []byte {
	b := make([]byte, size)
	binary.BigEndian.PutUint16(b[2:], number)
	binary.BigEndian.PutUint16(b[4:], total)
	return b
}

// MediaType returns the stik item.
func (t *Tag) MediaType() (MediaType, bool) {
	n, ok := t.integer(atom.MediaType)
	if !ok || n < 0 || n > 0xFF {
		return 0, false
	}
	return MediaType(n), true
}

// SetMediaType sets the stik item.
func (t *Tag) SetMediaType(m MediaType) {
	t.Set(atom.FourccIdent(atom.MediaType), data.Int(int64(m), 1))
}

// AdvisoryRating returns the rtng item.
func (t *Tag) AdvisoryRating() (AdvisoryRating, bool) {
	n, ok := t.integer(atom.AdvisoryRating)
	if !ok {
		return 0, false
	}
	return advisoryRatingOf(n), true
}

// SetAdvisoryRating sets the rtng item.
func (t *Tag) SetAdvisoryRating(r AdvisoryRating) {
	t.Set(atom.FourccIdent(atom.AdvisoryRating), data.Int(int64(r), 1))
}
