package atom

import "github.com/simonhull/mp4meta/internal/data"

// knownItems lists the ilst items the metadata template looks for. Adding a
// tag is one more entry.
var knownItems = []Ident{
	FourccIdent(AdvisoryRating),
	FourccIdent(Album),
	FourccIdent(AlbumArtist),
	FourccIdent(Artist),
	FourccIdent(Artwork),
	FourccIdent(BPM),
	FourccIdent(Comment),
	FourccIdent(Compilation),
	FourccIdent(Composer),
	FourccIdent(Copyright),
	FourccIdent(CustomGenre),
	FourccIdent(DiscNumber),
	FourccIdent(Encoder),
	FourccIdent(StandardGenre),
	FourccIdent(Title),
	FourccIdent(TrackNumber),
	FourccIdent(Year),
	FourccIdent(Grouping),
	FourccIdent(MediaType),
	FourccIdent(Category),
	FourccIdent(Keyword),
	FourccIdent(Podcast),
	FourccIdent(PodcastEpisodeGUID),
	FourccIdent(PodcastURL),
	FourccIdent(Description),
	FourccIdent(Lyrics),
	FourccIdent(TVEpisode),
	FourccIdent(TVEpisodeName),
	FourccIdent(TVNetworkName),
	FourccIdent(TVSeason),
	FourccIdent(TVShowName),
	FourccIdent(PurchaseDate),
	FourccIdent(GaplessPlayback),
	FourccIdent(Movement),
	FourccIdent(MovementCount),
	FourccIdent(MovementIndex),
	FourccIdent(Work),
	FourccIdent(ShowMovement),
	ISRC,
	Lyricist,
}

// KnownItems returns the identifiers of the items in the metadata template.
func KnownItems() []Ident {
	return append([]Ident(nil), knownItems...)
}

// FileTypeTemplate returns the template of the ftyp atom.
func FileTypeTemplate() *Atom {
	return NewRawData(FileType, 0, data.KindUTF8)
}

// MetadataTemplate returns a fresh template of the metadata path:
//
//	moov > udta > meta > ilst > item > data
func MetadataTemplate() *Atom {
	return MetadataTemplateFor(knownItems)
}

// MetadataTemplateFor returns a template of the metadata path matching the
// given items. Duplicate idents are dropped.
func MetadataTemplateFor(idents []Ident) *Atom {
	items := make([]*Atom, 0, len(idents))
	seen := make(map[Ident]bool, len(idents))
	for _, ident := range idents {
		if seen[ident] {
			continue
		}
		seen[ident] = true
		items = append(items, NewItem(ident))
	}
	return NewContainer(Movie, 0,
		NewContainer(UserData, 0,
			NewContainer(Metadata, 4,
				NewContainer(ItemList, 0, items...),
			),
		),
	)
}

// ItemListOf returns the ilst atom of a metadata tree rooted at moov, or nil.
func ItemListOf(moov *Atom) *Atom {
	return moov.ChildPath(UserData, Metadata, ItemList)
}
