package atom

import "sync"

type namedIdent struct {
	name  string
	ident Ident
}

// friendlyNames lists every identifier with a title case display name.
var friendlyNames = []namedIdent{
	{"Filetype", FourccIdent(FileType)},
	{"Media Data", FourccIdent(MediaData)},
	{"Movie", FourccIdent(Movie)},
	{"Movie Header", FourccIdent(MovieHeader)},
	{"Track", FourccIdent(Track)},
	{"Media", FourccIdent(Media)},
	{"Media Information", FourccIdent(MediaInformation)},
	{"Sample Table", FourccIdent(SampleTable)},
	{"Sample Table Chunk Offset", FourccIdent(ChunkOffset)},
	{"Sample Table Chunk Offset 64", FourccIdent(ChunkOffset64)},
	{"User Data", FourccIdent(UserData)},
	{"Metadata", FourccIdent(Metadata)},
	{"Handler Reference", FourccIdent(HandlerReference)},
	{"Item List", FourccIdent(ItemList)},
	{"Data", FourccIdent(Data)},
	{"Mean", FourccIdent(Mean)},
	{"Name", FourccIdent(Name)},
	{"Free", FourccIdent(Free)},
	{"Freeform", FourccIdent(Freeform)},
	{"Advisory Rating", FourccIdent(AdvisoryRating)},
	{"Album", FourccIdent(Album)},
	{"Album Artist", FourccIdent(AlbumArtist)},
	{"Artist", FourccIdent(Artist)},
	{"Artwork", FourccIdent(Artwork)},
	{"Bpm", FourccIdent(BPM)},
	{"Comment", FourccIdent(Comment)},
	{"Compilation", FourccIdent(Compilation)},
	{"Composer", FourccIdent(Composer)},
	{"Copyright", FourccIdent(Copyright)},
	{"Custom Genre", FourccIdent(CustomGenre)},
	{"Disc Number", FourccIdent(DiscNumber)},
	{"Encoder", FourccIdent(Encoder)},
	{"Standard Genre", FourccIdent(StandardGenre)},
	{"Title", FourccIdent(Title)},
	{"Track Number", FourccIdent(TrackNumber)},
	{"Year", FourccIdent(Year)},
	{"Grouping", FourccIdent(Grouping)},
	{"Media Type", FourccIdent(MediaType)},
	{"Category", FourccIdent(Category)},
	{"Keyword", FourccIdent(Keyword)},
	{"Podcast", FourccIdent(Podcast)},
	{"Podcast Episode Global Unique Id", FourccIdent(PodcastEpisodeGUID)},
	{"Podcast Url", FourccIdent(PodcastURL)},
	{"Description", FourccIdent(Description)},
	{"Lyrics", FourccIdent(Lyrics)},
	{"Tv Episode", FourccIdent(TVEpisode)},
	{"Tv Episode Name", FourccIdent(TVEpisodeName)},
	{"Tv Network Name", FourccIdent(TVNetworkName)},
	{"Tv Season", FourccIdent(TVSeason)},
	{"Tv Show Name", FourccIdent(TVShowName)},
	{"Purchase Date", FourccIdent(PurchaseDate)},
	{"Gapless Playback", FourccIdent(GaplessPlayback)},
	{"Movement", FourccIdent(Movement)},
	{"Movement Count", FourccIdent(MovementCount)},
	{"Movement Index", FourccIdent(MovementIndex)},
	{"Work", FourccIdent(Work)},
	{"Show Movement", FourccIdent(ShowMovement)},
	{"Isrc", ISRC},
	{"Lyricist", Lyricist},
}

// nameMaps builds the lookup maps once, on first use. They are never
// mutated afterwards.
var nameMaps = sync.OnceValues(func() (map[string]Ident, map[Ident]string) {
	byName := make(map[string]Ident, len(friendlyNames))
	byIdent := make(map[Ident]string, len(friendlyNames))
	for _, n := range friendlyNames {
		byName[n.name] = n.ident
		byIdent[n.ident] = n.name
	}
	return byName, byIdent
})

// FriendlyName returns the title case display name of an identifier.
func FriendlyName(i Ident) (string, bool) {
	_, byIdent := nameMaps()
	name, ok := byIdent[i]
	return name, ok
}

// IdentByFriendlyName returns the identifier with the given display name.
func IdentByFriendlyName(name string) (Ident, bool) {
	byName, _ := nameMaps()
	i, ok := byName[name]
	return i, ok
}
