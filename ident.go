package mp4meta

import "github.com/simonhull/mp4meta/internal/atom"

// Ident identifies a metadata item: a four character code or a freeform
// mean and name pair. Idents are comparable.
type Ident = atom.Ident

// Fourcc is a four byte atom identifier.
type Fourcc = atom.Fourcc

// ParseFourcc converts a four character string, which may contain the ©
// sign, into a Fourcc.
func ParseFourcc(s string) (Fourcc, error) {
	return atom.ParseFourcc(s)
}

// ParseIdent parses a fourcc such as "©nam" or a freeform ident written as
// "----:mean:name".
func ParseIdent(s string) (Ident, error) {
	return atom.ParseIdent(s)
}

// FourccIdent returns the ident of an item stored under a fourcc.
func FourccIdent(f Fourcc) Ident {
	return atom.FourccIdent(f)
}

// FreeformIdent returns the ident of a freeform item.
func FreeformIdent(mean, name string) Ident {
	return atom.FreeformIdent(mean, name)
}

// FriendlyName returns the display name of an ident, such as "Album Artist"
// for aART.
func FriendlyName(i Ident) (string, bool) {
	return atom.FriendlyName(i)
}

// IdentByFriendlyName is the inverse of FriendlyName.
func IdentByFriendlyName(name string) (Ident, bool) {
	return atom.IdentByFriendlyName(name)
}

// KnownItems returns the idents read by default, in template order.
func KnownItems() []Ident {
	return atom.KnownItems()
}

// Item idents.
var (
	AdvisoryRatingIdent     = atom.FourccIdent(atom.AdvisoryRating)
	AlbumIdent              = atom.FourccIdent(atom.Album)
	AlbumArtistIdent        = atom.FourccIdent(atom.AlbumArtist)
	ArtistIdent             = atom.FourccIdent(atom.Artist)
	ArtworkIdent            = atom.FourccIdent(atom.Artwork)
	BPMIdent                = atom.FourccIdent(atom.BPM)
	CategoryIdent           = atom.FourccIdent(atom.Category)
	CommentIdent            = atom.FourccIdent(atom.Comment)
	CompilationIdent        = atom.FourccIdent(atom.Compilation)
	ComposerIdent           = atom.FourccIdent(atom.Composer)
	CopyrightIdent          = atom.FourccIdent(atom.Copyright)
	CustomGenreIdent        = atom.FourccIdent(atom.CustomGenre)
	DescriptionIdent        = atom.FourccIdent(atom.Description)
	DiscNumberIdent         = atom.FourccIdent(atom.DiscNumber)
	EncoderIdent            = atom.FourccIdent(atom.Encoder)
	GaplessPlaybackIdent    = atom.FourccIdent(atom.GaplessPlayback)
	GroupingIdent           = atom.FourccIdent(atom.Grouping)
	KeywordIdent            = atom.FourccIdent(atom.Keyword)
	LyricsIdent             = atom.FourccIdent(atom.Lyrics)
	MediaTypeIdent          = atom.FourccIdent(atom.MediaType)
	MovementIdent           = atom.FourccIdent(atom.Movement)
	MovementCountIdent      = atom.FourccIdent(atom.MovementCount)
	MovementIndexIdent      = atom.FourccIdent(atom.MovementIndex)
	PodcastIdent            = atom.FourccIdent(atom.Podcast)
	PodcastEpisodeGUIDIdent = atom.FourccIdent(atom.PodcastEpisodeGUID)
	PodcastURLIdent         = atom.FourccIdent(atom.PodcastURL)
	PurchaseDateIdent       = atom.FourccIdent(atom.PurchaseDate)
	ShowMovementIdent       = atom.FourccIdent(atom.ShowMovement)
	StandardGenreIdent      = atom.FourccIdent(atom.StandardGenre)
	TitleIdent              = atom.FourccIdent(atom.Title)
	TrackNumberIdent        = atom.FourccIdent(atom.TrackNumber)
	TVEpisodeIdent          = atom.FourccIdent(atom.TVEpisode)
	TVEpisodeNameIdent      = atom.FourccIdent(atom.TVEpisodeName)
	TVNetworkNameIdent      = atom.FourccIdent(atom.TVNetworkName)
	TVSeasonIdent           = atom.FourccIdent(atom.TVSeason)
	TVShowNameIdent         = atom.FourccIdent(atom.TVShowName)
	WorkIdent               = atom.FourccIdent(atom.Work)
	YearIdent               = atom.FourccIdent(atom.Year)

	ISRCIdent     = atom.ISRC
	LyricistIdent = atom.Lyricist
)
