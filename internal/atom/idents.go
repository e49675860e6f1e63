package atom

// Structural atoms.
var (
	FileType         = Fourcc{'f', 't', 'y', 'p'} // File type and brand
	MediaData        = Fourcc{'m', 'd', 'a', 't'} // Sample data
	Movie            = Fourcc{'m', 'o', 'o', 'v'} // Movie container holding all metadata
	MovieHeader      = Fourcc{'m', 'v', 'h', 'd'}
	Track            = Fourcc{'t', 'r', 'a', 'k'}
	Media            = Fourcc{'m', 'd', 'i', 'a'}
	MediaInformation = Fourcc{'m', 'i', 'n', 'f'}
	SampleTable      = Fourcc{'s', 't', 'b', 'l'}
	ChunkOffset      = Fourcc{'s', 't', 'c', 'o'} // 32-bit chunk offsets
	ChunkOffset64    = Fourcc{'c', 'o', '6', '4'} // 64-bit chunk offsets
	UserData         = Fourcc{'u', 'd', 't', 'a'}
	Metadata         = Fourcc{'m', 'e', 't', 'a'} // Has a 4 byte version/flags field before its children
	HandlerReference = Fourcc{'h', 'd', 'l', 'r'}
	ItemList         = Fourcc{'i', 'l', 's', 't'} // One child per metadata item
	Data             = Fourcc{'d', 'a', 't', 'a'} // Typed value of an item
	Mean             = Fourcc{'m', 'e', 'a', 'n'} // Freeform namespace
	Name             = Fourcc{'n', 'a', 'm', 'e'} // Freeform item name
	Free             = Fourcc{'f', 'r', 'e', 'e'} // Padding
	Freeform         = Fourcc{'-', '-', '-', '-'}
)

// iTunes 4.0 items.
var (
	AdvisoryRating = Fourcc{'r', 't', 'n', 'g'}
	Album          = Fourcc{0xA9, 'a', 'l', 'b'}
	AlbumArtist    = Fourcc{'a', 'A', 'R', 'T'}
	Artist         = Fourcc{0xA9, 'A', 'R', 'T'}
	Artwork        = Fourcc{'c', 'o', 'v', 'r'}
	BPM            = Fourcc{'t', 'm', 'p', 'o'}
	Comment        = Fourcc{0xA9, 'c', 'm', 't'}
	Compilation    = Fourcc{'c', 'p', 'i', 'l'}
	Composer       = Fourcc{0xA9, 'w', 'r', 't'}
	Copyright      = Fourcc{'c', 'p', 'r', 't'}
	CustomGenre    = Fourcc{0xA9, 'g', 'e', 'n'}
	DiscNumber     = Fourcc{'d', 'i', 's', 'k'}
	Encoder        = Fourcc{0xA9, 't', 'o', 'o'}
	StandardGenre  = Fourcc{'g', 'n', 'r', 'e'}
	Title          = Fourcc{0xA9, 'n', 'a', 'm'}
	TrackNumber    = Fourcc{'t', 'r', 'k', 'n'}
	Year           = Fourcc{0xA9, 'd', 'a', 'y'}
)

// iTunes 4.2 items.
var (
	Grouping  = Fourcc{0xA9, 'g', 'r', 'p'}
	MediaType = Fourcc{'s', 't', 'i', 'k'}
)

// iTunes 4.9 items.
var (
	Category           = Fourcc{'c', 'a', 't', 'g'}
	Keyword            = Fourcc{'k', 'e', 'y', 'w'}
	Podcast            = Fourcc{'p', 'c', 's', 't'}
	PodcastEpisodeGUID = Fourcc{'e', 'g', 'i', 'd'}
	PodcastURL         = Fourcc{'p', 'u', 'r', 'l'}
)

// iTunes 5.0 items.
var (
	Description = Fourcc{'d', 'e', 's', 'c'}
	Lyrics      = Fourcc{0xA9, 'l', 'y', 'r'}
)

// iTunes 6.0 items.
var (
	TVEpisode     = Fourcc{'t', 'v', 'e', 's'}
	TVEpisodeName = Fourcc{'t', 'v', 'e', 'n'}
	TVNetworkName = Fourcc{'t', 'v', 'n', 'n'}
	TVSeason      = Fourcc{'t', 'v', 's', 'n'}
	TVShowName    = Fourcc{'t', 'v', 's', 'h'}
)

// iTunes 6.0.2 and 7.0 items.
var (
	PurchaseDate    = Fourcc{'p', 'u', 'r', 'd'}
	GaplessPlayback = Fourcc{'p', 'g', 'a', 'p'}
)

// Work and movement items.
var (
	Movement      = Fourcc{0xA9, 'm', 'v', 'n'}
	MovementCount = Fourcc{0xA9, 'm', 'v', 'c'}
	MovementIndex = Fourcc{0xA9, 'm', 'v', 'i'}
	Work          = Fourcc{0xA9, 'w', 'r', 'k'}
	ShowMovement  = Fourcc{'s', 'h', 'w', 'm'}
)

// AppleITunesMean is the mean string of most freeform items.
const AppleITunesMean = "com.apple.iTunes"

// Freeform items.
var (
	ISRC     = FreeformIdent(AppleITunesMean, "ISRC")
	Lyricist = FreeformIdent(AppleITunesMean, "LYRICIST")
)
