package mp4meta

import "fmt"

// MediaType is the iTunes media kind stored in the stik item.
type MediaType uint8

// Media types.
const (
	MediaTypeMovie           MediaType = 0
	MediaTypeNormal          MediaType = 1
	MediaTypeAudiobook       MediaType = 2
	MediaTypeWhackedBookmark MediaType = 5
	MediaTypeMusicVideo      MediaType = 6
	MediaTypeShortFilm       MediaType = 9
	MediaTypeTVShow          MediaType = 10
	MediaTypeBooklet         MediaType = 11
)

// String returns the iTunes name of the media type.
func (m MediaType) String() string {
	switch m {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeNormal:
		return "Normal"
	case MediaTypeAudiobook:
		return "Audiobook"
	case MediaTypeWhackedBookmark:
		return "Whacked Bookmark"
	case MediaTypeMusicVideo:
		return "Music Video"
	case MediaTypeShortFilm:
		return "Short Film"
	case MediaTypeTVShow:
		return "TV Show"
	case MediaTypeBooklet:
		return "Booklet"
	default:
		return fmt.Sprintf("MediaType(%d)", uint8(m))
	}
}

// AdvisoryRating is the content rating stored in the rtng item.
type AdvisoryRating uint8

// Advisory ratings. Any stored value other than 0 and 2 reads as
// AdvisoryRatingExplicit.
const (
	AdvisoryRatingInoffensive AdvisoryRating = 0
	AdvisoryRatingClean       AdvisoryRating = 2
	AdvisoryRatingExplicit    AdvisoryRating = 4
)

func advisoryRatingOf(n int64) AdvisoryRating {
	switch n {
	case int64(AdvisoryRatingInoffensive):
		return AdvisoryRatingInoffensive
	case int64(AdvisoryRatingClean):
		return AdvisoryRatingClean
	default:
		return AdvisoryRatingExplicit
	}
}

// String returns the name of the rating.
func (r AdvisoryRating) String() string {
	switch advisoryRatingOf(int64(r)) {
	case AdvisoryRatingInoffensive:
		return "Inoffensive"
	case AdvisoryRatingClean:
		return "Clean"
	default:
		return "Explicit"
	}
}
