package fanart

// ShowArt is the fanart.tv /v3/tv/{tvdbId} response: typed lists of
// candidate artwork per category.
type ShowArt struct {
	Name         string      `json:"name"`
	TheTvdbID    string      `json:"thetvdb_id"`
	ClearLogo    []Art       `json:"clearlogo"`
	HDTVLogo     []Art       `json:"hdtvlogo"`
	ClearArt     []Art       `json:"clearart"`
	HDClearArt   []Art       `json:"hdclearart"`
	TVBanner     []Art       `json:"tvbanner"`
	TVThumb      []Art       `json:"tvthumb"`
	TVPoster     []Art       `json:"tvposter"`
	Background   []SeasonArt `json:"showbackground"`
	SeasonPoster []Art       `json:"seasonposter"`
	SeasonBanner []SeasonArt `json:"seasonbanner"`
	SeasonThumb  []SeasonArt `json:"seasonthumb"`
	CharacterArt []Art       `json:"characterart"`
}

// Art is a single artwork candidate.
type Art struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Lang  string `json:"lang"`
	Likes string `json:"likes"`
}

// SeasonArt is an artwork candidate bound to a season number. The
// season field is a string in the upstream payload ("0", "1", "all").
type SeasonArt struct {
	Art
	Season string `json:"season"`
}

// ForSeason filters season-bound candidates down to one season number.
func ForSeason(items []SeasonArt, seasonNumber string) []Art {
	var out []Art
	for _, item := range items {
		if item.Season == seasonNumber {
			out = append(out, item.Art)
		}
	}
	return out
}
