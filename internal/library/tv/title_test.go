package tv

import "testing"

func TestCleanSeriesTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Breaking Bad", "breakingbad"},
		{"leading article", "The Wire", "wire"},
		{"punctuation", "Marvel's Agents of S.H.I.E.L.D.", "marvelsagentsofshield"},
		{"ampersand", "Law & Order", "lawandorder"},
		{"digits", "Brooklyn Nine-Nine 99", "brooklynninenine99"},
		{"whitespace", "  Dark  ", "dark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanSeriesTitle(tt.title); got != tt.want {
				t.Errorf("CleanSeriesTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestNormalizeSortTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"The Wire", "wire"},
		{"A Discovery of Witches", "discovery of witches"},
		{"An Idiot Abroad", "idiot abroad"},
		{"Dark", "dark"},
		{"Theatre of Blood", "theatre of blood"},
	}

	for _, tt := range tests {
		if got := NormalizeSortTitle(tt.title); got != tt.want {
			t.Errorf("NormalizeSortTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestTitleSlug(t *testing.T) {
	if got := TitleSlug(1396, "Breaking Bad"); got != "1396-breakingbad" {
		t.Errorf("TitleSlug() = %q, want %q", got, "1396-breakingbad")
	}
}

func TestRatingsHasValue(t *testing.T) {
	if (Ratings{}).HasValue() {
		t.Error("zero Ratings should not have a value")
	}
	if !(Ratings{Votes: 10, Value: 7.5}).HasValue() {
		t.Error("Ratings with votes should have a value")
	}
}

func TestEpisodeFileScreenshot(t *testing.T) {
	file := &EpisodeFile{
		Episodes: []Episode{{
			Images: []Image{
				{CoverType: CoverPoster, URL: "https://example.org/p.jpg"},
				{CoverType: CoverScreenshot, URL: "https://example.org/s.jpg"},
			},
		}},
	}

	shot := file.Screenshot()
	if shot == nil || shot.URL != "https://example.org/s.jpg" {
		t.Errorf("Screenshot() = %+v, want screenshot image", shot)
	}

	empty := &EpisodeFile{Episodes: []Episode{{}}}
	if empty.Screenshot() != nil {
		t.Error("Screenshot() on episode without images should be nil")
	}
}
