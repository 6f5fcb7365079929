package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sidecarr/sidecarr/internal/config"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := config.TMDBConfig{
		APIKey:       "test-api-key",
		BaseURL:      server.URL,
		ImageBaseURL: "https://image.tmdb.org/t/p",
		Timeout:      5,
		Locale:       "es",
	}
	return NewClient(cfg, zerolog.Nop())
}

func TestClient_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"with key", "abc123", true},
		{"without key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(config.TMDBConfig{APIKey: tt.apiKey}, zerolog.Nop())
			if got := client.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_FindByTvdbID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/find/81189" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("external_source") != "tvdb_id" {
			t.Errorf("unexpected external_source: %s", r.URL.Query().Get("external_source"))
		}

		json.NewEncoder(w).Encode(FindResponse{
			TVResults: []TVResult{{ID: 1396, Name: "Breaking Bad"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	id, err := client.FindByTvdbID(context.Background(), 81189)
	if err != nil {
		t.Fatalf("FindByTvdbID() error = %v", err)
	}
	if id != 1396 {
		t.Errorf("FindByTvdbID() = %d, want 1396", id)
	}
}

func TestClient_FindByTvdbID_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(FindResponse{})
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.FindByTvdbID(context.Background(), 999999)
	if !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("FindByTvdbID() error = %v, want ErrSeriesNotFound", err)
	}
}

func TestClient_FindByTvdbID_NoAPIKey(t *testing.T) {
	client := NewClient(config.TMDBConfig{}, zerolog.Nop())
	_, err := client.FindByTvdbID(context.Background(), 81189)
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("FindByTvdbID() error = %v, want ErrAPIKeyMissing", err)
	}
}

func TestClient_GetSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != "credits,external_ids,content_ratings,videos" {
			t.Errorf("unexpected append_to_response: %s", got)
		}
		if got := r.URL.Query().Get("language"); got != "es" {
			t.Errorf("unexpected language: %s", got)
		}

		json.NewEncoder(w).Encode(TVDetails{
			ID:           1396,
			Name:         "Breaking Bad",
			Status:       "Ended",
			VoteCount:    9000,
			VoteAverage:  8.9,
			FirstAirDate: "2008-01-20",
			LastAirDate:  "2013-09-29",
			Seasons: []Season{
				{SeasonNumber: 1, Name: "Season 1"},
				{SeasonNumber: 2, Name: "Season 2"},
			},
			ExternalIDs: &ExternalIDs{ImdbID: "tt0903747", TvdbID: 81189},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	details, err := client.GetSeries(context.Background(), 1396)
	if err != nil {
		t.Fatalf("GetSeries() error = %v", err)
	}

	if details.Name != "Breaking Bad" {
		t.Errorf("Name = %q", details.Name)
	}
	if len(details.Seasons) != 2 {
		t.Errorf("len(Seasons) = %d, want 2", len(details.Seasons))
	}
	if details.ExternalIDs == nil || details.ExternalIDs.TvdbID != 81189 {
		t.Errorf("ExternalIDs = %+v", details.ExternalIDs)
	}
}

func TestClient_GetSeries_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{StatusCode: 34, StatusMessage: "The resource you requested could not be found."})
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetSeries(context.Background(), 1396)
	if !errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("GetSeries() error = %v, want ErrSeriesNotFound", err)
	}
}

func TestClient_GetSeries_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetSeries(context.Background(), 1396)
	if !errors.Is(err, ErrAPIError) {
		t.Errorf("GetSeries() error = %v, want ErrAPIError", err)
	}
}

func TestClient_GetSeason(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396/season/1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		json.NewEncoder(w).Encode(SeasonDetails{
			SeasonNumber: 1,
			Name:         "Season 1",
			Episodes: []EpisodeDetails{
				{SeasonNumber: 1, EpisodeNumber: 1, Name: "Pilot", AirDate: "2008-01-20"},
				{SeasonNumber: 1, EpisodeNumber: 2, Name: "Cat's in the Bag..."},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	season, err := client.GetSeason(context.Background(), 1396, 1)
	if err != nil {
		t.Fatalf("GetSeason() error = %v", err)
	}
	if len(season.Episodes) != 2 {
		t.Fatalf("len(Episodes) = %d, want 2", len(season.Episodes))
	}
	if season.Episodes[0].Name != "Pilot" {
		t.Errorf("Episodes[0].Name = %q", season.Episodes[0].Name)
	}
}

func TestClient_GetSeason_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetSeason(context.Background(), 1396, 99)
	if !errors.Is(err, ErrSeasonNotFound) {
		t.Errorf("GetSeason() error = %v, want ErrSeasonNotFound", err)
	}
	if errors.Is(err, ErrSeriesNotFound) {
		t.Errorf("GetSeason() error = %v, must not match ErrSeriesNotFound", err)
	}
}

func TestClient_GetEpisode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396/season/1/episode/1" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("append_to_response"); got != "credits,external_ids" {
			t.Errorf("unexpected append_to_response: %s", got)
		}

		json.NewEncoder(w).Encode(EpisodeDetails{
			ID:            62085,
			Name:          "Pilot",
			SeasonNumber:  1,
			EpisodeNumber: 1,
			ExternalIDs:   &ExternalIDs{ImdbID: "tt0959621"},
			Credits: &Credits{
				Cast: []CastMember{{Name: "Bryan Cranston", Character: "Walter White", Order: 0}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	episode, err := client.GetEpisode(context.Background(), 1396, 1, 1)
	if err != nil {
		t.Fatalf("GetEpisode() error = %v", err)
	}
	if episode.ID != 62085 {
		t.Errorf("ID = %d", episode.ID)
	}
	if episode.Credits == nil || len(episode.Credits.Cast) != 1 {
		t.Errorf("Credits = %+v", episode.Credits)
	}
}

func TestClient_GetEpisode_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server)
	_, err := client.GetEpisode(context.Background(), 1396, 9, 99)
	if !errors.Is(err, ErrEpisodeNotFound) {
		t.Errorf("GetEpisode() error = %v, want ErrEpisodeNotFound", err)
	}
}

func TestClient_SearchSeries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/tv" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "breaking bad" {
			t.Errorf("unexpected query: %s", got)
		}

		json.NewEncoder(w).Encode(SearchTVResponse{
			Page:         1,
			TotalResults: 1,
			Results:      []TVResult{{ID: 1396, Name: "Breaking Bad"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server)
	results, err := client.SearchSeries(context.Background(), "breaking bad")
	if err != nil {
		t.Fatalf("SearchSeries() error = %v", err)
	}
	if len(results) != 1 || results[0].ID != 1396 {
		t.Errorf("SearchSeries() = %+v", results)
	}
}

func TestClient_GetImageURL(t *testing.T) {
	client := NewClient(config.TMDBConfig{ImageBaseURL: "https://image.tmdb.org/t/p"}, zerolog.Nop())

	if got := client.GetImageURL("/abc.jpg", "original"); got != "https://image.tmdb.org/t/p/original/abc.jpg" {
		t.Errorf("GetImageURL() = %q", got)
	}
	if got := client.GetImageURL("", "original"); got != "" {
		t.Errorf("GetImageURL(empty) = %q, want empty", got)
	}
}
