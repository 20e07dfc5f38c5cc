package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New(srv.Client(), "id", "secret")
	c.AuthURL = srv.URL + "/api/token"
	c.APIURL = srv.URL + "/v1"
	return c, srv
}

func TestAccessToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			t.Errorf("bad basic auth: %q %q %v", user, pass, ok)
		}
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok"})
	})
	c, _ := newTestClient(t, mux)

	tok, err := c.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if tok != "tok" {
		t.Fatalf("token = %q", tok)
	}
}

func TestAccessTokenErrorStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})
	c, _ := newTestClient(t, mux)
	if _, err := c.AccessToken(context.Background()); err == nil {
		t.Fatal("expected error for 401")
	}
}

func TestAlbumByID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/albums/abc", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "abc",
			"name": "OK Computer",
			"artists": []map[string]string{
				{"name": "Radiohead"},
			},
			"images": []map[string]any{
				{"url": "https://img/640", "width": 640, "height": 640},
				{"url": "https://img/300", "width": 300, "height": 300},
			},
			"tracks": map[string]any{
				"items": []map[string]any{
					{"name": "Airbag", "track_number": 1},
					{"name": "Paranoid Android", "track_number": 2},
				},
			},
			"release_date":  "1997-05-21",
			"label":         "Parlophone",
			"external_urls": map[string]string{"spotify": "https://open.spotify.com/album/abc"},
		})
	})
	c, _ := newTestClient(t, mux)

	album, err := c.AlbumByID(context.Background(), "tok", "abc")
	if err != nil {
		t.Fatalf("album: %v", err)
	}
	if album.Name != "OK Computer" {
		t.Errorf("name = %q", album.Name)
	}
	if album.CoverURL() != "https://img/640" {
		t.Errorf("cover should be the first (largest) image, got %q", album.CoverURL())
	}
	if got := JoinArtists(album.Artists); got != "Radiohead" {
		t.Errorf("artists = %q", got)
	}
	if len(album.Tracks.Items) != 2 || album.Tracks.Items[1].Name != "Paranoid Android" {
		t.Errorf("tracks = %+v", album.Tracks)
	}
	if album.ExternalURL() != "https://open.spotify.com/album/abc" {
		t.Errorf("external url = %q", album.ExternalURL())
	}
}

func TestSearchWithQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "radiohead" || q.Get("type") != "album" || q.Get("limit") != "20" {
			t.Errorf("unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"albums": map[string]any{
				"items": []map[string]any{{"id": "a1", "name": "One"}},
				"next":  "https://api/next-page",
			},
		})
	})
	c, _ := newTestClient(t, mux)

	page, err := c.Search(context.Background(), "tok", "radiohead", 20, "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "a1" {
		t.Errorf("items = %+v", page.Items)
	}
	if page.Next != "https://api/next-page" {
		t.Errorf("next = %q", page.Next)
	}
}

func TestSearchEmptyQueryFallsBackToNewReleases(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/browse/new-releases", func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(map[string]any{
			"albums": map[string]any{"items": []map[string]any{}, "next": ""},
		})
	})
	c, _ := newTestClient(t, mux)

	if _, err := c.Search(context.Background(), "tok", "", 20, ""); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !called {
		t.Fatal("expected new-releases endpoint")
	}
}

func TestSearchFollowsOpaqueNextCursor(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/page2", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"albums": map[string]any{
				"items": []map[string]any{{"id": "a2", "name": "Two"}},
				"next":  "",
			},
		})
	})
	c, srv := newTestClient(t, mux)

	page, err := c.Search(context.Background(), "tok", "ignored-when-cursor-set", 20, srv.URL+"/v1/page2")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ID != "a2" {
		t.Errorf("items = %+v", page.Items)
	}
	if page.Next != "" {
		t.Errorf("exhausted listing should have empty next, got %q", page.Next)
	}
}

func TestJoinArtists(t *testing.T) {
	got := JoinArtists([]Artist{{Name: "A"}, {Name: "B"}, {Name: "C"}})
	if got != "A, B, C" {
		t.Errorf("JoinArtists = %q", got)
	}
	if JoinArtists(nil) != "" {
		t.Error("JoinArtists(nil) should be empty")
	}
}
