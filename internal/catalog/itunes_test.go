package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFindUncompressedCover(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("term") != "radiohead ok computer" || q.Get("country") != "us" {
			t.Errorf("unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"artworkUrl100": "https://is1-ssl.mzstatic.com/image/thumb/Music115/v4/ab/cd/ef/cover.jpg/100x100bb.jpg"},
			},
		})
	}))
	defer srv.Close()
	old := ITunesURL
	ITunesURL = srv.URL
	defer func() { ITunesURL = old }()

	got, err := FindUncompressedCover(context.Background(), srv.Client(), "radiohead ok computer", "")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	want := "https://a5.mzstatic.com/us/r1000/0/Music115/v4/ab/cd/ef/cover.jpg"
	if got != want {
		t.Errorf("cover url = %q, want %q", got, want)
	}
}

func TestFindUncompressedCoverNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()
	old := ITunesURL
	ITunesURL = srv.URL
	defer func() { ITunesURL = old }()

	got, err := FindUncompressedCover(context.Background(), srv.Client(), "nothing", "us")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty url, got %q", got)
	}
}

func TestFindUncompressedCoverUnexpectedShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"artworkUrl100": "https://example.com/flat.jpg"},
			},
		})
	}))
	defer srv.Close()
	old := ITunesURL
	ITunesURL = srv.URL
	defer func() { ITunesURL = old }()

	got, err := FindUncompressedCover(context.Background(), srv.Client(), "odd", "us")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty url for unexpected artwork shape, got %q", got)
	}
}
