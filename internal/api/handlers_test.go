package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/youruser/posterapp/internal/catalog"
	"github.com/youruser/posterapp/internal/schema"
)

// fakeCatalog satisfies the Catalog interface without network access.
type fakeCatalog struct {
	album *catalog.Album
	page  *catalog.SearchPage
	err   error
}

func (f *fakeCatalog) AccessToken(ctx context.Context) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "test-token", nil
}

func (f *fakeCatalog) AlbumByID(ctx context.Context, token, id string) (*catalog.Album, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.album, nil
}

func (f *fakeCatalog) Search(ctx context.Context, token, query string, limit int, next string) (*catalog.SearchPage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.page, nil
}

func newTestRouter(cat Catalog) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	s := NewServer(cat)
	r := gin.New()
	s.RegisterRoutes(r)
	return s, r
}

// coverServer serves a small PNG so album resolution can embed a cover.
func coverServer(t *testing.T) *httptest.Server {
	t.Helper()
	img := imaging.New(16, 16, color.NRGBA{R: 180, G: 40, B: 40, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode cover: %v", err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(buf.Bytes())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testAlbum(coverURL string) *catalog.Album {
	return &catalog.Album{
		ID:      "abc",
		Name:    "OK Computer",
		Artists: []catalog.Artist{{Name: "Radiohead"}},
		Images:  []catalog.Image{{URL: coverURL, Width: 640, Height: 640}},
		Tracks: catalog.TrackPage{Items: []catalog.Track{
			{Name: "Airbag", TrackNumber: 1},
			{Name: "Paranoid Android", TrackNumber: 2},
		}},
		ReleaseDate:  "1997-05-21",
		Label:        "Parlophone",
		ExternalURLs: map[string]string{"spotify": "https://open.spotify.com/album/abc"},
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("unmarshal %s %s response: %v", method, path, err)
		}
	}
	return w, payload
}

func TestHealth(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	w, payload := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if payload["status"] != "ok" {
		t.Errorf("payload = %v", payload)
	}
}

func TestSearchCatalog(t *testing.T) {
	cat := &fakeCatalog{page: &catalog.SearchPage{
		Items: []catalog.Album{{
			ID:      "a1",
			Name:    "One",
			Artists: []catalog.Artist{{Name: "A"}, {Name: "B"}},
			Images:  []catalog.Image{{URL: "https://img/1"}},
		}},
		Next: "https://api/next",
	}}
	_, r := newTestRouter(cat)

	w, payload := doJSON(t, r, http.MethodGet, "/api/search?q=one", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	items := payload["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("items = %v", items)
	}
	first := items[0].(map[string]any)
	if first["title"] != "One" || first["description"] != "A, B" || first["image"] != "https://img/1" {
		t.Errorf("item = %v", first)
	}
	if payload["next"] != "https://api/next" {
		t.Errorf("next = %v", payload["next"])
	}
}

func TestSearchCatalogUnavailable(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{err: fmt.Errorf("boom")})
	w, _ := doJSON(t, r, http.MethodGet, "/api/search?q=one", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestCreateMovieSession(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	w, payload := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "movie"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if payload["posterType"] != "movie" {
		t.Errorf("posterType = %v", payload["posterType"])
	}
	if payload["template"] != "classic" {
		t.Errorf("template = %v", payload["template"])
	}
	if controls := payload["controls"].([]any); len(controls) == 0 {
		t.Error("expected controls")
	}
	preview, _ := payload["preview"].(string)
	if !strings.HasPrefix(preview, "data:image/png;base64,") {
		t.Errorf("preview prefix = %.40q", preview)
	}
	if templates := payload["templates"].([]any); len(templates) < 3 {
		t.Errorf("templates = %v", templates)
	}
}

func TestCreateSessionUnknownType(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "sculpture"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateMusicSessionRequiresAlbumID(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "music"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateMusicSessionEnrichesConfig(t *testing.T) {
	cover := coverServer(t)
	_, r := newTestRouter(&fakeCatalog{album: testAlbum(cover.URL)})

	w, payload := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "music", "albumId": "abc"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}

	values := map[string]any{}
	for _, raw := range payload["controls"].([]any) {
		ctrl := raw.(map[string]any)
		values[ctrl["key"].(string)] = ctrl["value"]
	}
	if values["artistName"] != "Radiohead" {
		t.Errorf("artistName = %v", values["artistName"])
	}
	if values["albumName"] != "OK Computer" {
		t.Errorf("albumName = %v", values["albumName"])
	}
	coverVal, _ := values["albumCover"].(string)
	if !strings.HasPrefix(coverVal, "data:image/png;base64,") {
		t.Errorf("albumCover should be an embedded data URI, got %.40q", coverVal)
	}
}

func TestCreateMusicSessionAlbumLookupFails(t *testing.T) {
	s, r := newTestRouter(&fakeCatalog{err: fmt.Errorf("down")})
	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "music", "albumId": "abc"})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if _, ok := s.Sessions.Get("abc"); ok {
		t.Error("failed session should not linger in the store")
	}
}

func createMovie(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w, payload := doJSON(t, r, http.MethodPost, "/api/sessions", gin.H{"type": "movie"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create session: %d: %s", w.Code, w.Body)
	}
	return payload["id"].(string)
}

func TestUpdateConfig(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	w, payload := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/config",
		gin.H{"key": "movieTitle", "value": "Alien"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	for _, raw := range payload["controls"].([]any) {
		ctrl := raw.(map[string]any)
		if ctrl["key"] == "movieTitle" {
			if ctrl["value"] != "Alien" {
				t.Errorf("movieTitle = %v", ctrl["value"])
			}
			if ctrl["canReset"] != true {
				t.Error("edited control should be resettable")
			}
			return
		}
	}
	t.Fatal("movieTitle control missing")
}

func TestUpdateConfigUnknownKey(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	w, _ := doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/config",
		gin.H{"key": "nope", "value": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestResetConfig(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)
	doJSON(t, r, http.MethodPatch, "/api/sessions/"+id+"/config",
		gin.H{"key": "fontSize", "value": 80})

	w, payload := doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/config/reset",
		gin.H{"key": "fontSize"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	for _, raw := range payload["controls"].([]any) {
		ctrl := raw.(map[string]any)
		if ctrl["key"] == "fontSize" {
			if ctrl["value"] != ctrl["default"] {
				t.Errorf("value %v != default %v after reset", ctrl["value"], ctrl["default"])
			}
			if ctrl["canReset"] != false {
				t.Error("reset control should not be resettable")
			}
		}
	}
}

func TestSetTemplate(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	w, payload := doJSON(t, r, http.MethodPut, "/api/sessions/"+id+"/template",
		gin.H{"template": "minimal"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if payload["template"] != "minimal" {
		t.Errorf("template = %v", payload["template"])
	}
}

func TestPreviewImage(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/sessions/"+id+"/preview", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a PNG")
	}
}

func TestExportPDF(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions/"+id+"/export",
		gin.H{"pageSize": "a4", "orientation": "portrait", "format": "pdf"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "movie-poster-a4.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF")
	}
}

func TestExportRefusedBeforeReady(t *testing.T) {
	s, r := newTestRouter(&fakeCatalog{})
	sess := s.Sessions.Create("album", schema.ByType("music"))

	w, _ := doJSON(t, r, http.MethodPost, "/api/sessions/"+sess.ID+"/export",
		gin.H{"format": "pdf"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestUnknownSession(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	w, _ := doJSON(t, r, http.MethodGet, "/api/sessions/missing/form", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	_, r := newTestRouter(&fakeCatalog{})
	id := createMovie(t, r)

	req := httptest.NewRequest(http.MethodDelete, "/api/sessions/"+id, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	w2, _ := doJSON(t, r, http.MethodGet, "/api/sessions/"+id+"/form", nil)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("deleted session form status = %d, want 404", w2.Code)
	}
}
