// Package api exposes the poster editor over HTTP: catalog search, editing
// sessions with schema-driven config, live previews and PDF/PNG export.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/posterapp/internal/artwork"
	"github.com/youruser/posterapp/internal/catalog"
	"github.com/youruser/posterapp/internal/export"
	"github.com/youruser/posterapp/internal/palette"
	"github.com/youruser/posterapp/internal/poster"
	"github.com/youruser/posterapp/internal/schema"
	"github.com/youruser/posterapp/internal/util"
)

const (
	searchPageSize = 20
	scanCodeSize   = 256
)

// Catalog is the subset of the catalog client the handlers need.
type Catalog interface {
	AccessToken(ctx context.Context) (string, error)
	AlbumByID(ctx context.Context, token, id string) (*catalog.Album, error)
	Search(ctx context.Context, token, query string, limit int, next string) (*catalog.SearchPage, error)
}

// Server wires the catalog client, the export pipeline and the live
// session store into gin handlers.
type Server struct {
	Catalog  Catalog
	HTTP     *http.Client
	Pipeline *export.Pipeline
	Sessions *export.Sessions
	Log      *slog.Logger
}

// NewServer builds a Server with the default pipeline and an empty
// session store.
func NewServer(cat Catalog) *Server {
	return &Server{
		Catalog:  cat,
		HTTP:     util.DefaultClient,
		Pipeline: export.NewPipeline(),
		Sessions: export.NewSessions(),
		Log:      slog.Default(),
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// searchCatalog returns one page of album results. A non-empty "next"
// cursor (the opaque URL from a previous page) continues that listing; an
// empty query lists new releases.
func (s *Server) searchCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	token, err := s.Catalog.AccessToken(ctx)
	if err != nil {
		s.Log.Warn("catalog token unavailable", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	page, err := s.Catalog.Search(ctx, token, c.Query("q"), searchPageSize, c.Query("next"))
	if err != nil {
		s.Log.Warn("catalog search failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	type item struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       string `json:"image"`
	}
	items := make([]item, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, item{
			ID:          a.ID,
			Title:       a.Name,
			Description: catalog.JoinArtists(a.Artists),
			Image:       a.CoverURL(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "next": page.Next})
}

type createSessionRequest struct {
	Type    string `json:"type"`
	AlbumID string `json:"albumId"`
}

// createSession starts an editing session. Music sessions resolve their
// catalog record synchronously and enter the session ready to render;
// movie sessions have no external data and are ready immediately.
func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sch := schema.ByType(req.Type)
	if sch == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown poster type %q", req.Type)})
		return
	}

	sess := s.Sessions.Create(sch.Name(), sch)
	switch sch.Name() {
	case "album":
		if req.AlbumID == "" {
			s.Sessions.Remove(sess.ID)
			c.JSON(http.StatusBadRequest, gin.H{"error": "albumId is required for music posters"})
			return
		}
		if err := s.resolveAlbum(c.Request.Context(), sess, req.AlbumID); err != nil {
			s.Sessions.Remove(sess.ID)
			s.Log.Warn("album lookup failed", "albumId", req.AlbumID, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "album lookup failed"})
			return
		}
	default:
		sess.MarkReady(nil, nil)
	}

	s.sessionState(c, sess, true)
}

// resolveAlbum fetches the catalog record and enriches the session: text
// fields, the embedded cover, the extracted palette and the scan code.
func (s *Server) resolveAlbum(ctx context.Context, sess *export.Session, albumID string) error {
	token, err := s.Catalog.AccessToken(ctx)
	if err != nil {
		return err
	}
	album, err := s.Catalog.AlbumByID(ctx, token, albumID)
	if err != nil {
		return err
	}

	cover := ""
	if url := album.CoverURL(); url != "" {
		cover, err = artwork.FetchDataURI(ctx, url)
		if err != nil {
			s.Log.Warn("cover download failed", "url", url, "error", err)
			cover = ""
		}
	}

	tracks := make([]string, 0, len(album.Tracks.Items))
	for _, t := range album.Tracks.Items {
		tracks = append(tracks, fmt.Sprintf("%d. %s", t.TrackNumber, t.Name))
	}

	scan := ""
	if album.ExternalURL() != "" {
		if scan, err = artwork.ScanCode(album.ExternalURL(), scanCodeSize); err != nil {
			s.Log.Warn("scan code generation failed", "error", err)
			scan = ""
		}
	}

	meta := &poster.Metadata{
		Title:       album.Name,
		Artist:      catalog.JoinArtists(album.Artists),
		Tracks:      tracks,
		ReleaseDate: album.ReleaseDate,
		Label:       album.Label,
		ExternalURL: album.ExternalURL(),
		CoverSource: cover,
		Palette:     palette.FromSource(ctx, cover),
		ScanCode:    scan,
	}
	sess.MarkReady(meta, map[string]any{
		"artistName": meta.Artist,
		"albumName":  album.Name,
		"albumCover": cover,
	})
	return nil
}

// sessionState writes the full editor state: controls, preview, template
// choices and export defaults.
func (s *Server) sessionState(c *gin.Context, sess *export.Session, created bool) {
	preview, err := sess.RenderPreview(s.Pipeline)
	if err != nil && !errors.Is(err, export.ErrNotReady) {
		s.Log.Warn("preview render failed", "session", sess.ID, "error", err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"id":             sess.ID,
		"posterType":     sess.PosterType,
		"template":       sess.Template(),
		"templates":      s.Pipeline.Registry.Names(),
		"controls":       sess.Controls(),
		"preview":        preview,
		"exportDefaults": export.DefaultOptions(),
	})
}

func (s *Server) session(c *gin.Context) (*export.Session, bool) {
	sess, ok := s.Sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return sess, true
}

func (s *Server) sessionForm(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"controls": sess.Controls()})
}

type updateConfigRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (s *Server) updateConfig(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req updateConfigRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sess.UpdateConfig(req.Key, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Key == "useHighResCover" {
		s.swapCover(c.Request.Context(), sess)
	}
	s.sessionState(c, sess, false)
}

// swapCover replaces the album cover with the uncompressed iTunes artwork
// when the high-res toggle is on, and restores the catalog cover when it
// is turned off. Best-effort: lookup failures keep the current cover.
func (s *Server) swapCover(ctx context.Context, sess *export.Session) {
	if sess.PosterType != "album" {
		return
	}
	if !sess.Config().Bool("useHighResCover") {
		if meta := sess.Metadata(); meta != nil && meta.CoverSource != "" {
			if err := sess.UpdateConfig("albumCover", meta.CoverSource); err != nil {
				s.Log.Warn("cover restore rejected", "error", err)
			}
		}
		return
	}
	term := sess.Config().String("artistName") + " " + sess.Config().String("albumName")
	url, err := catalog.FindUncompressedCover(ctx, s.HTTP, term, "us")
	if err != nil || url == "" {
		s.Log.Warn("high-res cover lookup failed", "term", term, "error", err)
		return
	}
	uri, err := artwork.FetchDataURI(ctx, url)
	if err != nil {
		s.Log.Warn("high-res cover download failed", "url", url, "error", err)
		return
	}
	if err := sess.UpdateConfig("albumCover", uri); err != nil {
		s.Log.Warn("high-res cover update rejected", "error", err)
	}
}

type resetConfigRequest struct {
	Key string `json:"key"`
}

func (s *Server) resetConfig(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req resetConfigRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sess.ResetConfig(req.Key); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.sessionState(c, sess, false)
}

type setTemplateRequest struct {
	Template string `json:"template"`
}

func (s *Server) setTemplate(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	var req setTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess.SetTemplate(req.Template)
	s.sessionState(c, sess, false)
}

// previewImage serves the current preview as a PNG.
func (s *Server) previewImage(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	uri, err := sess.RenderPreview(s.Pipeline)
	if err != nil {
		if errors.Is(err, export.ErrNotReady) {
			c.JSON(http.StatusConflict, gin.H{"error": "session data not loaded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	data, _, err := artwork.DecodeDataURI(uri)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// exportArtifact renders the final artifact and streams it as a download.
// An export requested before the session's data has loaded is refused.
func (s *Server) exportArtifact(c *gin.Context) {
	sess, ok := s.session(c)
	if !ok {
		return
	}
	opts := export.DefaultOptions()
	if err := c.BindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	artifact, err := sess.Export(s.Pipeline, opts)
	if err != nil {
		if errors.Is(err, export.ErrNotReady) {
			s.Log.Warn("export refused: data not ready", "session", sess.ID)
			c.JSON(http.StatusConflict, gin.H{"error": "session data not loaded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (s *Server) deleteSession(c *gin.Context) {
	s.Sessions.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}
