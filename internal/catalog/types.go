package catalog

import "strings"

// Album is the catalog record for one release. Images are ordered
// largest-first by the upstream API.
type Album struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []Artist          `json:"artists"`
	Images       []Image           `json:"images"`
	Tracks       TrackPage         `json:"tracks"`
	ReleaseDate  string            `json:"release_date"`
	Label        string            `json:"label"`
	ExternalURLs map[string]string `json:"external_urls"`
}

// Artist is a contributing artist on a release.
type Artist struct {
	Name string `json:"name"`
}

// Image is one cover rendition.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Track is one entry of an album's track list.
type Track struct {
	Name        string `json:"name"`
	TrackNumber int    `json:"track_number"`
}

// TrackPage is the paged track list embedded in an album record.
type TrackPage struct {
	Items []Track `json:"items"`
}

// SearchPage is one page of album search results. Next is an opaque cursor
// URL for the following page, empty when the listing is exhausted.
type SearchPage struct {
	Items []Album `json:"items"`
	Next  string  `json:"next"`
}

// CoverURL returns the largest cover image URL, or "" when the record has
// no images.
func (a *Album) CoverURL() string {
	if len(a.Images) == 0 {
		return ""
	}
	return a.Images[0].URL
}

// ExternalURL returns the public catalog page for the album, or "".
func (a *Album) ExternalURL() string {
	return a.ExternalURLs["spotify"]
}

// JoinArtists renders contributor names as a single display string.
func JoinArtists(artists []Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
