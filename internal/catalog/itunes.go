package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const itunesSearchURL = "https://itunes.apple.com/search"

// ITunesURL overrides the iTunes search endpoint in tests.
var ITunesURL = itunesSearchURL

// FindUncompressedCover looks up an album on the iTunes search API and
// rewrites its artwork URL into the uncompressed original hosted on
// mzstatic. Returns "" when no album matches or the artwork URL does not
// have the expected shape.
func FindUncompressedCover(ctx context.Context, httpClient *http.Client, term, country string) (string, error) {
	if country == "" {
		country = "us"
	}
	endpoint := ITunesURL + "?term=" + url.QueryEscape(term) +
		"&country=" + url.QueryEscape(country) + "&entity=album&limit=1"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("catalog: itunes search: status %d", resp.StatusCode)
	}

	var payload struct {
		Results []struct {
			ArtworkURL100 string `json:"artworkUrl100"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Results) == 0 {
		return "", nil
	}

	// The 100x100 thumbnail URL embeds the original asset path after
	// /image/thumb/; the r1000 host serves that asset uncompressed.
	hires := strings.Replace(payload.Results[0].ArtworkURL100, "100x100bb", "100000x100000-999", 1)
	parts := strings.SplitN(hires, "/image/thumb/", 2)
	if len(parts) != 2 {
		return "", nil
	}
	segs := strings.Split(parts[1], "/")
	if len(segs) < 2 {
		return "", nil
	}
	return "https://a5.mzstatic.com/us/r1000/0/" + strings.Join(segs[:len(segs)-1], "/"), nil
}
