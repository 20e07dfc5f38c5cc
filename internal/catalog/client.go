// Package catalog is the music-catalog HTTP client: client-credentials
// auth, album lookup, album search with opaque cursor paging and a
// high-resolution cover lookup against the iTunes search API.
package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultAuthURL = "https://accounts.spotify.com/api/token"
	defaultAPIURL  = "https://api.spotify.com/v1"
)

// Client talks to the catalog API. The zero endpoints default to the
// public service; tests point them at a local server.
type Client struct {
	*http.Client // [Embedded]
	ClientID     string
	ClientSecret string
	AuthURL      string
	APIURL       string
}

// New builds a Client with the given credentials.
func New(httpClient *http.Client, clientID, clientSecret string) *Client {
	return &Client{
		Client:       httpClient,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AuthURL:      defaultAuthURL,
		APIURL:       defaultAPIURL,
	}
}

// AccessToken fetches a client-credentials bearer token.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	body := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.AuthURL, body)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.ClientID + ":" + c.ClientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("catalog: token request: status %d", resp.StatusCode)
	}
	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("catalog: token response had no access_token")
	}
	return payload.AccessToken, nil
}

// AlbumByID fetches the full album record: title, artists, images
// (largest-first), track list, release date and label.
func (c *Client) AlbumByID(ctx context.Context, token, id string) (*Album, error) {
	var album Album
	if err := c.getJSON(ctx, token, c.APIURL+"/albums/"+url.PathEscape(id), &album); err != nil {
		return nil, err
	}
	return &album, nil
}

// Search returns one page of albums. A non-empty next cursor (an opaque
// URL from a previous page) takes priority over the query; an empty query
// falls back to the new-releases listing.
func (c *Client) Search(ctx context.Context, token, query string, limit int, next string) (*SearchPage, error) {
	endpoint := next
	if endpoint == "" {
		if query != "" {
			endpoint = c.APIURL + "/search?q=" + url.QueryEscape(query) +
				"&type=album&limit=" + strconv.Itoa(limit)
		} else {
			endpoint = c.APIURL + "/browse/new-releases?limit=" + strconv.Itoa(limit)
		}
	}
	var payload struct {
		Albums SearchPage `json:"albums"`
	}
	if err := c.getJSON(ctx, token, endpoint, &payload); err != nil {
		return nil, err
	}
	return &payload.Albums, nil
}

func (c *Client) getJSON(ctx context.Context, token, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog: GET %s: status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
