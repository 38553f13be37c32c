// Package bsky is a minimal atproto XRPC client covering the two calls the
// bot needs: session creation and posting with a link facet.
package bsky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"paperbot/config"
)

// linkToken is the visible text the link facet is attached to. Keeping the
// URL out of the post body means truncation upstream can never split it.
const linkToken = "link"

// Client talks to a Bluesky PDS over XRPC.
type Client struct {
	host       string
	httpClient *http.Client

	accessJwt string
	did       string
}

// NewClient creates a client for the given PDS host. An empty host selects
// the default bsky.social entryway.
func NewClient(host string) *Client {
	if host == "" {
		host = config.DefaultBskyHost
	}
	return &Client{
		host:       host,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type sessionRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type sessionResponse struct {
	AccessJwt string `json:"accessJwt"`
	Did       string `json:"did"`
}

// Login opens an app-password session. Must succeed before Publish.
func (c *Client) Login(ctx context.Context, handle, password string) error {
	var resp sessionResponse
	err := c.doJSONRequest(ctx, "/xrpc/com.atproto.server.createSession",
		sessionRequest{Identifier: handle, Password: password}, &resp)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	c.accessJwt = resp.AccessJwt
	c.did = resp.Did
	return nil
}

type facetIndex struct {
	ByteStart int `json:"byteStart"`
	ByteEnd   int `json:"byteEnd"`
}

type facetFeature struct {
	Type string `json:"$type"`
	URI  string `json:"uri"`
}

type facet struct {
	Index    facetIndex     `json:"index"`
	Features []facetFeature `json:"features"`
}

type postRecord struct {
	Type      string  `json:"$type"`
	Text      string  `json:"text"`
	Facets    []facet `json:"facets,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

type createRecordRequest struct {
	Repo       string     `json:"repo"`
	Collection string     `json:"collection"`
	Record     postRecord `json:"record"`
}

type createRecordResponse struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// Publish creates a post and returns its record URI. The link rides as a
// rich-text facet over a trailing "link" token appended to the text.
func (c *Client) Publish(ctx context.Context, text, link string) (string, error) {
	if c.accessJwt == "" {
		return "", errors.New("not logged in")
	}

	record := postRecord{
		Type:      "app.bsky.feed.post",
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if link != "" {
		start := len(record.Text)
		record.Text += linkToken
		record.Facets = []facet{{
			Index: facetIndex{ByteStart: start, ByteEnd: len(record.Text)},
			Features: []facetFeature{{
				Type: "app.bsky.richtext.facet#link",
				URI:  link,
			}},
		}}
	}

	var resp createRecordResponse
	err := c.doJSONRequest(ctx, "/xrpc/com.atproto.repo.createRecord", createRecordRequest{
		Repo:       c.did,
		Collection: "app.bsky.feed.post",
		Record:     record,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	return resp.URI, nil
}

// doJSONRequest posts the payload as JSON to the given XRPC path and
// decodes the response into result when non-nil.
func (c *Client) doJSONRequest(ctx context.Context, path string, payload, result interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessJwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned %d: %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
