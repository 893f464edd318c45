package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/billow-app/billow/internal/models"
)

// ErrSessionExpired is returned once the server answers 401; the stored
// token is cleared before it surfaces.
var ErrSessionExpired = errors.New("session expired, please log in again")

const cacheTTL = 5 * time.Minute

type cacheEntry struct {
	body      []byte
	fetchedAt time.Time
}

// Client is the typed HTTP client over the invoice API. Successful reads
// are cached per operation and parameters for five minutes; writes
// invalidate the invoice cache.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *TokenStore

	mu    sync.Mutex
	token string
	cache map[string]cacheEntry
}

func New(baseURL string) (*Client, error) {
	tokens, err := NewTokenStore()
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  tokens,
		cache:   make(map[string]cacheEntry),
	}

	if token, err := tokens.Load(); err == nil {
		c.token = token
	}

	return c, nil
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	_ = c.tokens.Save(token)
}

func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
	_ = c.tokens.Clear()
}

// Invalidate drops every cache entry whose key starts with prefix.
func (c *Client) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.cache {
		if strings.HasPrefix(key, prefix) {
			delete(c.cache, key)
		}
	}
}

func (c *Client) do(method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	token := c.Token()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		_ = c.tokens.Clear()
		// A 401 on a bearer request means the token no longer works.
		// Without a token it is just a rejected login or signup, so the
		// server's message is the one to show.
		if token != "" {
			return nil, ErrSessionExpired
		}
	}

	if resp.StatusCode >= 400 {
		var errRes models.ErrorResponse
		if json.Unmarshal(respBody, &errRes) == nil && errRes.Message != "" {
			return nil, errors.New(errRes.Message)
		}
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	return respBody, nil
}

// read performs a cached GET. A miss hits the network and retries once on
// transport failure before giving up.
func (c *Client) read(cacheKey, path string, out any) error {
	c.mu.Lock()
	entry, ok := c.cache[cacheKey]
	c.mu.Unlock()

	if ok && time.Since(entry.fetchedAt) < cacheTTL {
		return json.Unmarshal(entry.body, out)
	}

	body, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return err
		}
		body, err = c.do(http.MethodGet, path, nil)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.cache[cacheKey] = cacheEntry{body: body, fetchedAt: time.Now()}
	c.mu.Unlock()

	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

// write performs a mutating request. Writes are never retried and always
// drop the invoice cache.
func (c *Client) write(method, path string, body, out any) error {
	respBody, err := c.do(method, path, body)
	if err != nil {
		return err
	}

	c.Invalidate("invoice")

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}
