package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"odgen/pkg/roster"
)

const userAgent = "odgen/1.0"

// retryDelay is the base backoff between attempts.
var retryDelay = 500 * time.Millisecond

// Client talks to a running `odgen serve` instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the server at baseURL, e.g. http://localhost:8080.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Document is a generated report as returned by the server.
type Document struct {
	// FileName is the bare name from Content-Disposition, empty when the
	// server sent none.
	FileName string
	Data     []byte
}

// Health checks that the server is reachable and healthy.
func (c *Client) Health() error {
	resp, err := c.doWithRetries(func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, c.baseURL+"/healthz", nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Preview uploads a roster and returns the server's statistics for it.
func (c *Client) Preview(path string, ev *roster.Event) (*roster.Summary, error) {
	resp, err := c.upload("/preview", path, ev)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var s roster.Summary
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}
	return &s, nil
}

// Generate uploads a roster and returns the generated document.
func (c *Client) Generate(path string, ev *roster.Event) (*Document, error) {
	resp, err := c.upload("/generate", path, ev)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc := &Document{Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		doc.FileName = safeFileName(params["filename"])
	}
	return doc, nil
}

// safeFileName reduces a server-supplied name to its final path element.
// Names that would address a directory come back empty.
func safeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	switch name {
	case ".", "..", "/":
		return ""
	}
	return name
}

func (c *Client) upload(endpoint, path string, ev *roster.Event) (*http.Response, error) {
	body, contentType, err := multipartBody(path, ev)
	if err != nil {
		return nil, err
	}

	resp, err := c.doWithRetries(func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		return req, nil
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func multipartBody(path string, ev *roster.Event) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read roster: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("roster", filepath.Base(path))
	if err != nil {
		return nil, "", err
	}
	if _, err := fw.Write(data); err != nil {
		return nil, "", err
	}

	if ev != nil {
		for k, v := range map[string]string{"date": ev.Date, "from": ev.From, "to": ev.To} {
			if v == "" {
				continue
			}
			if err := mw.WriteField(k, v); err != nil {
				return nil, "", err
			}
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}

// decodeError turns a JSON error body into an error, falling back to the status code.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}

// doWithRetries sends a request up to 3 times for 502/503/504 or transport errors.
// newReq is called per attempt so request bodies are fresh.
func (c *Client) doWithRetries(newReq func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		req, err := newReq()
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := c.httpClient.Do(req)
		if err == nil {
			switch resp.StatusCode {
			case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				resp.Body.Close()
				lastErr = fmt.Errorf("transient status code: %d", resp.StatusCode)
			default:
				return resp, nil
			}
		} else {
			lastErr = err
		}

		if attempt < 2 {
			time.Sleep(time.Duration(attempt+1) * retryDelay)
		}
	}

	return nil, fmt.Errorf("request failed after 3 attempts: %w", lastErr)
}
