// Package api is the HTTP client for the Career Studio backend. All calls
// are bearer-authenticated; the token is fetched fresh from the TokenSource
// on every call rather than cached.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"career-studio/internal/adapter/wire"
)

// TokenSource supplies a bearer token for one outbound call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError is a non-2xx backend response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// ErrUnauthorized marks 401 responses so callers can surface an
// authentication failure instead of a generic transport one.
var ErrUnauthorized = errors.New("unauthorized")

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a configured backend client. The timeout bounds every
// call end to end so a hung backend cannot pin a save in flight forever.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout, Transport: transport},
		tokens:  tokens,
	}
}

// cvID converts a string id to the shape the backend expects in request
// bodies: numeric ids go out as JSON numbers, anything else as a string.
func cvID(id string) interface{} {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	return id
}

// ID is a backend identifier. Responses carry it as either a JSON number or
// a string depending on the endpoint; both decode to the string form.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id is neither a string nor a number: %s", b)
	}
	*id = ID(n.String())
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, authed bool) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out, authed)
}

func (c *Client) send(req *http.Request, out interface{}, authed bool) error {
	if authed {
		token, err := c.tokens.Token(req.Context())
		if err != nil {
			return fmt.Errorf("fetch token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// --- CV endpoints ---

type CVSummary struct {
	ID        ID     `json:"cv_id"`
	Title     string `json:"title"`
	Template  string `json:"template"`
	IsPublic  bool   `json:"is_public"`
	PDFURL    string `json:"pdf_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CVRecord struct {
	CVSummary
	Content wire.Content `json:"content"`
}

func (c *Client) CreateCV(ctx context.Context, kind, template string) (string, error) {
	var out struct {
		CVID ID `json:"cv_id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/cv/create",
		map[string]string{"type": kind, "template": template}, &out, true)
	if err != nil {
		return "", err
	}
	return out.CVID.String(), nil
}

func (c *Client) GetCV(ctx context.Context, id string) (*CVRecord, error) {
	var out CVRecord
	if err := c.do(ctx, http.MethodGet, "/api/v1/cv/"+id, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListCVs(ctx context.Context) ([]CVSummary, error) {
	var out []CVSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/cv/list", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteCV(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/cv/"+id, nil, nil, true)
}

func (c *Client) SaveCV(ctx context.Context, id, pdfURL string, content wire.Content) error {
	body := map[string]interface{}{
		"cv_id":        cvID(id),
		"pdf_url":      pdfURL,
		"save_content": content,
	}
	return c.do(ctx, http.MethodPost, "/api/v1/cv/save", body, nil, true)
}

func (c *Client) RenderCV(ctx context.Context, id string, content wire.Content, template string) (string, error) {
	body := map[string]interface{}{
		"cv_id":         cvID(id),
		"draft_content": content,
		"template":      template,
	}
	var out struct {
		HTMLContent string `json:"html_content"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/cv/render", body, &out, true); err != nil {
		return "", err
	}
	return out.HTMLContent, nil
}

func (c *Client) GenerateCV(ctx context.Context, id string, content wire.Content, forceRegenerate bool) (string, error) {
	body := map[string]interface{}{
		"cv_id":            cvID(id),
		"draft_content":    content,
		"force_regenerate": forceRegenerate,
	}
	var out struct {
		PDFURL string `json:"pdf_url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/cv/generate", body, &out, true); err != nil {
		return "", err
	}
	return out.PDFURL, nil
}

// --- Profile endpoints ---

type Profile struct {
	UID      string `json:"uid"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/me", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMe(ctx context.Context, patch map[string]interface{}) (*Profile, error) {
	var out Profile
	if err := c.do(ctx, http.MethodPatch, "/api/v1/users/me", patch, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- Education endpoints ---

func (c *Client) ListEducation(ctx context.Context) ([]wire.Education, error) {
	var out []wire.Education
	if err := c.do(ctx, http.MethodGet, "/api/v1/education", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEducation(ctx context.Context, e wire.Education) (*wire.Education, error) {
	var out wire.Education
	if err := c.do(ctx, http.MethodPost, "/api/v1/education", e, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEducation(ctx context.Context, id string, e wire.Education) (*wire.Education, error) {
	var out wire.Education
	if err := c.do(ctx, http.MethodPatch, "/api/v1/education/"+id, e, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEducation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/education/"+id, nil, nil, true)
}

// --- Certificate endpoints ---

func (c *Client) ListCertificates(ctx context.Context) ([]wire.Certificate, error) {
	var out []wire.Certificate
	if err := c.do(ctx, http.MethodGet, "/api/v1/certificate", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCertificate(ctx context.Context, ct wire.Certificate) (*wire.Certificate, error) {
	var out wire.Certificate
	if err := c.do(ctx, http.MethodPost, "/api/v1/certificate", ct, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCertificate(ctx context.Context, id string, ct wire.Certificate) (*wire.Certificate, error) {
	var out wire.Certificate
	if err := c.do(ctx, http.MethodPatch, "/api/v1/certificate/"+id, ct, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCertificate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/certificate/"+id, nil, nil, true)
}

// --- Portfolio endpoints ---

func (c *Client) CreatePortfolio(ctx context.Context, template string) (string, error) {
	var out struct {
		PortfolioID ID `json:"portfolio_id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/portfolio/create",
		map[string]string{"template": template}, &out, true)
	if err != nil {
		return "", err
	}
	return out.PortfolioID.String(), nil
}

// UpdatePortfolio PATCHes the portfolio as a multipart form: a content part
// holding the wire JSON plus an optional avatar file part.
func (c *Client) UpdatePortfolio(ctx context.Context, id string, content wire.Content, avatarName string, avatar io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("portfolio_id", id); err != nil {
		return err
	}
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	if err := mw.WriteField("content", string(contentJSON)); err != nil {
		return err
	}
	if avatar != nil {
		fw, err := mw.CreateFormFile("avatar", avatarName)
		if err != nil {
			return err
		}
		if _, err := io.Copy(fw, avatar); err != nil {
			return fmt.Errorf("read avatar: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/api/v1/portfolio/update", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.send(req, nil, true)
}

func (c *Client) PublishPortfolio(ctx context.Context, id string) (string, error) {
	var out struct {
		PublishedURL string `json:"published_url"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/portfolio/publish/"+id, nil, &out, true); err != nil {
		return "", err
	}
	return out.PublishedURL, nil
}

// PublicPortfolio fetches a published portfolio. Unauthenticated: published
// pages are world-readable.
func (c *Client) PublicPortfolio(ctx context.Context, publishedURL string) (*wire.Content, error) {
	var out struct {
		Content wire.Content `json:"content"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/portfolio/public/"+publishedURL, nil, &out, false); err != nil {
		return nil, err
	}
	return &out.Content, nil
}
