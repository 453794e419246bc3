package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/filex"
)

const requestIDHeader = "X-Request-Id"

// HTTPClient talks JSON over HTTP to the backend's /api/* endpoints.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

// NewHTTPClient builds an HTTPClient for baseURL (e.g. "http://127.0.0.1:8000").
// The credential for authenticated endpoints is read from tokens on every
// request. A zero timeout disables the client-level deadline; callers can
// still bound individual calls through ctx.
func NewHTTPClient(baseURL string, tokens TokenProvider, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if c.tokens != nil {
		if t := c.tokens.Token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (when out is non-nil).
// Transport-level failures map to ErrUnavailable, 401/403 to ErrUnauthorized,
// and any other non-2xx status to *Error.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: extractMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func extractMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return http.StatusText(resp.StatusCode)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

type authResponse struct {
	Token string              `json:"token"`
	User  *models.UserProfile `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	in := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.postJSON(ctx, "/api/login", in, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (string, *models.UserProfile, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	var resp authResponse
	if err := c.postJSON(ctx, "/api/register", in, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.UserProfile, error) {
	var resp struct {
		User *models.UserProfile `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/me", &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Progress(ctx context.Context) (*models.ProgressReport, error) {
	var resp models.ProgressReport
	if err := c.getJSON(ctx, "/api/progress", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Goals(ctx context.Context) ([]models.Goal, error) {
	var resp struct {
		Goals []models.Goal `json:"goals"`
	}
	if err := c.getJSON(ctx, "/api/goals", &resp); err != nil {
		return nil, err
	}
	return resp.Goals, nil
}

func (c *HTTPClient) CreateGoal(ctx context.Context, dailyVerses, dailyMinutes *int) (*models.Goal, error) {
	in := map[string]*int{"dailyVerses": dailyVerses, "dailyMinutes": dailyMinutes}
	var resp struct {
		Goal *models.Goal `json:"goal"`
	}
	if err := c.postJSON(ctx, "/api/goals", in, &resp); err != nil {
		return nil, err
	}
	return resp.Goal, nil
}

func (c *HTTPClient) SubmitRecitation(ctx context.Context, sub RecitationSubmission) (*models.RecitationResult, error) {
	f, err := os.Open(sub.AudioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audio"; filename=%q`, filepath.Base(sub.AudioPath)))
	hdr.Set("Content-Type", filex.AudioContentType(sub.AudioPath))
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	if err := mw.WriteField("expectedText", sub.ExpectedText); err != nil {
		return nil, err
	}
	if sub.Surah != "" {
		if err := mw.WriteField("surah", sub.Surah); err != nil {
			return nil, err
		}
	}
	if sub.Ayah != "" {
		if err := mw.WriteField("ayah", sub.Ayah); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/recitation", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp models.RecitationResult
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return c.getJSON(ctx, "/api/health", nil)
}
