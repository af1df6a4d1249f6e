package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/greenwall/internal/config"
	"github.com/MKhiriev/greenwall/internal/logger"
	"github.com/MKhiriev/greenwall/internal/utils"
	"github.com/MKhiriev/greenwall/models"
	"github.com/go-resty/resty/v2"
)

const (
	signUpPath  = "/api/auth/signup"
	signInPath  = "/api/auth/signin"
	notesPath   = "/api/notes"
	countPath   = "/api/notes/count"
	versionPath = "/api/version"
)

type httpClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClient returns a [Client] for the server at cfg.HTTPAddress. A bare
// host:port gets an http:// scheme.
func NewHTTPClient(cfg config.Adapter, logger *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpClient) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return h.authenticate(ctx, signUpPath, req)
}

func (h *httpClient) SignIn(ctx context.Context, creds models.Credentials) (models.User, error) {
	return h.authenticate(ctx, signInPath, creds)
}

// authenticate posts body to path and keeps the token from the
// Authorization response header.
func (h *httpClient) authenticate(ctx context.Context, path string, body any) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	h.logger.Debug().Str("user_id", user.UserID).Msg("session token stored")

	return user, nil
}

func (h *httpClient) CreateNote(ctx context.Context, input models.NoteInput) (models.NoteResponse, error) {
	var note models.NoteResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return note, err
	}

	resp, err := req.SetBody(input).SetResult(&note).Post(notesPath)
	if err != nil {
		return note, fmt.Errorf("create note request: %w", err)
	}

	return note, mapHTTPError(resp)
}

func (h *httpClient) ListNotes(ctx context.Context, from, to string) ([]models.NoteResponse, error) {
	var notes []models.NoteResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if from != "" {
		req.SetQueryParam("from", from)
	}
	if to != "" {
		req.SetQueryParam("to", to)
	}

	resp, err := req.SetResult(&notes).Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpClient) GetNote(ctx context.Context, id string) (models.NoteResponse, error) {
	var note models.NoteResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return note, err
	}

	resp, err := req.SetResult(&note).Get(notePath(id))
	if err != nil {
		return note, fmt.Errorf("get note request: %w", err)
	}

	return note, mapHTTPError(resp)
}

func (h *httpClient) UpdateNote(ctx context.Context, id string, update models.NoteUpdate) (models.NoteResponse, error) {
	var note models.NoteResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return note, err
	}

	resp, err := req.SetBody(update).SetResult(&note).Patch(notePath(id))
	if err != nil {
		return note, fmt.Errorf("update note request: %w", err)
	}

	return note, mapHTTPError(resp)
}

func (h *httpClient) DeleteNote(ctx context.Context, id string) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(notePath(id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpClient) CountNotes(ctx context.Context) (int64, error) {
	var count models.NoteCountResponse

	req, err := h.authedRequest(ctx)
	if err != nil {
		return 0, err
	}

	resp, err := req.SetResult(&count).Get(countPath)
	if err != nil {
		return 0, fmt.Errorf("count notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return count.Count, nil
}

func (h *httpClient) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get(versionPath)
	if err != nil {
		return version, fmt.Errorf("version request: %w", err)
	}

	return version, mapHTTPError(resp)
}

// authedRequest fails fast with ErrNotSignedIn instead of sending a request
// the server would reject.
func (h *httpClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNotSignedIn
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func notePath(id string) string {
	return notesPath + "/" + url.PathEscape(id)
}
