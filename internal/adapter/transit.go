package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/utils"
	"github.com/MKhiriev/go-deliveries/models"
)

const vaultTokenHeader = "X-Vault-Token"

type transitAdapter struct {
	client *utils.HTTPClient
	mount  string

	logger *logger.Logger
}

type mountRequest struct {
	Type string `json:"type"`
}

type createKeyRequest struct {
	Type string `json:"type,omitempty"`
}

type encryptRequest struct {
	Plaintext string `json:"plaintext"`
}

type decryptRequest struct {
	Ciphertext string `json:"ciphertext"`
}

type transitResponse struct {
	Data struct {
		Ciphertext string `json:"ciphertext"`
		Plaintext  string `json:"plaintext"`
	} `json:"data"`
}

// NewTransitAdapter constructs an HTTP implementation of [TransitAdapter].
// It normalises cfg.Address, attaches cfg.Token to every request and bounds
// every call by cfg.Timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewTransitAdapter(cfg config.Vault, logger *logger.Logger) (TransitAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout, map[string]string{
		vaultTokenHeader: cfg.Token,
		"Content-Type":   "application/json",
	})

	return &transitAdapter{
		client: client,
		mount:  strings.Trim(cfg.Mount, "/"),
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

// EnableEngine implements [TransitAdapter]. It POSTs to /v1/sys/mounts/<mount>.
func (t *transitAdapter) EnableEngine(ctx context.Context) error {
	resp, err := t.request(ctx).
		SetBody(mountRequest{Type: "transit"}).
		Post("/v1/sys/mounts/" + t.mount)
	if err != nil {
		return mapRequestError(opEnableEngine, err)
	}
	if isAlreadyMounted(resp) {
		t.logger.Debug().Str("func", "transitAdapter.EnableEngine").Str("mount", t.mount).Msg("transit engine already mounted")
		return nil
	}

	return mapHTTPError(opEnableEngine, resp)
}

// CreateKey implements [TransitAdapter]. It POSTs to /v1/<mount>/keys/<name>.
func (t *transitAdapter) CreateKey(ctx context.Context, name, keyType string) error {
	resp, err := t.request(ctx).
		SetBody(createKeyRequest{Type: keyType}).
		Post(t.path("keys", name))
	if err != nil {
		return mapRequestError(opCreateKey, err)
	}

	return mapHTTPError(opCreateKey, resp)
}

// Encrypt implements [TransitAdapter]. The plaintext is sent base64 encoded
// to /v1/<mount>/encrypt/<key>.
func (t *transitAdapter) Encrypt(ctx context.Context, key string, plaintext []byte) (models.CipherText, error) {
	resp, err := t.request(ctx).
		SetBody(encryptRequest{Plaintext: base64.StdEncoding.EncodeToString(plaintext)}).
		Post(t.path("encrypt", key))
	if err != nil {
		return "", mapRequestError(opEncrypt, err)
	}
	if err = mapHTTPError(opEncrypt, resp); err != nil {
		return "", err
	}

	var tr transitResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return "", fmt.Errorf("%w: %w: %w", app.ErrInternal, ErrDecodingResponse, err)
	}
	if tr.Data.Ciphertext == "" {
		return "", fmt.Errorf("%w: %w: %w", app.ErrInternal, ErrDecodingResponse, errors.New("empty ciphertext"))
	}

	return models.CipherText(tr.Data.Ciphertext), nil
}

// Decrypt implements [TransitAdapter]. A plaintext the engine returns that
// is not valid base64 is reported as app.ErrInvalidCipherText.
func (t *transitAdapter) Decrypt(ctx context.Context, key string, cipherText models.CipherText) ([]byte, error) {
	resp, err := t.request(ctx).
		SetBody(decryptRequest{Ciphertext: string(cipherText)}).
		Post(t.path("decrypt", key))
	if err != nil {
		return nil, mapRequestError(opDecrypt, err)
	}
	if err = mapHTTPError(opDecrypt, resp); err != nil {
		return nil, err
	}

	var tr transitResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", app.ErrInternal, ErrDecodingResponse, err)
	}

	plaintext, err := base64.StdEncoding.DecodeString(tr.Data.Plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", app.ErrInvalidCipherText, err)
	}

	return plaintext, nil
}

func (t *transitAdapter) request(ctx context.Context) *resty.Request {
	return t.client.R().SetContext(ctx)
}

func (t *transitAdapter) path(action, key string) string {
	return "/v1/" + t.mount + "/" + action + "/" + url.PathEscape(key)
}
