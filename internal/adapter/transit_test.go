// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/config"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/models"
)

const testToken = "root-token"

// fakeTransit is an in-memory stand-in for the transit engine. Cipher text
// is "vault:v1:" followed by the reversed base64 plaintext.
type fakeTransit struct {
	mu      sync.Mutex
	mounted bool
	keys    map[string]string
}

func newFakeTransit() *fakeTransit {
	return &fakeTransit{keys: map[string]string{}}
}

func (f *fakeTransit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Vault-Token") != testToken {
		writeVaultError(w, http.StatusForbidden, "permission denied")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body)

	switch {
	case r.URL.Path == "/v1/sys/mounts/transit":
		if f.mounted {
			writeVaultError(w, http.StatusBadRequest, `path is already in use at transit/`)
			return
		}
		f.mounted = true
		w.WriteHeader(http.StatusNoContent)

	case strings.HasPrefix(r.URL.Path, "/v1/transit/keys/"):
		f.keys[strings.TrimPrefix(r.URL.Path, "/v1/transit/keys/")] = body["type"]
		w.WriteHeader(http.StatusNoContent)

	case strings.HasPrefix(r.URL.Path, "/v1/transit/encrypt/"):
		if _, ok := f.keys[strings.TrimPrefix(r.URL.Path, "/v1/transit/encrypt/")]; !ok {
			writeVaultError(w, http.StatusBadRequest, "encryption key not found")
			return
		}
		writeVaultData(w, map[string]string{"ciphertext": "vault:v1:" + reverse(body["plaintext"])})

	case strings.HasPrefix(r.URL.Path, "/v1/transit/decrypt/"):
		ct := body["ciphertext"]
		if !strings.HasPrefix(ct, "vault:v1:") {
			writeVaultError(w, http.StatusBadRequest, "invalid ciphertext: no prefix")
			return
		}
		writeVaultData(w, map[string]string{"plaintext": reverse(strings.TrimPrefix(ct, "vault:v1:"))})

	default:
		writeVaultError(w, http.StatusNotFound, "no handler for route")
	}
}

func writeVaultError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string][]string{"errors": {msg}})
}

func writeVaultData(w http.ResponseWriter, data map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func newTestAdapter(t *testing.T, serverURL string) *transitAdapter {
	t.Helper()

	a, err := NewTransitAdapter(config.Vault{
		Address: serverURL,
		Token:   testToken,
		Mount:   "transit",
		Timeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a.(*transitAdapter)
}

// ── Construction ──

func TestNewTransitAdapter_InvalidAddress(t *testing.T) {
	_, err := NewTransitAdapter(config.Vault{Address: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func Test_normalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("127.0.0.1:8200/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8200", got)

	got, err = normalizeBaseURL("https://vault.local")
	require.NoError(t, err)
	assert.Equal(t, "https://vault.local", got)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}

// ── Activation calls ──

func TestEnableEngine_Idempotent(t *testing.T) {
	srv := httptest.NewServer(newFakeTransit())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.EnableEngine(context.Background()))
	require.NoError(t, a.EnableEngine(context.Background()))
}

func TestCreateKey_SendsType(t *testing.T) {
	fake := newFakeTransit()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.CreateKey(context.Background(), "signature-key", "rsa-2048"))
	require.NoError(t, a.CreateKey(context.Background(), "encryption-key", ""))

	assert.Equal(t, "rsa-2048", fake.keys["signature-key"])
	assert.Equal(t, "", fake.keys["encryption-key"])
}

func TestEnableEngine_Forbidden(t *testing.T) {
	srv := httptest.NewServer(newFakeTransit())
	defer srv.Close()

	a, err := NewTransitAdapter(config.Vault{Address: srv.URL, Token: "wrong", Mount: "transit", Timeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = a.EnableEngine(context.Background())
	assert.ErrorIs(t, err, app.ErrInternal)
	assert.ErrorIs(t, err, ErrTransitResponse)
	assert.Contains(t, err.Error(), "permission denied")
}

// ── Encrypt / Decrypt ──

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	fake := newFakeTransit()
	srv := httptest.NewServer(fake)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()
	require.NoError(t, a.CreateKey(ctx, "encryption-key", ""))

	ct, err := a.Encrypt(ctx, "encryption-key", []byte("hello, мир"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(ct), "vault:v1:"))

	pt, err := a.Decrypt(ctx, "encryption-key", ct)
	require.NoError(t, err)
	assert.Equal(t, "hello, мир", string(pt))
}

func TestEncrypt_MissingKey(t *testing.T) {
	srv := httptest.NewServer(newFakeTransit())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "absent", []byte("x"))
	assert.ErrorIs(t, err, app.ErrKeyNotFound)
	assert.Equal(t, app.KindKeyNotFound, app.KindOf(err))
}

func TestDecrypt_RejectedCipherText(t *testing.T) {
	srv := httptest.NewServer(newFakeTransit())
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), "encryption-key", "garbage")
	assert.ErrorIs(t, err, app.ErrInvalidCipherText)
}

func TestDecrypt_PlaintextNotBase64(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeVaultData(w, map[string]string{"plaintext": "%%%"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Decrypt(context.Background(), "k", "vault:v1:abc")
	assert.ErrorIs(t, err, app.ErrInvalidCipherText)
}

func TestEncrypt_SealedEngineIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeVaultError(w, http.StatusServiceUnavailable, "Vault is sealed")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "k", []byte("x"))
	assert.ErrorIs(t, err, app.ErrBackendUnavailable)
	assert.Equal(t, "Vault is sealed", lastSegment(err))
}

func TestTransitErrors_DescribeKeepsEngineMessage(t *testing.T) {
	sealed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeVaultError(w, http.StatusServiceUnavailable, "Vault is sealed")
	}))
	defer sealed.Close()

	fake := httptest.NewServer(newFakeTransit())
	defer fake.Close()

	tests := []struct {
		name string
		call func(ctx context.Context) error
		want string
	}{
		{
			name: "missing key on encrypt",
			call: func(ctx context.Context) error {
				_, err := newTestAdapter(t, fake.URL).Encrypt(ctx, "absent", []byte("x"))
				return err
			},
			want: "KeyNotFound(encryption key not found)",
		},
		{
			name: "bad cipher text on decrypt",
			call: func(ctx context.Context) error {
				_, err := newTestAdapter(t, fake.URL).Decrypt(ctx, "encryption-key", "garbage")
				return err
			},
			want: "InvalidCipherText(invalid ciphertext: no prefix)",
		},
		{
			name: "sealed engine on decrypt",
			call: func(ctx context.Context) error {
				_, err := newTestAdapter(t, sealed.URL).Decrypt(ctx, "k", "vault:v1:abc")
				return err
			},
			want: "BackendUnavailable(Vault is sealed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTransitResponse)
			assert.Equal(t, tt.want, app.Describe(err))
		})
	}
}

func TestEncrypt_UnreachableEngine(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Encrypt(context.Background(), "k", []byte("x"))
	assert.ErrorIs(t, err, app.ErrBackendUnavailable)
	assert.ErrorIs(t, err, ErrTransitRequest)
}

func TestEncrypt_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).Encrypt(ctx, "k", []byte("x"))
	assert.ErrorIs(t, err, app.ErrBackendUnavailable)
}

func TestEncrypt_SendsBase64Plaintext(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transit/encrypt/my-key", r.URL.Path)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		got = body["plaintext"]
		writeVaultData(w, map[string]string{"ciphertext": "vault:v1:x"})
	}))
	defer srv.Close()

	ct, err := newTestAdapter(t, srv.URL).Encrypt(context.Background(), "my-key", []byte("pizza"))
	require.NoError(t, err)
	assert.Equal(t, models.CipherText("vault:v1:x"), ct)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("pizza")), got)
}

func lastSegment(err error) string {
	parts := strings.Split(err.Error(), ": ")
	return parts[len(parts)-1]
}
