package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-deliveries/models"
)

func readText(w http.ResponseWriter, r *http.Request) (string, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadingBody, err)
	}
	if len(body) == 0 {
		return "", ErrEmptyBody
	}

	return string(body), nil
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	plaintext, err := readText(w, r)
	if err != nil {
		h.respondError(w, r, "*Handler.encrypt", err)
		return
	}

	cipherText, err := h.services.CryptoService.Encrypt(r.Context(), plaintext)
	if err != nil {
		h.respondError(w, r, "*Handler.encrypt", err)
		return
	}

	writeText(w, http.StatusOK, cipherText.String())
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	cipherText, err := readText(w, r)
	if err != nil {
		h.respondError(w, r, "*Handler.decrypt", err)
		return
	}

	plaintext, err := h.services.CryptoService.Decrypt(r.Context(), models.CipherText(cipherText))
	if err != nil {
		h.respondError(w, r, "*Handler.decrypt", err)
		return
	}

	writeText(w, http.StatusOK, plaintext)
}
