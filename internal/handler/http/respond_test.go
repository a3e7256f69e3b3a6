package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/service"
	"github.com/MKhiriev/go-deliveries/models"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "transaction failure",
			err:        fmt.Errorf("%w: %w", app.ErrTransactionFailure, errors.New("could not serialize access")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to process request: TransactionFailure(could not serialize access)",
		},
		{
			name:       "nested causes report the innermost",
			err:        fmt.Errorf("%w: %w", app.ErrBackendUnavailable, fmt.Errorf("ping: %w", errors.New("no route to host"))),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to process request: BackendUnavailable(no route to host)",
		},
		{
			name:       "uncategorized",
			err:        errors.New("something odd"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to process request: Internal(something odd)",
		},
		{
			name:       "validation",
			err:        fmt.Errorf("%w: food too long", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid data provided: food too long",
		},
		{
			name:       "unknown status",
			err:        models.ErrUnknownDeliveryStatus,
			wantStatus: http.StatusBadRequest,
			wantBody:   "unknown delivery status",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: %w", app.ErrNotFound, errors.New("delivery d9")),
			wantStatus: http.StatusNotFound,
			wantBody:   "Failed to process request: NotFound(delivery d9)",
		},
	}

	h := &Handler{logger: logger.Nop()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/db/", nil)

			h.respondError(rec, req, "test", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
