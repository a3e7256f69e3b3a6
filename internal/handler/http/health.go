package http

import (
	"net/http"

	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/utils"
	"github.com/MKhiriev/go-deliveries/models"
)

// health reports 503 only when the record store is unreachable. A crypto
// gateway that is still activating or degraded leaves the service usable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.HealthService.Check(r.Context())

	status := http.StatusOK
	if report.Database != models.HealthUp {
		status = http.StatusServiceUnavailable
	}

	if _, err := utils.WriteJSON(w, report, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.health").Msg("error writing response")
	}
}
