package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/logger"
)

const failurePrefix = app.MsgFailedToProcessRequest + ": "

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// respondError answers err with the status from errorStatusMap. Rejected
// input is echoed back as is; every other failure is described as
// "Failed to process request: Kind(root message)".
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusBadRequest {
		log.Debug().Err(err).Str("func", fn).Msg("request rejected")
		writeText(w, status, err.Error())
		return
	}

	log.Warn().Err(err).Str("func", fn).Str("kind", app.KindOf(err)).Msg("failed to process request")
	writeText(w, status, failurePrefix+app.Describe(err))
}
