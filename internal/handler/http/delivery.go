package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-deliveries/internal/app"
	"github.com/MKhiriev/go-deliveries/internal/logger"
	"github.com/MKhiriev/go-deliveries/internal/utils"
	"github.com/MKhiriev/go-deliveries/models"
	"github.com/go-chi/chi/v5"
)

const maxBodySize = 1 << 20

func decodeDelivery(w http.ResponseWriter, r *http.Request) (models.Delivery, error) {
	var d models.Delivery

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, models.ErrUnknownDeliveryStatus) {
			return d, err
		}
		return d, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return d, nil
}

// deliveryFromPath builds a delivery from the four path segments. Each of
// them binds its own field.
func deliveryFromPath(r *http.Request) (models.Delivery, error) {
	return models.NewDelivery(
		chi.URLParam(r, "id"),
		chi.URLParam(r, "food"),
		chi.URLParam(r, "address"),
		chi.URLParam(r, "status"),
	)
}

// listDeliveries streams every delivery as a JSON array. The status line is
// sent with the first element, so a failure before it still gets a 500.
func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	started := false
	start := func() {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "[")
		started = true
	}

	enc := json.NewEncoder(w)
	err := h.services.DeliveryService.ListFunc(r.Context(), func(d models.Delivery) error {
		if started {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		} else {
			start()
		}
		return enc.Encode(d)
	})
	if err != nil {
		if !started {
			h.respondError(w, r, "*Handler.listDeliveries", err)
			return
		}
		log.Err(err).Str("func", "*Handler.listDeliveries").Msg("delivery stream aborted")
		return
	}

	if !started {
		start()
	}
	_, _ = io.WriteString(w, "]")
}

func (h *Handler) getDelivery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, found, err := h.services.DeliveryService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "*Handler.getDelivery", err)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, fmt.Sprintf(app.MsgDeliveryNotFoundFormat, id))
		return
	}

	if _, err = utils.WriteJSON(w, d, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDelivery").Msg("error writing response")
	}
}

func (h *Handler) insertDelivery(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDelivery(w, r)
	if err != nil {
		h.respondError(w, r, "*Handler.insertDelivery", err)
		return
	}

	n, err := h.services.DeliveryService.Insert(r.Context(), d)
	if err != nil {
		h.respondError(w, r, "*Handler.insertDelivery", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgInsertedFormat, n))
}

func (h *Handler) insertAndNotify(w http.ResponseWriter, r *http.Request) {
	d, err := deliveryFromPath(r)
	if err != nil {
		h.respondError(w, r, "*Handler.insertAndNotify", err)
		return
	}

	n, err := h.services.DeliveryService.InsertAndNotify(r.Context(), d)
	if err != nil {
		h.respondError(w, r, "*Handler.insertAndNotify", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgInsertedFormat, n))
}

func (h *Handler) updateDelivery(w http.ResponseWriter, r *http.Request) {
	d, err := deliveryFromPath(r)
	if err != nil {
		h.respondError(w, r, "*Handler.updateDelivery", err)
		return
	}

	n, err := h.services.DeliveryService.Update(r.Context(), d)
	if err != nil {
		h.respondError(w, r, "*Handler.updateDelivery", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgUpdatedFormat, n))
}

func (h *Handler) updateTransactional(w http.ResponseWriter, r *http.Request) {
	d, err := decodeDelivery(w, r)
	if err != nil {
		h.respondError(w, r, "*Handler.updateTransactional", err)
		return
	}

	n, err := h.services.DeliveryService.UpdateTransactional(r.Context(), d)
	if err != nil {
		h.respondError(w, r, "*Handler.updateTransactional", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgTransactionalUpdatedFormat, n))
}

func (h *Handler) deleteDelivery(w http.ResponseWriter, r *http.Request) {
	n, err := h.services.DeliveryService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, "*Handler.deleteDelivery", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgDeletedFormat, n))
}

func (h *Handler) deleteAllDeliveries(w http.ResponseWriter, r *http.Request) {
	n, err := h.services.DeliveryService.DeleteAll(r.Context())
	if err != nil {
		h.respondError(w, r, "*Handler.deleteAllDeliveries", err)
		return
	}

	writeText(w, http.StatusOK, fmt.Sprintf(app.MsgDeletedFormat, n))
}
