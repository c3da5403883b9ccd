package eway_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"freight/internal/service/compliance"
	"github.com/gorilla/mux"
)

const dateLayout = "2006-01-02"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	invoiceID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var overrideDTO EwayOverrideRequest
	err = json.NewDecoder(r.Body).Decode(&overrideDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	newExpiry, err := time.Parse(dateLayout, overrideDTO.Expiry)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.OverrideExpiry(r.Context(), invoiceID, newExpiry)
	if err != nil {
		switch {
		case errors.Is(err, compliance.ErrInvalidInvoiceID),
			errors.Is(err, compliance.ErrInvalidExpiry):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, compliance.ErrInvoiceNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
