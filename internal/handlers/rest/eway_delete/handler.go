package eway_delete

import (
	"errors"
	"net/http"
	"strconv"

	"freight/internal/service/compliance"
	"github.com/gorilla/mux"
)

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

	err = h.service.ClearEway(r.Context(), invoiceID)
	if err != nil {
		switch {
		case errors.Is(err, compliance.ErrInvalidInvoiceID):
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
