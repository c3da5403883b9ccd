package docket_restore_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/service/docket"
	"freight/pkg/logger"
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
	Id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	docketEntity, err := h.service.Restore(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, docket.ErrInvalidDocketID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, docket.ErrDocketNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, docket.ErrNotCancelled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DocketRestoreResponse{
		ID:       docketEntity.ID,
		DocketNo: docketEntity.DocketNo,
		Status:   docketEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
