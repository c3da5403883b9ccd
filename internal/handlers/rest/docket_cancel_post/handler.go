package docket_cancel_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/service/docket"
	"freight/pkg/logger"
	"github.com/gorilla/mux"
)

const actorHeader = "X-Actor-Id"

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

	var cancelDTO DocketCancelRequest
	err = json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actorID := r.Header.Get(actorHeader)

	docketEntity, err := h.service.Cancel(r.Context(), Id, cancelDTO.Reason, actorID)
	if err != nil {
		switch {
		case errors.Is(err, docket.ErrInvalidDocketID),
			errors.Is(err, docket.ErrEmptyCancelReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, docket.ErrDocketNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, docket.ErrAlreadyCancelled):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DocketCancelResponse{
		ID:                 docketEntity.ID,
		DocketNo:           docketEntity.DocketNo,
		Status:             docketEntity.Status.String(),
		CancellationReason: docketEntity.CancellationReason,
		CancelledBy:        docketEntity.CancelledBy,
		CancelledAt:        docketEntity.CancelledAt,
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
