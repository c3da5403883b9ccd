package coloader_delete

import (
	"errors"
	"net/http"
	"strconv"

	"freight/internal/service/coloader"
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

	err = h.service.Unlink(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, coloader.ErrInvalidCoLoaderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, coloader.ErrCoLoaderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
