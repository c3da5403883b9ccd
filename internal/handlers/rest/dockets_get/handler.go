package dockets_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"freight/pkg/logger"
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
	limit, ok := parseQueryUint(r, "limit")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	offset, ok := parseQueryUint(r, "offset")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	dockets, err := h.service.ListDockets(r.Context(), limit, offset)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := DocketListResponse{
		Dockets: make([]DocketListItem, 0, len(dockets)),
	}
	for _, docketEntity := range dockets {
		response.Dockets = append(response.Dockets, DocketListItem{
			ID:           docketEntity.ID,
			DocketNo:     docketEntity.DocketNo,
			OriginCity:   docketEntity.OriginCity,
			DestCity:     docketEntity.DestCity,
			DistanceKm:   docketEntity.DistanceKm,
			BookingDate:  docketEntity.BookingDate.Format(dateLayout),
			ExpectedDate: docketEntity.ExpectedDate.Format(dateLayout),
			Status:       docketEntity.Status.String(),
			HasCoLoader:  docketEntity.HasCoLoader,
		})
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

func parseQueryUint(r *http.Request, name string) (uint64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
