package activities_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/service/activity"
	"freight/pkg/logger"
	"github.com/gorilla/mux"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
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
	docketID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	activities, err := h.service.ListByDocket(r.Context(), docketID)
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrInvalidDocketID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ActivityListResponse{
		Activities: make([]ActivityDTO, 0, len(activities)),
	}
	for _, activityEntity := range activities {
		activityDTO := ActivityDTO{
			ID:         activityEntity.ID,
			DocketID:   activityEntity.DocketID,
			StatusCode: activityEntity.StatusCode.String(),
			Label:      activityEntity.Label,
			Location:   activityEntity.Location,
			OccurredOn: activityEntity.OccurredOn.Format(dateLayout),
			OccurredAt: activityEntity.OccurredAt.Format(timeLayout),
		}
		if activityEntity.PodImage != nil {
			activityDTO.PodImage = &PodImageDTO{URL: activityEntity.PodImage.URL}
		}
		response.Activities = append(response.Activities, activityDTO)
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
