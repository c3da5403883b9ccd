package activity_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"freight/internal/entities"
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

	var activityCreateDTO ActivityCreate
	err = json.NewDecoder(r.Body).Decode(&activityCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	occurredOn, err := time.Parse(dateLayout, activityCreateDTO.OccurredOn)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	occurredAt, err := time.Parse(timeLayout, activityCreateDTO.OccurredAt)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statusCode := entities.ActivityStatusCode(activityCreateDTO.StatusCode)
	activityModify := entities.ActivityModify{
		DocketID:   &docketID,
		StatusCode: &statusCode,
		Location:   &activityCreateDTO.Location,
		OccurredOn: &occurredOn,
		OccurredAt: &occurredAt,
	}
	if activityCreateDTO.Label != "" {
		activityModify.Label = &activityCreateDTO.Label
	}
	if activityCreateDTO.PodImage != nil {
		activityModify.PodImage = &entities.ProofImage{
			URL:       activityCreateDTO.PodImage.URL,
			DeleteKey: activityCreateDTO.PodImage.DeleteKey,
		}
	}

	created, err := h.service.Append(r.Context(), activityModify)
	if err != nil {
		switch {
		case errors.Is(err, activity.ErrMissingRequiredFields),
			errors.Is(err, activity.ErrInvalidDocketID),
			errors.Is(err, activity.ErrUnknownStatusCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ActivityCreateResponse{
		ID:         created.ID,
		DocketID:   created.DocketID,
		StatusCode: created.StatusCode.String(),
		Label:      created.Label,
		Location:   created.Location,
		OccurredOn: created.OccurredOn.Format(dateLayout),
		OccurredAt: created.OccurredAt.Format(timeLayout),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
