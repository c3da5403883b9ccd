package coloader_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/service/coloader"
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
	docketID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var linkDTO CoLoaderLink
	err = json.NewDecoder(r.Body).Decode(&linkDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actorID := r.Header.Get(actorHeader)
	coLoaderModify := entities.CoLoaderModify{
		DocketID:        &docketID,
		CarrierName:     &linkDTO.CarrierName,
		CarrierDocketNo: &linkDTO.CarrierDocketNo,
		LinkedBy:        &actorID,
	}
	if linkDTO.ReceiptImage != nil {
		coLoaderModify.ReceiptImage = &entities.ProofImage{
			URL:       linkDTO.ReceiptImage.URL,
			DeleteKey: linkDTO.ReceiptImage.DeleteKey,
		}
	}

	created, err := h.service.Link(r.Context(), coLoaderModify)
	if err != nil {
		switch {
		case errors.Is(err, coloader.ErrMissingRequiredFields),
			errors.Is(err, coloader.ErrInvalidDocketID):
			w.WriteHeader(http.StatusBadRequest)
		// привязка к несуществующей накладной: сервис пробрасывает ошибку
		// чтения накладной как есть
		case errors.Is(err, coloader.ErrDocketNotFound),
			errors.Is(err, docket.ErrDocketNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, coloader.ErrDocketCancelled),
			errors.Is(err, coloader.ErrAlreadyLinked):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := CoLoaderLinkResponse{
		ID:              created.ID,
		DocketID:        created.DocketID,
		CarrierName:     created.CarrierName,
		CarrierDocketNo: created.CarrierDocketNo,
		LinkedBy:        created.LinkedBy,
	}
	if created.ReceiptImage != nil {
		response.ReceiptImage = created.ReceiptImage.URL
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
