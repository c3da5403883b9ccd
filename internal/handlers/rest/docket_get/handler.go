package docket_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/internal/service/activity"
	"freight/internal/service/compliance"
	"freight/internal/service/docket"
	"freight/pkg/logger"
	"github.com/gorilla/mux"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type Handler struct {
	log        handlerLogger
	service    Service
	compliance Compliance
	states     StateReader
}

func New(log handlerLogger, service Service, complianceService Compliance, states StateReader) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:        handlerLog,
		service:    service,
		compliance: complianceService,
		states:     states,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	Id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	aggregate, err := h.service.GetDocket(r.Context(), Id)
	if err != nil {
		switch {
		case errors.Is(err, docket.ErrDocketNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, docket.ErrInvalidDocketID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toResponse(aggregate)

	// Классификация e-way и состояние доставки - производные от текущего
	// момента, считаются на каждом чтении. Их сбой не валит весь ответ.
	if aggregate.Invoice != nil && aggregate.Invoice.EwayExpiry != nil {
		classification, err := h.compliance.ClassifyInvoice(r.Context(), aggregate.Invoice.ID)
		switch {
		case err == nil:
			response.Invoice.Eway = &EwayDTO{
				State: classification.State.String(),
				Days:  classification.Days,
			}
		case errors.Is(err, compliance.ErrNoEwayBill):
		default:
			h.log.With(
				logger.NewField("docket_id", Id),
				logger.NewField("error", err),
			).Warn("classify e-way bill")
		}
	}

	state, err := h.states.DeriveState(r.Context(), Id)
	switch {
	case err == nil:
		response.DeliveryState = state.String()
	case errors.Is(err, activity.ErrNoActivities):
	default:
		h.log.With(
			logger.NewField("docket_id", Id),
			logger.NewField("error", err),
		).Warn("derive delivery state")
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

func toResponse(aggregate *entities.DocketAggregate) DocketResponse {
	response := DocketResponse{
		ID:                 aggregate.Docket.ID,
		DocketNo:           aggregate.Docket.DocketNo,
		OriginCity:         aggregate.Docket.OriginCity,
		DestCity:           aggregate.Docket.DestCity,
		DistanceKm:         aggregate.Docket.DistanceKm,
		BookingDate:        aggregate.Docket.BookingDate.Format(dateLayout),
		ExpectedDate:       aggregate.Docket.ExpectedDate.Format(dateLayout),
		Status:             aggregate.Docket.Status.String(),
		CancellationReason: aggregate.Docket.CancellationReason,
		CancelledBy:        aggregate.Docket.CancelledBy,
		CancelledAt:        aggregate.Docket.CancelledAt,
		HasCoLoader:        aggregate.Docket.HasCoLoader,
		Consignor:          toPartyDTO(aggregate.Consignor),
		Consignee:          toPartyDTO(aggregate.Consignee),
		Booking: BookingDTO{
			Mode:         aggregate.Booking.Mode.String(),
			BillingParty: aggregate.Booking.BillingParty.String(),
			LoadType:     aggregate.Booking.LoadType,
		},
		Activities: make([]ActivityDTO, 0, len(aggregate.Activities)),
	}

	if aggregate.Invoice != nil {
		response.Invoice = &InvoiceDTO{
			ID:         aggregate.Invoice.ID,
			InvoiceNo:  aggregate.Invoice.InvoiceNo,
			ValueAmt:   aggregate.Invoice.ValueAmt,
			EwayBillNo: aggregate.Invoice.EwayBillNo,
		}
		if aggregate.Invoice.EwayExpiry != nil {
			expiry := aggregate.Invoice.EwayExpiry.Format(dateLayout)
			response.Invoice.EwayExpiry = &expiry
		}
	}

	for _, activityEntity := range aggregate.Activities {
		activityDTO := ActivityDTO{
			ID:         activityEntity.ID,
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

	if aggregate.CoLoader != nil {
		response.CoLoader = &CoLoaderDTO{
			ID:              aggregate.CoLoader.ID,
			CarrierName:     aggregate.CoLoader.CarrierName,
			CarrierDocketNo: aggregate.CoLoader.CarrierDocketNo,
			LinkedBy:        aggregate.CoLoader.LinkedBy,
		}
		if aggregate.CoLoader.ReceiptImage != nil {
			response.CoLoader.ReceiptImage = aggregate.CoLoader.ReceiptImage.URL
		}
	}

	return response
}

func toPartyDTO(party entities.Party) PartyDTO {
	return PartyDTO{
		ID:        party.ID,
		Role:      party.Role.String(),
		Name:      party.Name,
		Address:   party.Address,
		TaxID:     party.TaxID,
		Temporary: party.Temporary,
	}
}
