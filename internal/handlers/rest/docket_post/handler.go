package docket_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"freight/internal/entities"
	"freight/internal/service/allocator"
	"freight/internal/service/docket"
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
	var docketCreateDTO DocketCreate
	err := json.NewDecoder(r.Body).Decode(&docketCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bookingDate, err := time.Parse(dateLayout, docketCreateDTO.BookingDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	expectedDate, err := time.Parse(dateLayout, docketCreateDTO.ExpectedDate)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.DocketDraft{
		OriginCity:   docketCreateDTO.OriginCity,
		DestCity:     docketCreateDTO.DestCity,
		BookingDate:  bookingDate,
		ExpectedDate: expectedDate,
		Consignor:    toPartyChoice(docketCreateDTO.Consignor),
		Consignee:    toPartyChoice(docketCreateDTO.Consignee),
		Booking: entities.BookingDraft{
			Mode:         entities.TransportMode(docketCreateDTO.Booking.Mode),
			BillingParty: entities.BillingParty(docketCreateDTO.Booking.BillingParty),
			LoadType:     docketCreateDTO.Booking.LoadType,
		},
	}
	if docketCreateDTO.Invoice != nil {
		draft.Invoice = &entities.InvoiceDraft{
			InvoiceNo:  docketCreateDTO.Invoice.InvoiceNo,
			ValueAmt:   docketCreateDTO.Invoice.ValueAmt,
			EwayBillNo: docketCreateDTO.Invoice.EwayBillNo,
		}
	}

	aggregate, err := h.service.CreateDocket(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, docket.ErrMissingRequiredFields),
			errors.Is(err, docket.ErrAmbiguousParty),
			errors.Is(err, docket.ErrUnknownTransportMode),
			errors.Is(err, docket.ErrUnknownBillingParty):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, docket.ErrPartyNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, allocator.ErrCounterUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DocketCreateResponse{
		ID:         aggregate.Docket.ID,
		DocketNo:   aggregate.Docket.DocketNo,
		Status:     aggregate.Docket.Status.String(),
		DistanceKm: aggregate.Docket.DistanceKm,
	}
	if aggregate.Invoice != nil && aggregate.Invoice.EwayExpiry != nil {
		expiry := aggregate.Invoice.EwayExpiry.Format(dateLayout)
		response.EwayExpiry = &expiry
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

func toPartyChoice(partyDTO PartyChoiceDTO) entities.PartyChoice {
	var choice entities.PartyChoice
	if partyDTO.ID != nil {
		choice.Ref = &entities.PartyRef{ID: *partyDTO.ID}
	}
	if partyDTO.Name != "" || partyDTO.Address != "" || partyDTO.TaxID != "" {
		choice.Draft = &entities.PartyDraft{
			Name:      partyDTO.Name,
			Address:   partyDTO.Address,
			TaxID:     partyDTO.TaxID,
			Temporary: partyDTO.Temporary,
		}
	}
	return choice
}
