package docket

import "freight/internal/entities"

func ToDomain(d *DocketDB) *entities.Docket {
	if d == nil {
		return nil
	}
	return &entities.Docket{
		ID:                 d.ID,
		DocketNo:           d.DocketNo,
		OriginCity:         d.OriginCity,
		DestCity:           d.DestCity,
		DistanceKm:         d.DistanceKm,
		BookingDate:        d.BookingDate,
		ExpectedDate:       d.ExpectedDate,
		ConsignorID:        d.ConsignorID,
		ConsigneeID:        d.ConsigneeID,
		Status:             entities.DocketStatusType(d.Status),
		CancellationReason: d.CancellationReason,
		CancelledBy:        d.CancelledBy,
		CancelledAt:        d.CancelledAt,
		HasCoLoader:        d.HasCoLoader,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func ToDomainList(models []DocketDB) []entities.Docket {
	dockets := make([]entities.Docket, 0, len(models))
	for i := range models {
		dockets = append(dockets, *ToDomain(&models[i]))
	}
	return dockets
}
