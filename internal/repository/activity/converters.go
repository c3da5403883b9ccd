package activity

import "freight/internal/entities"

func ToDomain(a *ActivityDB) *entities.Activity {
	if a == nil {
		return nil
	}
	activityEntity := &entities.Activity{
		ID:         a.ID,
		DocketID:   a.DocketID,
		StatusCode: entities.ActivityStatusCode(a.StatusCode),
		Label:      a.Label,
		Location:   a.Location,
		OccurredOn: a.OccurredOn,
		OccurredAt: a.OccurredAt,
		CreatedAt:  a.CreatedAt,
	}

	if a.PodImageURL != nil && a.PodImageDeleteKey != nil {
		activityEntity.PodImage = &entities.ProofImage{
			URL:       *a.PodImageURL,
			DeleteKey: *a.PodImageDeleteKey,
		}
	}

	return activityEntity
}

func ToDomainList(models []ActivityDB) []entities.Activity {
	activities := make([]entities.Activity, 0, len(models))
	for i := range models {
		activities = append(activities, *ToDomain(&models[i]))
	}
	return activities
}

func FromDomainModify(a *entities.ActivityModify) *ActivityModifyDB {
	if a == nil {
		return nil
	}
	activityModifyDB := &ActivityModifyDB{}

	if a.DocketID != nil {
		activityModifyDB.DocketID = a.DocketID
	}
	if a.StatusCode != nil {
		code := a.StatusCode.String()
		activityModifyDB.StatusCode = &code
	}
	if a.Label != nil {
		activityModifyDB.Label = a.Label
	}
	if a.Location != nil {
		activityModifyDB.Location = a.Location
	}
	if a.OccurredOn != nil {
		activityModifyDB.OccurredOn = a.OccurredOn
	}
	if a.OccurredAt != nil {
		activityModifyDB.OccurredAt = a.OccurredAt
	}
	if a.PodImage != nil {
		activityModifyDB.PodImageURL = &a.PodImage.URL
		activityModifyDB.PodImageDeleteKey = &a.PodImage.DeleteKey
	}

	return activityModifyDB
}
