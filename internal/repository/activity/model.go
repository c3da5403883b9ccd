package activity

import "time"

type ActivityDB struct {
	ID                int64
	DocketID          int64
	StatusCode        string
	Label             string
	Location          string
	OccurredOn        time.Time
	OccurredAt        time.Time
	PodImageURL       *string
	PodImageDeleteKey *string
	CreatedAt         time.Time
}

type ActivityModifyDB struct {
	DocketID          *int64
	StatusCode        *string
	Label             *string
	Location          *string
	OccurredOn        *time.Time
	OccurredAt        *time.Time
	PodImageURL       *string
	PodImageDeleteKey *string
}
