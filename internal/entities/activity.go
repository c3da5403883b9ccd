package entities

import "time"

// ActivityStatusCode - закрытый набор статусов. Человекочитаемая подпись
// хранится отдельно и в классификации не участвует.
type ActivityStatusCode string

const (
	ActivityBooked         ActivityStatusCode = "booked"
	ActivityInTransit      ActivityStatusCode = "in_transit"
	ActivityOutForDelivery ActivityStatusCode = "out_for_delivery"
	ActivityDelivered      ActivityStatusCode = "delivered"
	ActivityUndelivered    ActivityStatusCode = "undelivered"
	ActivityRTO            ActivityStatusCode = "rto"
)

func (c ActivityStatusCode) String() string {
	return string(c)
}

// Activity - неизменяемое событие в журнале накладной. Только добавление
// и удаление, никаких правок.
type Activity struct {
	ID         int64
	DocketID   int64
	StatusCode ActivityStatusCode
	Label      string
	Location   string
	OccurredOn time.Time // дата события
	OccurredAt time.Time // время события в рамках даты
	PodImage   *ProofImage
	CreatedAt  time.Time
}

type ActivityModify struct {
	DocketID   *int64
	StatusCode *ActivityStatusCode
	Label      *string
	Location   *string
	OccurredOn *time.Time
	OccurredAt *time.Time
	PodImage   *ProofImage
}

// ProofImage - загруженное во внешний хостинг изображение (POD или квитанция
// ко-лоадера). DeleteKey нужен только для best-effort удаления.
type ProofImage struct {
	URL       string
	DeleteKey string
}

// DeliveryState - производное состояние доставки, вычисляется из последнего
// события журнала и жизненного цикла накладной.
type DeliveryState string

const (
	DeliveryDelivered   DeliveryState = "delivered"
	DeliveryUndelivered DeliveryState = "undelivered"
	DeliveryRTO         DeliveryState = "rto"
	DeliveryPending     DeliveryState = "pending"
	DeliveryStale       DeliveryState = "stale"
)

func (s DeliveryState) String() string {
	return string(s)
}
