package entities

import "time"

// Invoice - коммерческие и регуляторные данные накладной. Ноль или одна
// на накладную: без заявленного номера счета записи нет вообще.
type Invoice struct {
	ID         int64
	DocketID   int64
	InvoiceNo  string
	ValueAmt   float64
	EwayBillNo string
	// Дата, до которой действует e-way bill включительно. nil если поля
	// очищены после доставки.
	EwayExpiry *time.Time
	CreatedAt  time.Time
}

type InvoiceDraft struct {
	InvoiceNo  string
	ValueAmt   float64
	EwayBillNo string
}

type EwayState string

const (
	EwayValid        EwayState = "valid"
	EwayExpiringSoon EwayState = "expiring_soon"
	EwayExpired      EwayState = "expired"
)

func (s EwayState) String() string {
	return string(s)
}

// EwayClassification считается заново при каждом чтении и нигде не хранится:
// результат зависит от текущего момента.
type EwayClassification struct {
	State EwayState
	// Для expired - дней просрочено, иначе - дней до истечения (0 = сегодня).
	Days int
}
