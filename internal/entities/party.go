package entities

import "time"

type PartyRole string

const (
	RoleConsignor PartyRole = "consignor"
	RoleConsignee PartyRole = "consignee"
)

func (r PartyRole) String() string {
	return string(r)
}

// Party - грузоотправитель или грузополучатель. Запись может переиспользоваться
// между накладными либо быть одноразовой (Temporary).
type Party struct {
	ID        int64
	Role      PartyRole
	Name      string
	Address   string
	TaxID     string
	Temporary bool
	CreatedAt time.Time
}

type PartyDraft struct {
	Name      string
	Address   string
	TaxID     string
	Temporary bool
}
