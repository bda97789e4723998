package request

import "github.com/shopspring/decimal"

type AddPointsRequest struct {
	MemberID       int64           `json:"member_id" binding:"required"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	Description    *string         `json:"description,omitempty"`
}

func (r AddPointsRequest) GetDescription() *string {
	return trimOptional(r.Description)
}
