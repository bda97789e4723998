package response

import (
	"time"

	"github.com/shopspring/decimal"

	"member-rewards/internal/usecase/commands"
	"member-rewards/internal/usecase/queries"
)

type AddPointsResponse struct {
	MemberID     int64  `json:"member_id"`
	PointsEarned int32  `json:"points_earned"`
	TotalPoints  int64  `json:"total_points"`
	Message      string `json:"message"`
}

func FromAddPointsResult(r *commands.AddPointsResult) AddPointsResponse {
	return AddPointsResponse{
		MemberID:     r.MemberID,
		PointsEarned: r.PointsEarned,
		TotalPoints:  r.TotalPoints,
		Message:      "Points added successfully.",
	}
}

type PointTransactionResponse struct {
	Date           time.Time       `json:"date"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
	PointsEarned   int32           `json:"points_earned"`
	Description    *string         `json:"description,omitempty"`
}

type MemberPointsResponse struct {
	MemberID     int64                      `json:"member_id"`
	MobileNumber string                     `json:"mobile_number"`
	TotalPoints  int64                      `json:"total_points"`
	Transactions []PointTransactionResponse `json:"transactions"`
}

func FromMemberPointsView(v *queries.MemberPointsView) MemberPointsResponse {
	transactions := make([]PointTransactionResponse, len(v.Transactions))
	for i, t := range v.Transactions {
		transactions[i] = PointTransactionResponse{
			Date:           t.Date,
			PurchaseAmount: t.PurchaseAmount,
			PointsEarned:   t.PointsEarned,
			Description:    t.Description,
		}
	}
	return MemberPointsResponse{
		MemberID:     v.MemberID,
		MobileNumber: v.MobileNumber,
		TotalPoints:  v.TotalPoints,
		Transactions: transactions,
	}
}
