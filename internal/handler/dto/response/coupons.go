package response

import (
	"github.com/shopspring/decimal"

	"member-rewards/internal/usecase/commands"
	"member-rewards/internal/usecase/queries"
)

type CouponResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	PointsRequired int32           `json:"points_required"`
	Value          decimal.Decimal `json:"value"`
	CanRedeem      bool            `json:"can_redeem"`
}

type AvailableCouponsResponse struct {
	MemberID        int64            `json:"member_id"`
	AvailablePoints int64            `json:"available_points"`
	Coupons         []CouponResponse `json:"coupons"`
}

func FromAvailableCatalogView(v *queries.AvailableCatalogView) AvailableCouponsResponse {
	coupons := make([]CouponResponse, len(v.Entries))
	for i, e := range v.Entries {
		coupons[i] = CouponResponse{
			ID:             e.ID,
			Name:           e.Name,
			Description:    e.Description,
			PointsRequired: e.PointsRequired,
			Value:          e.Value,
			CanRedeem:      e.CanRedeem,
		}
	}
	return AvailableCouponsResponse{
		MemberID:        v.MemberID,
		AvailablePoints: v.AvailablePoints,
		Coupons:         coupons,
	}
}

type RedeemResponse struct {
	RedemptionID    int64           `json:"redemption_id"`
	Code            string          `json:"code"`
	CouponName      string          `json:"coupon_name"`
	Value           decimal.Decimal `json:"value"`
	PointsRedeemed  int32           `json:"points_redeemed"`
	RemainingPoints int64           `json:"remaining_points"`
	Message         string          `json:"message"`
}

func FromRedeemResult(r *commands.RedeemResult) RedeemResponse {
	return RedeemResponse{
		RedemptionID:    r.RedemptionID,
		Code:            r.Code,
		CouponName:      r.EntryName,
		Value:           r.Value,
		PointsRedeemed:  r.PointsRedeemed,
		RemainingPoints: r.RemainingPoints,
		Message:         "Coupon redeemed successfully.",
	}
}
