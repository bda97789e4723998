package request

type RedeemRequest struct {
	CouponID int64 `json:"coupon_id" binding:"required"`
}
