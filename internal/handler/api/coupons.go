package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "member-rewards/internal/handler/dto/request"
	resdto "member-rewards/internal/handler/dto/response"
	"member-rewards/internal/handler/middleware"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/commands"
	"member-rewards/internal/usecase/queries"
)

type CouponsHandler struct {
	redemptionCommands commands.RedemptionCommands
	catalogQueries     queries.CatalogQueries
}

func NewCouponsHandler(redemptionCommands commands.RedemptionCommands, catalogQueries queries.CatalogQueries) *CouponsHandler {
	return &CouponsHandler{
		redemptionCommands: redemptionCommands,
		catalogQueries:     catalogQueries,
	}
}

// @Summary List available coupons
// @Description List active coupons with redeemability for the authenticated member
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AvailableCouponsResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/available [get]
func (h *CouponsHandler) ListMyAvailable(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondWithAvailable(c, memberID)
}

// @Summary List available coupons for member
// @Description List active coupons with redeemability for a member by ID
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} resdto.AvailableCouponsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/available/{memberId} [get]
func (h *CouponsHandler) ListAvailableForMember(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID format",
		})
		return
	}

	h.respondWithAvailable(c, memberID)
}

// @Summary Redeem coupon
// @Description Exchange points for a coupon code
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemRequest true "Redeem request"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/redeem [post]
func (h *CouponsHandler) Redeem(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.redemptionCommands.Redeem(c.Request.Context(), commands.RedeemInput{
		MemberID:       memberID,
		CatalogEntryID: req.CouponID,
	})
	if err != nil {
		var insufficientErr *commands.InsufficientBalanceError
		switch {
		case errors.Is(err, errs.ErrMemberNotEligible):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found or not verified",
			})
		case errors.Is(err, errs.ErrCatalogEntryUnavailable):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found or not active",
			})
		case errors.As(err, &insufficientErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Insufficient points. Required: %d, Available: %d",
					insufficientErr.Required, insufficientErr.Available),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemResult(result))
}

func (h *CouponsHandler) respondWithAvailable(c *gin.Context, memberID int64) {
	view, err := h.catalogQueries.ListAvailable(c.Request.Context(), memberID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMemberNotEligible):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found or not verified",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableCatalogView(view))
}
