package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"member-rewards/internal/domain/points"
	reqdto "member-rewards/internal/handler/dto/request"
	resdto "member-rewards/internal/handler/dto/response"
	"member-rewards/internal/handler/middleware"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/commands"
	"member-rewards/internal/usecase/queries"
)

type PointsHandler struct {
	pointsCommands commands.PointsCommands
	pointsQueries  queries.PointsQueries
}

func NewPointsHandler(pointsCommands commands.PointsCommands, pointsQueries queries.PointsQueries) *PointsHandler {
	return &PointsHandler{
		pointsCommands: pointsCommands,
		pointsQueries:  pointsQueries,
	}
}

// @Summary Add points
// @Description Record a purchase and accrue points for a verified member
// @Tags points
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddPointsRequest true "Add points request"
// @Success 200 {object} resdto.AddPointsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /points/add [post]
func (h *PointsHandler) AddPoints(c *gin.Context) {
	var req reqdto.AddPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.pointsCommands.AddPoints(c.Request.Context(), commands.AddPointsInput{
		MemberID:       req.MemberID,
		PurchaseAmount: req.PurchaseAmount,
		Description:    req.GetDescription(),
	})
	if err != nil {
		switch {
		case errors.Is(err, points.ErrNonPositiveAmount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Purchase amount must be greater than zero",
			})
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

	c.JSON(http.StatusOK, resdto.FromAddPointsResult(result))
}

// @Summary Get my points
// @Description Get the authenticated member's balance and earn history
// @Tags points
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MemberPointsResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /points/my-points [get]
func (h *PointsHandler) GetMyPoints(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.respondWithPoints(c, memberID)
}

// @Summary Get member points
// @Description Get a member's balance and earn history by member ID
// @Tags points
// @Produce json
// @Security BearerAuth
// @Param memberId path int true "Member ID"
// @Success 200 {object} resdto.MemberPointsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /points/{memberId} [get]
func (h *PointsHandler) GetMemberPoints(c *gin.Context) {
	memberID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID format",
		})
		return
	}

	h.respondWithPoints(c, memberID)
}

func (h *PointsHandler) respondWithPoints(c *gin.Context, memberID int64) {
	view, err := h.pointsQueries.GetMemberPoints(c.Request.Context(), memberID)
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

	c.JSON(http.StatusOK, resdto.FromMemberPointsView(view))
}
