package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"member-rewards/internal/domain/member"
	reqdto "member-rewards/internal/handler/dto/request"
	resdto "member-rewards/internal/handler/dto/response"
	"member-rewards/internal/pkg/errs"
	"member-rewards/internal/usecase/commands"
)

type MemberHandler struct {
	memberCommands commands.MemberCommands
}

func NewMemberHandler(memberCommands commands.MemberCommands) *MemberHandler {
	return &MemberHandler{
		memberCommands: memberCommands,
	}
}

// @Summary Register member
// @Description Register a new member with a mobile number, or reissue the verification code for a pending registration
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /members/register [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	name, email := req.Normalized()
	result, err := h.memberCommands.Register(c.Request.Context(), commands.RegisterInput{
		MobileNumber: req.MobileNumber,
		Name:         name,
		Email:        email,
	})
	if err != nil {
		switch {
		case errors.Is(err, member.ErrInvalidMobileNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid mobile number format",
			})
		case errors.Is(err, member.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email format",
			})
		case errors.Is(err, errs.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Mobile number is already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.Reissued {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRegisterResult(result))
}

// @Summary Verify member
// @Description Verify a registered mobile number with the one-time code
// @Tags members
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyRequest true "Verification request"
// @Success 200 {object} resdto.VerifyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /members/verify [post]
func (h *MemberHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.memberCommands.Verify(c.Request.Context(), commands.VerifyInput{
		MobileNumber: req.MobileNumber,
		Code:         req.Code,
	})
	if err != nil {
		switch {
		case errors.Is(err, member.ErrInvalidMobileNumber):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid mobile number format",
			})
		case errors.Is(err, errs.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found",
			})
		case errors.Is(err, errs.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Member is already verified",
			})
		case errors.Is(err, errs.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid verification code",
			})
		case errors.Is(err, errs.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Verification code has expired. Please register again to receive a new code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}
