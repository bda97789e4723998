package response

import "member-rewards/internal/usecase/commands"

type RegisterResponse struct {
	MemberID int64  `json:"member_id"`
	Message  string `json:"message"`
	// VerificationCode is echoed until an SMS gateway is wired up.
	VerificationCode string `json:"verification_code"`
}

func FromRegisterResult(r *commands.RegisterResult) RegisterResponse {
	msg := "Registration successful. Please verify your mobile number."
	if r.Reissued {
		msg = "A new verification code has been issued."
	}
	return RegisterResponse{
		MemberID:         r.MemberID,
		Message:          msg,
		VerificationCode: r.VerificationCode,
	}
}

type VerifyResponse struct {
	MemberID    int64  `json:"member_id"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
}

func FromVerifyResult(r *commands.VerifyResult) VerifyResponse {
	return VerifyResponse{
		MemberID:    r.MemberID,
		Message:     "Mobile number verified successfully.",
		AccessToken: r.Token,
	}
}
