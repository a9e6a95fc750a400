package handler

import (
	"errors"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"
	ucauth "career-connect/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	auth usecase.AuthUsecase
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type otpRequest struct {
	Email string `json:"email"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func NewAuthHandler(auth usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRoutes mounts the public auth endpoints on r. The authenticated
// endpoints (verify-token, profile) go on protected via RegisterProtected.
func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/refresh", h.Refresh)
	r.Post("/auth/send-otp", h.SendOTP)
	r.Post("/auth/resend-otp", h.SendOTP)
	r.Post("/auth/verify-otp", h.VerifyOTP)
	r.Post("/auth/forgot-password", h.ForgotPassword)
	r.Post("/auth/reset-password", h.ResetPassword)
}

func (h *AuthHandler) RegisterProtected(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/auth/verify-token", h.VerifyToken)
	r.Put("/auth/profile", h.UpdateProfile)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.auth.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Registered successfully, verification code sent", usr)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, access, refresh, err := h.auth.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":   usr,
		"tokens": dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh},
	})
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	access, refresh, err := h.auth.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Token refreshed", dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func (h *AuthHandler) SendOTP(c fiber.Ctx) error {
	var req otpRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.auth.SendOTP(c.Context(), req.Email); err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Verification code sent", nil)
}

func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.auth.VerifyOTP(c.Context(), req.Email, req.OTP); err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Email verified", nil)
}

func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var req otpRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.auth.ForgotPassword(c.Context(), req.Email); err != nil {
		return mapAuthError(err)
	}
	// Same response whether or not the address is registered.
	return response.Success(c, fiber.StatusOK, "If the address is registered, a reset code has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.auth.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Password reset successfully", nil)
}

func (h *AuthHandler) VerifyToken(c fiber.Ctx) error {
	token, ok := middleware.BearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}
	claims, err := h.auth.VerifyToken(c.Context(), token)
	if err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Token is valid", fiber.Map{
		"user_id":  claims.UserID,
		"email":    claims.Email,
		"is_admin": claims.IsAdmin,
	})
}

func (h *AuthHandler) UpdateProfile(c fiber.Ctx) error {
	userID, _ := c.Locals(middleware.CtxUserIDKey).(string)
	if userID == "" {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.auth.UpdateProfile(c.Context(), userID, req.Name, req.Phone); err != nil {
		return mapAuthError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", nil)
}

func mapAuthError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email is already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrOTPInvalid):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid or expired verification code", nil, err)
	case errors.Is(err, ucauth.ErrOTPThrottled):
		return middleware.NewAppError(fiber.StatusTooManyRequests, "Please wait before requesting another code", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken), errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
