package usecase

import (
	"context"
	"errors"
	"log"

	"career-connect/internal/domain/user"
	"career-connect/internal/pkg/jwt"
	ucauth "career-connect/internal/usecase/auth"
)

// AuthUsecase covers registration, OTP-verified email flows, login with
// token minting, refresh, and profile updates. The access token carries an
// is_admin claim resolved once from the admins collection at mint time.
type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	VerifyToken(ctx context.Context, token string) (jwt.Claims, error)

	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error

	UpdateProfile(ctx context.Context, userID, name, phone string) error
}

type Auth struct {
	authSvc *ucauth.Service
	otp     *ucauth.OTPService
	users   user.Repository
	admins  user.AdminRepository
	jwt     jwt.Service
	logger  *log.Logger
}

func NewAuthUsecase(users user.Repository, admins user.AdminRepository, jwtSvc jwt.Service, otp *ucauth.OTPService, logger *log.Logger) *Auth {
	return &Auth{
		authSvc: ucauth.NewService(users),
		otp:     otp,
		users:   users,
		admins:  admins,
		jwt:     jwtSvc,
		logger:  logger,
	}
}

// Register creates the account and kicks off email verification. OTP
// delivery failure is logged, not fatal; the user can request a resend.
func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, err
	}

	if err := u.otp.Issue(ctx, ucauth.PurposeVerify, usr.Email); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Auth] verification otp issue failed email=%s: %v", usr.Email, err)
		}
	}
	return usr, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	access, refresh, err := u.mintTokens(ctx, usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInternal
	}

	return u.mintTokens(ctx, usr)
}

// VerifyToken validates a bearer token and returns its claims, for clients
// that want to confirm a stored session is still usable.
func (u *Auth) VerifyToken(_ context.Context, token string) (jwt.Claims, error) {
	if token == "" {
		return jwt.Claims{}, ErrUnauthorized
	}
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		return jwt.Claims{}, ErrUnauthorized
	}
	if u.jwt.IsRefreshToken(claims) {
		return jwt.Claims{}, ErrUnauthorized
	}
	return claims, nil
}

func (u *Auth) SendOTP(ctx context.Context, email string) error {
	email = ucauth.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	// Whether the address is registered is not revealed; unknown addresses
	// are acknowledged without a send.
	if _, err := u.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	if err := u.otp.Issue(ctx, ucauth.PurposeVerify, email); err != nil {
		if errors.Is(err, ucauth.ErrOTPThrottled) {
			return err
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) VerifyOTP(ctx context.Context, email, code string) error {
	email = ucauth.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	if err := u.otp.Verify(ctx, ucauth.PurposeVerify, email, code); err != nil {
		if errors.Is(err, ucauth.ErrOTPInvalid) {
			return err
		}
		return ErrInternal
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUnauthorized
		}
		return ErrInternal
	}
	if err := u.users.SetVerified(ctx, usr.ID.Hex(), true); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Auth) ForgotPassword(ctx context.Context, email string) error {
	email = ucauth.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	if _, err := u.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil
		}
		return ErrInternal
	}

	if err := u.otp.Issue(ctx, ucauth.PurposeReset, email); err != nil {
		if errors.Is(err, ucauth.ErrOTPThrottled) {
			return err
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = ucauth.NormalizeEmail(email)
	if email == "" {
		return ErrInvalidInput
	}

	if err := u.otp.Verify(ctx, ucauth.PurposeReset, email, code); err != nil {
		if errors.Is(err, ucauth.ErrOTPInvalid) {
			return err
		}
		return ErrInternal
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUnauthorized
		}
		return ErrInternal
	}

	if err := u.authSvc.SetPassword(ctx, usr.ID.Hex(), newPassword); err != nil {
		if errors.Is(err, ucauth.ErrInvalidInput) {
			return ErrInvalidInput
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) UpdateProfile(ctx context.Context, userID, name, phone string) error {
	if userID == "" {
		return ErrUnauthorized
	}
	if err := u.users.UpdateProfile(ctx, userID, name, phone); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Auth) mintTokens(ctx context.Context, usr user.User) (string, string, error) {
	isAdmin, err := u.admins.IsAdmin(ctx, usr.ID.Hex())
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Auth] admin lookup failed user=%s: %v", usr.ID.Hex(), err)
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID.Hex(), usr.Email, isAdmin)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID.Hex())
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
