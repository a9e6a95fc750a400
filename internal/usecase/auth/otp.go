package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"career-connect/internal/infrastructure/email"
)

const (
	// PurposeVerify gates account email verification, PurposeReset gates
	// password resets. Codes for one purpose never satisfy the other.
	PurposeVerify = "verify"
	PurposeReset  = "reset"

	otpDigits = 6
)

var (
	ErrOTPInvalid   = errors.New("invalid or expired otp")
	ErrOTPThrottled = errors.New("otp recently sent")
)

// CodeStore is the slice of the cache the OTP service needs. Codes are
// plain TTL'd values; expiry is the store's job.
type CodeStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

type OTPService struct {
	store  CodeStore
	mailer email.Service
	ttl    time.Duration
	logger *log.Logger

	generate func() (string, error)
}

func NewOTPService(store CodeStore, mailer email.Service, ttl time.Duration, logger *log.Logger) *OTPService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &OTPService{
		store:    store,
		mailer:   mailer,
		ttl:      ttl,
		logger:   logger,
		generate: generateCode,
	}
}

// Issue mints a fresh code for (purpose, email), stores it with a TTL and
// mails it. Re-issuing replaces any previous code. Issuance within the
// resend window is rejected with ErrOTPThrottled.
func (s *OTPService) Issue(ctx context.Context, purpose, emailAddr string) error {
	ok, err := s.store.SetIfNotExists(ctx, throttleKey(purpose, emailAddr), "1", 30*time.Second)
	if err == nil && !ok {
		return ErrOTPThrottled
	}

	code, err := s.generate()
	if err != nil {
		return err
	}

	if err := s.store.SetJSON(ctx, codeKey(purpose, emailAddr), code, s.ttl); err != nil {
		return err
	}

	subject, body := otpMessage(purpose, code)
	if err := s.mailer.SendEmail(ctx, emailAddr, subject, body); err != nil {
		if s.logger != nil {
			s.logger.Printf("[OTP] delivery failed purpose=%s to=%s: %v", purpose, emailAddr, err)
		}
		return err
	}
	return nil
}

// Verify checks a submitted code and consumes it on success. A miss, an
// expired key and a wrong code are indistinguishable to the caller.
func (s *OTPService) Verify(ctx context.Context, purpose, emailAddr, code string) error {
	if code == "" {
		return ErrOTPInvalid
	}

	var stored string
	hit, err := s.store.GetJSON(ctx, codeKey(purpose, emailAddr), &stored)
	if err != nil || !hit {
		return ErrOTPInvalid
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrOTPInvalid
	}

	_ = s.store.Delete(ctx, codeKey(purpose, emailAddr))
	return nil
}

func codeKey(purpose, email string) string {
	return fmt.Sprintf("otp:%s:%s", purpose, email)
}

func throttleKey(purpose, email string) string {
	return fmt.Sprintf("otp:throttle:%s:%s", purpose, email)
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}

func otpMessage(purpose, code string) (subject, body string) {
	switch purpose {
	case PurposeReset:
		subject = "Your password reset code"
	default:
		subject = "Your verification code"
	}
	body = fmt.Sprintf("<p>Your one-time code is <strong>%s</strong>. It expires shortly.</p>", code)
	return subject, body
}
