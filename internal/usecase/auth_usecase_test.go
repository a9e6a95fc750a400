package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"career-connect/internal/domain/user"
	"career-connect/internal/pkg/jwt"
	ucauth "career-connect/internal/usecase/auth"

	"golang.org/x/crypto/bcrypt"
)

type fakeJWT struct{}

func (fakeJWT) GenerateAccessToken(userID, email string, isAdmin bool) (string, error) {
	tok := "access:" + userID
	if isAdmin {
		tok += ":admin"
	}
	return tok, nil
}

func (fakeJWT) GenerateRefreshToken(userID string) (string, error) {
	return "refresh:" + userID, nil
}

func (fakeJWT) ValidateToken(tokenString string) (jwt.Claims, error) {
	parts := strings.Split(tokenString, ":")
	if len(parts) < 2 {
		return jwt.Claims{}, jwt.ErrTokenInvalid
	}
	c := jwt.Claims{UserID: parts[1]}
	switch parts[0] {
	case "access":
		c.TokenType = jwt.TokenTypeAccess
	case "refresh":
		c.TokenType = jwt.TokenTypeRefresh
	default:
		return jwt.Claims{}, jwt.ErrTokenInvalid
	}
	return c, nil
}

func (fakeJWT) IsRefreshToken(claims jwt.Claims) bool {
	return claims.TokenType == jwt.TokenTypeRefresh
}

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (s *memStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if p, ok := out.(*string); ok {
		*p = strings.Trim(v, `"`)
	}
	return true, nil
}

func (s *memStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	if v, ok := value.(string); ok {
		s.values[key] = v
	}
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *memStore) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := s.values[key]; ok {
		return false, nil
	}
	s.values[key] = value
	return true, nil
}

type recordingMailer struct {
	to   []string
	body []string
}

func (m *recordingMailer) SendEmail(_ context.Context, to, _, htmlBody string) error {
	m.to = append(m.to, to)
	m.body = append(m.body, htmlBody)
	return nil
}

var codeRe = regexp.MustCompile(`\d{6}`)

func (m *recordingMailer) lastCode(t *testing.T) string {
	t.Helper()
	if len(m.body) == 0 {
		t.Fatalf("no mail delivered")
	}
	code := codeRe.FindString(m.body[len(m.body)-1])
	if code == "" {
		t.Fatalf("no code in mail body %q", m.body[len(m.body)-1])
	}
	return code
}

func newAuthFixture(admins map[string]bool) (*Auth, *mockUserRepo, *recordingMailer) {
	users := newMockUserRepo()
	mailer := &recordingMailer{}
	otp := ucauth.NewOTPService(newMemStore(), mailer, time.Minute, nil)
	uc := NewAuthUsecase(users, &mockAdminRepo{admins: admins}, fakeJWT{}, otp, nil)
	return uc, users, mailer
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuth_RegisterIssuesVerificationOTP(t *testing.T) {
	uc, _, mailer := newAuthFixture(nil)

	usr, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "a@b.com",
		Password: "longenough",
		Name:     "A",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "a@b.com" {
		t.Fatalf("email = %q", usr.Email)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "a@b.com" {
		t.Fatalf("verification mail not sent: %v", mailer.to)
	}
}

func TestAuth_LoginMintsAdminClaimFromCollection(t *testing.T) {
	users := newMockUserRepo()
	u := users.add(user.User{Email: "root@b.com", PasswordHash: hashOf(t, "longenough")})

	otp := ucauth.NewOTPService(newMemStore(), &recordingMailer{}, time.Minute, nil)
	uc := NewAuthUsecase(users, &mockAdminRepo{admins: map[string]bool{u.ID.Hex(): true}}, fakeJWT{}, otp, nil)

	_, access, refresh, err := uc.Login(context.Background(), ucauth.LoginInput{Email: "root@b.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !strings.HasSuffix(access, ":admin") {
		t.Fatalf("admin claim missing from access token: %q", access)
	}
	if !strings.HasPrefix(refresh, "refresh:") {
		t.Fatalf("unexpected refresh token: %q", refresh)
	}
}

func TestAuth_VerifyOTPMarksUserVerified(t *testing.T) {
	uc, users, mailer := newAuthFixture(nil)

	usr, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	code := mailer.lastCode(t)
	if err := uc.VerifyOTP(context.Background(), "a@b.com", code); err != nil {
		t.Fatalf("verify otp: %v", err)
	}
	if !users.verified[usr.ID.Hex()] {
		t.Fatalf("user not marked verified")
	}
}

func TestAuth_VerifyOTPWrongCode(t *testing.T) {
	uc, _, _ := newAuthFixture(nil)

	if _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.com", Password: "longenough"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := uc.VerifyOTP(context.Background(), "a@b.com", "999999"); !errors.Is(err, ucauth.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
}

func TestAuth_SendOTPResendThrottled(t *testing.T) {
	uc, _, _ := newAuthFixture(nil)

	if _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "a@b.com", Password: "longenough"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Registration already issued a code; an immediate resend hits the
	// throttle window and the sentinel must reach the caller intact.
	if err := uc.SendOTP(context.Background(), "a@b.com"); !errors.Is(err, ucauth.ErrOTPThrottled) {
		t.Fatalf("expected ErrOTPThrottled, got %v", err)
	}
}

func TestAuth_ResetPasswordWrongCode(t *testing.T) {
	uc, users, _ := newAuthFixture(nil)
	users.add(user.User{Email: "a@b.com", PasswordHash: hashOf(t, "oldpassword")})

	if err := uc.ForgotPassword(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}
	if err := uc.ResetPassword(context.Background(), "a@b.com", "000000", "newpassword1"); !errors.Is(err, ucauth.ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
}

func TestAuth_ForgotThenResetPassword(t *testing.T) {
	uc, users, mailer := newAuthFixture(nil)
	u := users.add(user.User{Email: "a@b.com", PasswordHash: hashOf(t, "oldpassword")})

	if err := uc.ForgotPassword(context.Background(), "a@b.com"); err != nil {
		t.Fatalf("forgot: %v", err)
	}

	code := mailer.lastCode(t)
	if err := uc.ResetPassword(context.Background(), "a@b.com", code, "newpassword1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	hash := users.passwords[u.ID.Hex()]
	if hash == "" {
		t.Fatalf("password not updated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword1")); err != nil {
		t.Fatalf("new password hash mismatch: %v", err)
	}
}

func TestAuth_SendOTPUnknownEmailIsSilentNoop(t *testing.T) {
	uc, _, mailer := newAuthFixture(nil)

	if err := uc.SendOTP(context.Background(), "ghost@b.com"); err != nil {
		t.Fatalf("expected silent ack, got %v", err)
	}
	if len(mailer.to) != 0 {
		t.Fatalf("mail sent for unknown address")
	}
}

func TestAuth_RefreshRejectsAccessToken(t *testing.T) {
	uc, users, _ := newAuthFixture(nil)
	u := users.add(user.User{Email: "a@b.com"})

	_, _, err := uc.Refresh(context.Background(), "access:"+u.ID.Hex())
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	uc, users, _ := newAuthFixture(nil)
	u := users.add(user.User{Email: "a@b.com"})

	access, refresh, err := uc.Refresh(context.Background(), "refresh:"+u.ID.Hex())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("tokens not rotated")
	}
}
