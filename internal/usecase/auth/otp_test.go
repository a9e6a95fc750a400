package auth

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type memCodeStore struct {
	values map[string][]byte
	nx     map[string]bool
}

func newMemCodeStore() *memCodeStore {
	return &memCodeStore{values: map[string][]byte{}, nx: map[string]bool{}}
}

func (s *memCodeStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := s.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (s *memCodeStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = b
	return nil
}

func (s *memCodeStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

func (s *memCodeStore) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	if s.nx[key] {
		return false, nil
	}
	s.nx[key] = true
	return true, nil
}

type captureMailer struct {
	to      []string
	subject []string
	body    []string
	err     error
}

func (m *captureMailer) SendEmail(_ context.Context, to, subject, htmlBody string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.subject = append(m.subject, subject)
	m.body = append(m.body, htmlBody)
	return nil
}

func newTestOTP(store *memCodeStore, mailer *captureMailer) *OTPService {
	svc := NewOTPService(store, mailer, time.Minute, nil)
	svc.generate = func() (string, error) { return "123456", nil }
	return svc
}

func TestOTP_IssueThenVerifyConsumesCode(t *testing.T) {
	store := newMemCodeStore()
	mailer := &captureMailer{}
	svc := newTestOTP(store, mailer)

	if err := svc.Issue(context.Background(), PurposeVerify, "a@b.com"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if len(mailer.to) != 1 || mailer.to[0] != "a@b.com" {
		t.Fatalf("mail not delivered: %v", mailer.to)
	}

	if err := svc.Verify(context.Background(), PurposeVerify, "a@b.com", "123456"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	// Consumed: the same code must not verify twice.
	if err := svc.Verify(context.Background(), PurposeVerify, "a@b.com", "123456"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid on reuse, got %v", err)
	}
}

func TestOTP_WrongCodeRejected(t *testing.T) {
	store := newMemCodeStore()
	svc := newTestOTP(store, &captureMailer{})

	if err := svc.Issue(context.Background(), PurposeVerify, "a@b.com"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Verify(context.Background(), PurposeVerify, "a@b.com", "000000"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("expected ErrOTPInvalid, got %v", err)
	}
}

func TestOTP_PurposesAreIsolated(t *testing.T) {
	store := newMemCodeStore()
	svc := newTestOTP(store, &captureMailer{})

	if err := svc.Issue(context.Background(), PurposeVerify, "a@b.com"); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := svc.Verify(context.Background(), PurposeReset, "a@b.com", "123456"); !errors.Is(err, ErrOTPInvalid) {
		t.Fatalf("verify code satisfied reset purpose")
	}
}

func TestOTP_ResendThrottled(t *testing.T) {
	store := newMemCodeStore()
	svc := newTestOTP(store, &captureMailer{})

	if err := svc.Issue(context.Background(), PurposeReset, "a@b.com"); err != nil {
		t.Fatalf("first issue: %v", err)
	}
	if err := svc.Issue(context.Background(), PurposeReset, "a@b.com"); !errors.Is(err, ErrOTPThrottled) {
		t.Fatalf("expected ErrOTPThrottled, got %v", err)
	}
}
