package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository/memory"
	"github.com/spec-kit/agent-console/internal/session"
)

func newVerificationFixture(t *testing.T) (*VerificationService, *domain.ConsoleSession) {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, memory.Seed(store, 4))

	sessions := session.NewMemoryStore()
	svc := NewVerificationService(
		sessions,
		memory.NewCustomerRepository(store),
		memory.NewProductRepository(store),
		zap.NewNop(),
	)

	consoleSession := &domain.ConsoleSession{
		ID:        "test-session",
		AgentID:   1,
		Customer:  domain.CustomerSnapshot{ID: 1, Name: "John Doe", Email: "john.doe@example.com", Phone: "+1 (555) 123-4567"},
		Request:   domain.RequestSnapshot{ID: 2, Type: "Installation Help", Channel: domain.ChannelPhone},
		ViewType:  domain.ViewSupport,
		CreatedAt: time.Now(),
	}
	require.NoError(t, sessions.Put(context.Background(), consoleSession))
	return svc, consoleSession
}

func TestAttemptPIN(t *testing.T) {
	tests := []struct {
		name     string
		pin      string
		verified bool
	}{
		{"non-empty pin accepted", "4821", true},
		{"whitespace pin rejected", "   ", false},
		{"empty pin rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess := newVerificationFixture(t)

			result, err := svc.Attempt(context.Background(), sess.ID, AttemptInput{
				Method: domain.MethodPIN,
				PIN:    tt.pin,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.verified, result.Verified)
			if !tt.verified {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

func TestAttemptCodeRequiresSendCode(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	result, err := svc.Attempt(ctx, sess.ID, AttemptInput{
		Method: domain.MethodEmailCode,
		Code:   "123456",
	})
	require.NoError(t, err)
	assert.False(t, result.Verified)

	_, err = svc.SendCode(ctx, sess.ID, domain.MethodEmailCode)
	require.NoError(t, err)

	result, err = svc.Attempt(ctx, sess.ID, AttemptInput{
		Method: domain.MethodEmailCode,
		Code:   "12345",
	})
	require.NoError(t, err)
	assert.False(t, result.Verified, "5-char code must be rejected")

	result, err = svc.Attempt(ctx, sess.ID, AttemptInput{
		Method: domain.MethodEmailCode,
		Code:   "482913",
	})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.NotNil(t, result.VerifiedAt)
}

func TestAttemptCodeChannelMismatch(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	_, err := svc.SendCode(ctx, sess.ID, domain.MethodEmailCode)
	require.NoError(t, err)

	result, err := svc.Attempt(ctx, sess.ID, AttemptInput{
		Method: domain.MethodPhoneCode,
		Code:   "482913",
	})
	require.NoError(t, err)
	assert.False(t, result.Verified, "code sent by email must not pass a phone attempt")
}

func TestSendCodeRejectsNonCodeMethods(t *testing.T) {
	svc, sess := newVerificationFixture(t)

	_, err := svc.SendCode(context.Background(), sess.ID, domain.MethodPIN)
	assert.Error(t, err)
}

func TestAttemptSecurityQuestion(t *testing.T) {
	// Seeded answers for customer 1: Smith / Rex / Chicago.
	tests := []struct {
		name     string
		index    int
		answer   string
		verified bool
	}{
		{"exact match", 0, "Smith", true},
		{"case insensitive", 0, "sMITH", true},
		{"whitespace trimmed", 2, "  chicago  ", true},
		{"wrong answer", 1, "Fido", false},
		{"answer for another question", 0, "Rex", false},
		{"empty answer", 1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess := newVerificationFixture(t)

			result, err := svc.Attempt(context.Background(), sess.ID, AttemptInput{
				Method:        domain.MethodSecurityQuestion,
				QuestionIndex: tt.index,
				Answer:        tt.answer,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.verified, result.Verified)
		})
	}
}

func TestAttemptSecurityQuestionBadIndex(t *testing.T) {
	svc, sess := newVerificationFixture(t)

	_, err := svc.Attempt(context.Background(), sess.ID, AttemptInput{
		Method:        domain.MethodSecurityQuestion,
		QuestionIndex: len(SecurityQuestions),
		Answer:        "Smith",
	})
	assert.Error(t, err)
}

func TestAttemptDeviceOwnership(t *testing.T) {
	tests := []struct {
		name     string
		serial   string
		verified bool
	}{
		{"known serial", "DB2349857", true},
		{"another known serial", "TH8762140", true},
		{"serial of another customer", "DB8812034", false},
		{"unknown serial", "XX0000000", false},
		{"empty serial", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, sess := newVerificationFixture(t)

			result, err := svc.Attempt(context.Background(), sess.ID, AttemptInput{
				Method:       domain.MethodDeviceOwnership,
				SerialNumber: tt.serial,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.verified, result.Verified)
		})
	}
}

func TestAttemptMarksSessionVerified(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	result, err := svc.Attempt(ctx, sess.ID, AttemptInput{Method: domain.MethodPIN, PIN: "1234"})
	require.NoError(t, err)
	require.True(t, result.Verified)

	stored, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Equal(t, domain.MethodPIN, stored.Method)
	assert.NotNil(t, stored.VerifiedAt)
}

func TestAttemptRejectionLeavesSessionUnverified(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	result, err := svc.Attempt(ctx, sess.ID, AttemptInput{Method: domain.MethodPIN, PIN: ""})
	require.NoError(t, err)
	require.False(t, result.Verified)

	stored, err := svc.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, stored.Verified)
	assert.Nil(t, stored.VerifiedAt)
}

func TestAttemptUnknownMethod(t *testing.T) {
	svc, sess := newVerificationFixture(t)

	_, err := svc.Attempt(context.Background(), sess.ID, AttemptInput{Method: "retina_scan"})
	assert.Error(t, err)
}

func TestClearDropsSession(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Clear(ctx, sess.ID))

	_, err := svc.Get(ctx, sess.ID)
	assert.Error(t, err)
}

func TestCallClock(t *testing.T) {
	svc, sess := newVerificationFixture(t)
	ctx := context.Background()

	base := time.Now()
	svc.now = func() time.Time { return base }

	started, err := svc.StartCall(ctx, sess.ID)
	require.NoError(t, err)
	require.NotNil(t, started.CallStartedAt)

	// Starting again must not reset the clock.
	svc.now = func() time.Time { return base.Add(time.Minute) }
	again, err := svc.StartCall(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, started.CallStartedAt.Unix(), again.CallStartedAt.Unix())

	svc.now = func() time.Time { return base.Add(90 * time.Second) }
	ended, duration, err := svc.EndCall(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, duration)
	assert.Nil(t, ended.CallStartedAt)
}
