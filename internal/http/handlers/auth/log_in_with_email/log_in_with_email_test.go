package loginwithemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	ratelimiter "spendlog/internal/core/domain/rate_limiter"
	"spendlog/internal/core/domain/user"
	service "spendlog/internal/core/services/log_in_with_email"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	result.Token = user.SessionToken("test-token")
	return result, nil
}

func TestLogInWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test", "password": "password-1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid json",
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing password",
			body:           `{"email": "test@test.test"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid credentials",
			body:           `{"email": "test@test.test", "password": "wrong"}`,
			serviceErr:     user.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@test.test", "password": "password-1"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr})

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(testcase.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, testcase.expectedStatus, rec.Code)
			if testcase.expectedStatus == http.StatusOK {
				assert.Contains(t, rec.Body.String(), "test-token")
			}
		})
	}
}
