package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttemptService struct {
	service.TestAttemptService
	submit   func(attemptID uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error)
	save     func(attemptID uint, req dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error)
	start    func(testID uint, userID *uint) (*dto.TestAttemptDetailDTO, error)
	listUser *uint
}

func (s *stubAttemptService) SubmitAttempt(_ context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
	return s.submit(attemptID, req)
}

func (s *stubAttemptService) SaveProgress(_ context.Context, attemptID uint, req dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error) {
	return s.save(attemptID, req)
}

func (s *stubAttemptService) StartAttempt(_ context.Context, testID uint, userID *uint) (*dto.TestAttemptDetailDTO, error) {
	return s.start(testID, userID)
}

func (s *stubAttemptService) GetUserAttemptsForTest(_ context.Context, _ uint, userID *uint) ([]dto.TestAttemptSummaryDTO, error) {
	s.listUser = userID
	return []dto.TestAttemptSummaryDTO{}, nil
}

func newRouter(svc service.TestAttemptService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewUserTestController(nil, svc)
	r := gin.New()
	r.POST("/tests/:test_id/attempts", c.StartAttempt)
	r.GET("/tests/:test_id/my-attempts", c.GetUserTestAttempts)
	r.PUT("/test-attempts/:attempt_id/answers", c.SaveAnswers)
	r.POST("/test-attempts/:attempt_id/submit", c.SubmitAttempt)
	return r
}

func perform(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitAttempt_Saved(t *testing.T) {
	svc := &stubAttemptService{submit: func(id uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
		assert.Equal(t, uint(12), id)
		assert.Equal(t, grading.List("c", "a"), req.Answers["q4"])
		return &dto.SubmitResultDTO{Saved: true, Attempt: dto.TestAttemptDetailDTO{ID: id}}, nil
	}}

	w := perform(newRouter(svc), http.MethodPost, "/test-attempts/12/submit", `{"answers":{"q4":["c","a"]}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.SubmitResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Saved)
	assert.Equal(t, uint(12), body.Attempt.ID)
}

func TestSubmitAttempt_EmptyBodyIsAllowed(t *testing.T) {
	svc := &stubAttemptService{submit: func(id uint, req dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
		assert.Empty(t, req.Answers)
		return &dto.SubmitResultDTO{Saved: true}, nil
	}}
	w := perform(newRouter(svc), http.MethodPost, "/test-attempts/3/submit", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitAttempt_NotSavedReturns503WithScore(t *testing.T) {
	band := 6.5
	svc := &stubAttemptService{submit: func(id uint, _ dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
		return &dto.SubmitResultDTO{
			Saved:     false,
			SaveError: grading.ErrResultNotSaved.Error(),
			Attempt:   dto.TestAttemptDetailDTO{ID: id, Result: &grading.ScoreResult{Correct: 26, Total: 40, Band: band}},
		}, fmt.Errorf("%w: %w", grading.ErrResultNotSaved, fmt.Errorf("db down"))
	}}

	w := perform(newRouter(svc), http.MethodPost, "/test-attempts/7/submit", `{}`)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, retryAfterSeconds, w.Header().Get("Retry-After"))

	var body dto.SubmitResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Saved)
	require.NotNil(t, body.Attempt.Result)
	assert.Equal(t, band, body.Attempt.Result.Band)
}

func TestSubmitAttempt_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", fmt.Errorf("test attempt 1: %w", service.ErrNotFound), http.StatusNotFound},
		{"validation", &service.ValidationError{Problems: []string{`unknown question key "q9"`}}, http.StatusBadRequest},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubAttemptService{submit: func(uint, dto.AttemptAnswersDTO) (*dto.SubmitResultDTO, error) {
				return nil, tc.err
			}}
			w := perform(newRouter(svc), http.MethodPost, "/test-attempts/1/submit", `{}`)
			assert.Equal(t, tc.code, w.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestSaveAnswers_FinalizedIsConflict(t *testing.T) {
	svc := &stubAttemptService{save: func(uint, dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error) {
		return nil, fmt.Errorf("attempt 4: %w", service.ErrAttemptFinalized)
	}}
	w := perform(newRouter(svc), http.MethodPut, "/test-attempts/4/answers", `{"answers":{"q1":"river"}}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSaveAnswers_RejectsMalformedAnswer(t *testing.T) {
	svc := &stubAttemptService{save: func(uint, dto.AttemptAnswersDTO) (*dto.TestAttemptDetailDTO, error) {
		t.Fatal("service must not be called")
		return nil, nil
	}}
	w := perform(newRouter(svc), http.MethodPut, "/test-attempts/4/answers", `{"answers":{"q1":{"x":1}}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartAttempt(t *testing.T) {
	svc := &stubAttemptService{start: func(testID uint, userID *uint) (*dto.TestAttemptDetailDTO, error) {
		require.NotNil(t, userID)
		assert.Equal(t, uint(9), *userID)
		return &dto.TestAttemptDetailDTO{ID: 1, TestID: testID}, nil
	}}
	r := newRouter(svc)

	w := perform(r, http.MethodPost, "/tests/2/attempts", `{"user_id":9}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(r, http.MethodPost, "/tests/abc/attempts", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserTestAttempts_ParsesUserID(t *testing.T) {
	svc := &stubAttemptService{}
	r := newRouter(svc)

	w := perform(r, http.MethodGet, "/tests/2/my-attempts?user_id=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.listUser)
	assert.Equal(t, uint(5), *svc.listUser)

	w = perform(r, http.MethodGet, "/tests/2/my-attempts?user_id=me", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
