package user

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/internal/controller"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/grading"
	"github.com/lshigami/ieltsprep/internal/service"
	"github.com/rs/zerolog/log"
)

// retryAfterSeconds is sent when a score was computed but not stored.
const retryAfterSeconds = "5"

type UserTestController struct {
	userTestService    service.UserTestService
	testAttemptService service.TestAttemptService
}

func NewUserTestController(uts service.UserTestService, tas service.TestAttemptService) *UserTestController {
	return &UserTestController{
		userTestService:    uts,
		testAttemptService: tas,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get a list of published tests, optionally filtered by module.
// @Tags User - Tests & Attempts
// @Produce json
// @Param module query string false "reading or listening"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown module"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	module := ctx.Query("module")
	if module != "" && module != "reading" && module != "listening" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid module, expected reading or listening"})
		return
	}

	tests, err := c.userTestService.GetAllTests(ctx.Request.Context(), module)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve tests")
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get full details of a published test, including all its questions but not the answer key.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve test")
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// StartAttempt godoc
// @Summary (User) Start a test attempt
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "ID of the Test being attempted"
// @Param start_data body dto.AttemptStartDTO false "User ID (optional for now)"
// @Success 201 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) StartAttempt(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.AttemptStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		controller.BindError(ctx, err)
		return
	}

	attempt, err := c.testAttemptService.StartAttempt(ctx.Request.Context(), testID, req.UserID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to start test attempt")
		return
	}
	ctx.JSON(http.StatusCreated, attempt)
}

// SaveAnswers godoc
// @Summary (User) Save answers and review flags
// @Description Merges the given answers and flags into an in-progress attempt. A flag set to false clears it.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Param answers body dto.AttemptAnswersDTO true "Answers and flags keyed by question key"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown question key"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Router /test-attempts/{attempt_id}/answers [put]
func (c *UserTestController) SaveAnswers(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.AttemptAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	attempt, err := c.testAttemptService.SaveProgress(ctx.Request.Context(), attemptID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to save answers")
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// SubmitAttempt godoc
// @Summary (User) Submit a test attempt
// @Description Merges the final answers, scores the attempt and stores the result. Submitting again returns the stored result. When the score cannot be stored the response is 503 with saved=false and the computed score.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Param answers body dto.AttemptAnswersDTO false "Final answers and flags"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown question key"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 503 {object} dto.SubmitResultDTO "Score computed but not stored"
// @Router /test-attempts/{attempt_id}/submit [post]
func (c *UserTestController) SubmitAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.AttemptAnswersDTO
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		controller.BindError(ctx, err)
		return
	}

	result, err := c.testAttemptService.SubmitAttempt(ctx.Request.Context(), attemptID, req)
	if err != nil {
		if errors.Is(err, grading.ErrResultNotSaved) && result != nil {
			log.Warn().Err(err).Uint("attemptID", attemptID).Msg("User SubmitAttempt: Returning unsaved result")
			ctx.Header("Retry-After", retryAfterSeconds)
			ctx.JSON(http.StatusServiceUnavailable, result)
			return
		}
		controller.RespondError(ctx, err, "Failed to submit test attempt")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetUserTestAttempts godoc
// @Summary (User) Get all attempts by a user for a specific test
// @Description Retrieve a list of summary information for all attempts a user made on a test.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int false "User ID to filter attempts. (Temporary - will be from auth token)"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format for Test ID or User ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/my-attempts [get]
func (c *UserTestController) GetUserTestAttempts(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	userID, ok := controller.ParseOptionalUserID(ctx)
	if !ok {
		return
	}

	attempts, err := c.testAttemptService.GetUserAttemptsForTest(ctx.Request.Context(), testID, userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve user attempts for test")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetSpecificTestAttemptDetails godoc
// @Summary (User) Get details of a specific test attempt
// @Description Retrieve full details of a single test attempt. Submitted attempts include the score breakdown and a per-question review.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts/{attempt_id} [get]
func (c *UserTestController) GetSpecificTestAttemptDetails(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	attemptDetails, err := c.testAttemptService.GetTestAttemptDetails(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve test attempt")
		return
	}
	ctx.JSON(http.StatusOK, attemptDetails)
}
