package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/internal/controller"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/service"
)

type WritingController struct {
	writingService service.WritingFeedbackService
}

func NewWritingController(writingService service.WritingFeedbackService) *WritingController {
	return &WritingController{writingService: writingService}
}

// SubmitWriting godoc
// @Summary (User) Get AI feedback on a writing task
// @Description Sends a Task 1 or Task 2 response for AI review and stores the feedback with an estimated band.
// @Tags User - Writing
// @Accept json
// @Produce json
// @Param writing body dto.WritingFeedbackRequestDTO true "Task type, prompt and essay"
// @Success 201 {object} dto.WritingFeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 503 {object} dto.ErrorResponse "AI feedback unavailable"
// @Router /writing/feedback [post]
func (c *WritingController) SubmitWriting(ctx *gin.Context) {
	var req dto.WritingFeedbackRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.writingService.Evaluate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to evaluate writing")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetWritingHistory godoc
// @Summary (User) List writing feedback
// @Tags User - Writing
// @Produce json
// @Param user_id query int false "User ID to filter feedback. (Temporary - will be from auth token)"
// @Success 200 {array} dto.WritingFeedbackResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Router /writing/feedback [get]
func (c *WritingController) GetWritingHistory(ctx *gin.Context) {
	userID, ok := controller.ParseOptionalUserID(ctx)
	if !ok {
		return
	}
	resp, err := c.writingService.GetUserFeedback(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve writing feedback")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
