package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/internal/controller"
	"github.com/lshigami/ieltsprep/internal/service"
)

type AdminAttemptController struct {
	adminAttemptService service.AdminAttemptService
}

func NewAdminAttemptController(adminAttemptService service.AdminAttemptService) *AdminAttemptController {
	return &AdminAttemptController{adminAttemptService: adminAttemptService}
}

// RescoreAttempt godoc
// @Summary (Admin) Rescore a submitted attempt
// @Description Recomputes the attempt against the current answer key and overwrites the stored result.
// @Tags Admin - Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.RescoreResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Attempt not submitted yet"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/test-attempts/{attempt_id}/rescore [post]
func (c *AdminAttemptController) RescoreAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseIDParam(ctx, "attempt_id")
	if !ok {
		return
	}
	resp, err := c.adminAttemptService.RescoreAttempt(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to rescore test attempt")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
