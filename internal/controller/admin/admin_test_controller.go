package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ieltsprep/internal/controller"
	"github.com/lshigami/ieltsprep/internal/dto"
	"github.com/lshigami/ieltsprep/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a new test with its answer key
// @Description Admin creates a reading or listening test. Every question needs a supported type, a unique number and a correct answer. Suspicious keys are accepted and reported as warnings.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.AdminTestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g., unknown type, duplicate number, blank key)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create test")
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// UpdateTest godoc
// @Summary (Admin) Replace a draft test
// @Description Replaces the metadata and the whole question set of a test that has not been published.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param test_data body dto.TestCreateDTO true "Full test content"
// @Success 200 {object} dto.AdminTestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test already published"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Admin UpdateTest: Failed to bind JSON")
		controller.BindError(ctx, err)
		return
	}

	testResp, err := c.adminTestService.UpdateTest(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update test")
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// PublishTest godoc
// @Summary (Admin) Publish a test
// @Description Makes a test visible to users. Published tests can no longer be edited.
// @Tags Admin - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Test has no questions"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/publish [post]
func (c *AdminTestController) PublishTest(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	testResp, err := c.adminTestService.PublishTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to publish test")
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Tags Admin - Tests
// @Param test_id path int true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), testID); err != nil {
		controller.RespondError(ctx, err, "Failed to delete test")
		return
	}
	ctx.Status(http.StatusNoContent)
}
