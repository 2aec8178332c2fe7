package admin

import (
	"net/http"

	"github.com/GanderM1/testforgenew/internal/controller"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService  service.AdminTestService
	statisticsService service.StatisticsService
}

func NewAdminTestController(ats service.AdminTestService, ss service.StatisticsService) *AdminTestController {
	return &AdminTestController{adminTestService: ats, statisticsService: ss}
}

// CreateTest godoc
// @Summary (Teacher) Create a new test
// @Description Create a test with its questions and answer options. An empty group_ids list makes the test available to everyone.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test data with questions"
// @Success 201 {object} dto.TestCreatedDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Teacher or admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	created, err := c.adminTestService.CreateTest(ctx.Request.Context(), viewer, req)
	if err != nil {
		log.Warn().Err(err).Uint("userID", viewer.UserID).Msg("Admin CreateTest: service error")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateTest godoc
// @Summary (Teacher) Update a test
// @Description Replace the title, description, groups or questions of a test. Questions cannot be replaced once results exist.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "Fields to replace"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	updated, err := c.adminTestService.UpdateTest(ctx.Request.Context(), viewer, testID, req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteTest godoc
// @Summary (Teacher) Delete a test
// @Description Delete a test together with its questions and stored results.
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), viewer, testID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "test deleted"})
}

// DeleteQuestion godoc
// @Summary (Teacher) Delete a question
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param questionId path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Test already has results or this is its last question"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Test or question not found"
// @Router /tests/{id}/questions/{questionId} [delete]
func (c *AdminTestController) DeleteQuestion(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	questionID, ok := controller.ParseID(ctx, "questionId")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteQuestion(ctx.Request.Context(), viewer, testID, questionID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "question deleted"})
}

// GetTestStatistics godoc
// @Summary (Teacher) Statistics of a test
// @Description Per-user best, worst and average percentage for one test, ordered by group and username.
// @Tags Admin - Statistics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestStatisticsDTO
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/statistics [get]
func (c *AdminTestController) GetTestStatistics(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	stats, err := c.statisticsService.TestStatistics(ctx.Request.Context(), viewer, testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
