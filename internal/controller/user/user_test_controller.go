package user

import (
	"net/http"

	"github.com/GanderM1/testforgenew/internal/controller"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
	statisticsService     service.StatisticsService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService, ss service.StatisticsService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
		statisticsService:     ss,
	}
}

// GetAllTests godoc
// @Summary List the tests available to the caller
// @Description Students see general tests and tests of their group, teachers see general tests and their own, admins see everything.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Authorization required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	tests, err := c.userTestService.ListTests(ctx.Request.Context(), viewer)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get a test with its questions
// @Description Correct answers are only included for the author and admins.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 403 {object} dto.ErrorResponse "Test not available to the caller"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	test, err := c.userTestService.GetTest(ctx.Request.Context(), viewer, testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// CheckAccess godoc
// @Summary Check whether the caller may take a test
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Success 200 {object} dto.CheckAccessDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/check-access [get]
func (c *UserTestController) CheckAccess(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	access, err := c.userTestService.CheckAccess(ctx.Request.Context(), viewer, testID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, access)
}

// SubmitTest godoc
// @Summary Submit answers for a test
// @Description Every question must be answered exactly once: answerId for single, answerIds for multiple, textAnswer for text questions. The graded result is stored.
// @Tags User - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Test ID"
// @Param submission body dto.TestSubmitDTO true "Answers"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed submission"
// @Failure 403 {object} dto.ErrorResponse "Test not available to the caller"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{id}/submit [post]
func (c *UserTestController) SubmitTest(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	var req dto.TestSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}

	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), viewer, testID, req)
	if err != nil {
		log.Info().Err(err).Uint("testID", testID).Uint("userID", viewer.UserID).Msg("User SubmitTest: rejected")
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyStats godoc
// @Summary The caller's results per test
// @Description Best, worst and average percentage per attempted test, most recent first.
// @Tags User - Statistics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.MyStatDTO
// @Failure 401 {object} dto.ErrorResponse "Authorization required"
// @Router /students/my-stats [get]
func (c *UserTestController) GetMyStats(ctx *gin.Context) {
	viewer, ok := controller.Viewer(ctx)
	if !ok {
		return
	}
	stats, err := c.statisticsService.MyStatistics(ctx.Request.Context(), viewer)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
