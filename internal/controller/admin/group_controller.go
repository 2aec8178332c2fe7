package admin

import (
	"net/http"

	"github.com/GanderM1/testforgenew/internal/controller"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/GanderM1/testforgenew/internal/service"
	"github.com/gin-gonic/gin"
)

type GroupController struct {
	groupService     service.GroupService
	adminTestService service.AdminTestService
}

func NewGroupController(gs service.GroupService, ats service.AdminTestService) *GroupController {
	return &GroupController{groupService: gs, adminTestService: ats}
}

// CreateGroup godoc
// @Summary (Admin) Create a group
// @Tags Admin - Groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param group body dto.GroupCreateDTO true "Group name"
// @Success 201 {object} dto.GroupDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or duplicate name"
// @Router /groups [post]
func (c *GroupController) CreateGroup(ctx *gin.Context) {
	var req dto.GroupCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	group, err := c.groupService.Create(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, group)
}

// DeleteGroup godoc
// @Summary (Admin) Delete a group
// @Description Only groups without members and without assigned tests can be deleted.
// @Tags Admin - Groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Group has students or tests"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id} [delete]
func (c *GroupController) DeleteGroup(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.groupService.Delete(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "group deleted"})
}

// GetGroupTests godoc
// @Summary (Teacher) Tests assigned to a group
// @Tags Admin - Groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {array} dto.TestSummaryDTO
// @Router /groups/{id}/tests [get]
func (c *GroupController) GetGroupTests(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	tests, err := c.adminTestService.ListGroupTests(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}
