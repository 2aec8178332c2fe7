package user

import (
	"net/http"

	"github.com/GanderM1/testforgenew/internal/controller"
	"github.com/GanderM1/testforgenew/internal/service"
	"github.com/gin-gonic/gin"
)

type GroupController struct {
	groupService service.GroupService
}

func NewGroupController(gs service.GroupService) *GroupController {
	return &GroupController{groupService: gs}
}

// ListGroups godoc
// @Summary List groups
// @Tags Groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.GroupDTO
// @Router /groups [get]
func (c *GroupController) ListGroups(ctx *gin.Context) {
	groups, err := c.groupService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}
