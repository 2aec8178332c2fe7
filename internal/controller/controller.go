// Package controller holds the pieces shared by the admin and user HTTP
// handlers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GanderM1/testforgenew/internal/apperror"
	"github.com/GanderM1/testforgenew/internal/auth"
	"github.com/GanderM1/testforgenew/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status of its kind. Storage failures are
// logged and reported without their cause.
func RespondError(ctx *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindStorage {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
	}
	ctx.AbortWithStatusJSON(kind.HTTPStatus(), dto.ErrorResponse{Message: apperror.PublicMessage(err)})
}

// RespondBindError reports a malformed request body.
func RespondBindError(ctx *gin.Context, err error) {
	resp := dto.ErrorResponse{Message: "invalid request body"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Details = append(resp.Details, fe.Namespace()+": failed on "+fe.Tag())
		}
	} else {
		resp.Details = []string{err.Error()}
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("failed to bind request")
	ctx.AbortWithStatusJSON(http.StatusBadRequest, resp)
}

// ParseID reads a positive numeric path parameter.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// Viewer returns the authenticated caller, answering 401 when there is none.
func Viewer(ctx *gin.Context) (auth.Identity, bool) {
	id, ok := auth.IdentityFrom(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authorization required"})
	}
	return id, ok
}
