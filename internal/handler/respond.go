package handler

import (
	"github.com/gin-gonic/gin"

	"pgms-be-svc/internal/apperr"
	"pgms-be-svc/pkg/utils"
)

// respondError maps a kinded service error to the HTTP envelope. Unknown
// kinds fall through to a 500 with the given message.
func respondError(c *gin.Context, err error, fallbackMessage string) {
	switch apperr.KindOf(err) {
	case apperr.Validation:
		utils.BadRequestResponse(c, err.Error(), nil)
	case apperr.NotFound:
		utils.NotFoundResponse(c, err.Error())
	case apperr.Conflict:
		utils.ConflictResponse(c, err.Error(), nil)
	case apperr.PermissionDenied:
		utils.ForbiddenResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c, fallbackMessage, err)
	}
}
