package handlers

import (
	stderrors "errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/shared/constants"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

// currentUserID returns the caller set by the identity middleware, writing a 401
// when it is missing.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	userID, ok := v.(uint)
	if !exists || !ok || userID == 0 {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("user not authenticated"))
		return 0, false
	}
	return userID, true
}

// currentActor returns the caller with the role resolved by the identity
// middleware, writing a 401 when it is missing.
func currentActor(c *gin.Context) (user.Actor, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return user.Actor{}, false
	}
	role, _ := c.Get(constants.ContextKeyUserRole)
	r, _ := role.(user.Role)
	return user.Actor{ID: userID, Role: r}, true
}

// bindJSON decodes and validates the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		if verr := utils.ValidateStruct(req); verr != nil {
			utils.ErrorResponseWithError(c, verr)
			return false
		}
	}
	utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
	return false
}
