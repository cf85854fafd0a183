package middleware

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/shared/constants"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type accountReader interface {
	GetByID(ctx context.Context, id uint) (*user.Account, error)
}

// IdentityMiddleware trusts the X-User-ID header set by the upstream gateway and
// resolves it against the account read model.
type IdentityMiddleware struct {
	accounts accountReader
	logger   logger.Interface
}

func NewIdentityMiddleware(accounts accountReader, logger logger.Interface) *IdentityMiddleware {
	return &IdentityMiddleware{accounts: accounts, logger: logger}
}

// RequireUser rejects requests without a known, active caller.
func (m *IdentityMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(constants.HeaderXUserID)
		id, err := strconv.ParseUint(raw, 10, 64)
		if raw == "" || err != nil || id == 0 {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing or invalid "+constants.HeaderXUserID+" header"))
			c.Abort()
			return
		}

		account, err := m.accounts.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if stderrors.Is(err, user.ErrAccountNotFound) {
				utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("unknown user"))
			} else {
				m.logger.Errorw("failed to resolve caller account", "user_id", id, "error", err)
				utils.ErrorResponseWithError(c, errors.NewInternalError("failed to resolve caller"))
			}
			c.Abort()
			return
		}
		if !account.IsActive() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("account is inactive"))
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, account.ID())
		c.Set(constants.ContextKeyUserRole, account.Role())
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func (m *IdentityMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(constants.ContextKeyUserRole)
		if role != user.RoleAdmin {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
