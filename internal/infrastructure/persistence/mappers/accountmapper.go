package mappers

import (
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

func AccountToEntity(model *models.AccountModel) *user.Account {
	if model == nil {
		return nil
	}
	return user.ReconstructAccount(
		model.ID,
		user.Role(model.Role),
		user.Status(model.Status),
		model.ReferredByID,
	)
}
