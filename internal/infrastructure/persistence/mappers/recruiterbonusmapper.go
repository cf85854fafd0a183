package mappers

import (
	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

func BonusRecordToEntity(model *models.RecruiterBonusRecordModel) *referral.RecruiterBonusRecord {
	if model == nil {
		return nil
	}
	return referral.ReconstructRecruiterBonusRecord(
		model.ID,
		model.SID,
		model.ListingID,
		model.ReferrerID,
		model.ReferredID,
		model.Amount,
		model.QualifyingStatus,
		model.CreatedAt,
	)
}

func BonusRecordToModel(entity *referral.RecruiterBonusRecord) *models.RecruiterBonusRecordModel {
	if entity == nil {
		return nil
	}
	return &models.RecruiterBonusRecordModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		ListingID:        entity.ListingID(),
		ReferrerID:       entity.ReferrerID(),
		ReferredID:       entity.ReferredID(),
		Amount:           entity.Amount(),
		QualifyingStatus: entity.QualifyingStatus(),
		CreatedAt:        entity.CreatedAt(),
	}
}

