package mappers

import (
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

type InquiryMapper interface {
	ToEntity(model *models.InquiryModel) *inquiry.Inquiry
	ToModel(entity *inquiry.Inquiry) *models.InquiryModel
	ToEntities(modelList []*models.InquiryModel) []*inquiry.Inquiry
}

type InquiryMapperImpl struct{}

func NewInquiryMapper() InquiryMapper {
	return &InquiryMapperImpl{}
}

func (m *InquiryMapperImpl) ToEntity(model *models.InquiryModel) *inquiry.Inquiry {
	if model == nil {
		return nil
	}

	return inquiry.ReconstructInquiry(
		model.ID,
		model.SID,
		model.ListingID,
		model.ListingNumber,
		model.AssignedAgentID,
		model.BuyerName,
		model.BuyerEmail,
		model.Message,
		model.FirstAgentResponseAt,
		inquiry.NotifiedState(model.LastNotifiedState),
		model.ArchivedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *InquiryMapperImpl) ToModel(entity *inquiry.Inquiry) *models.InquiryModel {
	if entity == nil {
		return nil
	}

	return &models.InquiryModel{
		ID:                   entity.ID(),
		SID:                  entity.SID(),
		ListingID:            entity.ListingID(),
		ListingNumber:        entity.ListingNumber(),
		AssignedAgentID:      entity.AssignedAgentID(),
		BuyerName:            entity.BuyerName(),
		BuyerEmail:           entity.BuyerEmail(),
		Message:              entity.Message(),
		FirstAgentResponseAt: entity.FirstAgentResponseAt(),
		LastNotifiedState:    string(entity.LastNotifiedState()),
		ArchivedAt:           entity.ArchivedAt(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *InquiryMapperImpl) ToEntities(modelList []*models.InquiryModel) []*inquiry.Inquiry {
	entities := make([]*inquiry.Inquiry, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
