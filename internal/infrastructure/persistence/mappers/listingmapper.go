package mappers

import (
	"fmt"

	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
)

type ListingMapper interface {
	ToEntity(model *models.ListingModel) (*listing.Listing, error)
	ToModel(entity *listing.Listing) *models.ListingModel
}

type ListingMapperImpl struct{}

func NewListingMapper() ListingMapper {
	return &ListingMapperImpl{}
}

func (m *ListingMapperImpl) ToEntity(model *models.ListingModel) (*listing.Listing, error) {
	if model == nil {
		return nil, nil
	}

	status, err := listing.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map listing status: %w", err)
	}

	listingType := listing.ListingType(model.ListingType)
	if !listingType.IsValid() {
		return nil, fmt.Errorf("invalid listing type in database: %s", model.ListingType)
	}

	split := listing.ReconstructSplit(
		model.AgentCommissionPct,
		model.PromoterCommissionPct,
		model.CompanyCommissionPct,
		model.PromoterID != nil,
	)

	return listing.ReconstructListing(
		model.ID,
		model.SID,
		model.ListingNumber,
		model.Title,
		model.Price,
		listingType,
		status,
		model.CreatorID,
		model.AgentID,
		model.PromoterID,
		split,
		model.BonusIssued,
		model.Version,
		model.ClosedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *ListingMapperImpl) ToModel(entity *listing.Listing) *models.ListingModel {
	if entity == nil {
		return nil
	}

	split := entity.Split()
	return &models.ListingModel{
		ID:                    entity.ID(),
		SID:                   entity.SID(),
		ListingNumber:         entity.ListingNumber(),
		Title:                 entity.Title(),
		Price:                 entity.Price(),
		ListingType:           string(entity.ListingType()),
		Status:                entity.Status().String(),
		CreatorID:             entity.CreatorID(),
		AgentID:               entity.AgentID(),
		PromoterID:            entity.PromoterID(),
		AgentCommissionPct:    split.AgentPct(),
		PromoterCommissionPct: split.PromoterPct(),
		CompanyCommissionPct:  split.CompanyPct(),
		BonusIssued:           entity.BonusIssued(),
		Version:               entity.Version(),
		ClosedAt:              entity.ClosedAt(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}
