package handlers

import (
	"context"

	inquiryDto "github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	inquiryUsecases "github.com/orris-inc/estatehub/internal/application/inquiry/usecases"
	listingDto "github.com/orris-inc/estatehub/internal/application/listing/dto"
	listingUsecases "github.com/orris-inc/estatehub/internal/application/listing/usecases"
	notificationDto "github.com/orris-inc/estatehub/internal/application/notification/dto"
	notificationUsecases "github.com/orris-inc/estatehub/internal/application/notification/usecases"
	settingDto "github.com/orris-inc/estatehub/internal/application/setting/dto"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

// Use case interfaces consumed by the handlers; the concrete use cases satisfy them.

type listingCreator interface {
	Execute(ctx context.Context, cmd listingUsecases.CreateListingCommand) (*listingDto.ListingResponse, error)
}

type listingGetter interface {
	Execute(ctx context.Context, sid string) (*listingDto.ListingResponse, error)
}

type listingTransitioner interface {
	Execute(ctx context.Context, cmd listingUsecases.TransitionStatusCommand) (*listingDto.TransitionResponse, error)
}

type bonusLister interface {
	Execute(ctx context.Context, referrerID uint, p utils.Pagination) (*utils.ListResponse, error)
}

type inquiryCreator interface {
	Execute(ctx context.Context, cmd inquiryUsecases.CreateInquiryCommand) (*inquiryDto.InquiryResponse, error)
}

// inquiryCommand covers the single-inquiry actions addressed by SID.
type inquiryCommand interface {
	Execute(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error)
}

type inquirySLAReader interface {
	Execute(ctx context.Context, sid string) (*inquiryDto.SLAResponse, error)
}

type complianceReporter interface {
	Execute(ctx context.Context, agentID uint) ([]inquiryDto.AgentComplianceResponse, error)
}

type settingsReader interface {
	Execute(ctx context.Context) ([]settingDto.SettingResponse, error)
}

type settingsUpdater interface {
	Execute(ctx context.Context, req settingDto.UpdateSettingsRequest, updatedBy uint) ([]settingDto.SettingResponse, error)
}

type notificationLister interface {
	Execute(ctx context.Context, query notificationUsecases.ListNotificationsQuery) (*utils.ListResponse, error)
}

type unreadCounter interface {
	Execute(ctx context.Context, userID uint) (*notificationDto.UnreadCountResponse, error)
}

type notificationReader interface {
	Execute(ctx context.Context, id, userID uint) error
}

type allNotificationsReader interface {
	Execute(ctx context.Context, userID uint) (*notificationDto.MarkAllAsReadResponse, error)
}
