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

type mockListingCreator struct {
	executeFn func(ctx context.Context, cmd listingUsecases.CreateListingCommand) (*listingDto.ListingResponse, error)
}

func (m *mockListingCreator) Execute(ctx context.Context, cmd listingUsecases.CreateListingCommand) (*listingDto.ListingResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &listingDto.ListingResponse{}, nil
}

type mockListingGetter struct {
	executeFn func(ctx context.Context, sid string) (*listingDto.ListingResponse, error)
}

func (m *mockListingGetter) Execute(ctx context.Context, sid string) (*listingDto.ListingResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, sid)
	}
	return &listingDto.ListingResponse{SID: sid}, nil
}

type mockListingTransitioner struct {
	executeFn func(ctx context.Context, cmd listingUsecases.TransitionStatusCommand) (*listingDto.TransitionResponse, error)
}

func (m *mockListingTransitioner) Execute(ctx context.Context, cmd listingUsecases.TransitionStatusCommand) (*listingDto.TransitionResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &listingDto.TransitionResponse{Changed: true}, nil
}

type mockBonusLister struct {
	executeFn func(ctx context.Context, referrerID uint, p utils.Pagination) (*utils.ListResponse, error)
}

func (m *mockBonusLister) Execute(ctx context.Context, referrerID uint, p utils.Pagination) (*utils.ListResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, referrerID, p)
	}
	return &utils.ListResponse{}, nil
}

type mockInquiryCreator struct {
	executeFn func(ctx context.Context, cmd inquiryUsecases.CreateInquiryCommand) (*inquiryDto.InquiryResponse, error)
}

func (m *mockInquiryCreator) Execute(ctx context.Context, cmd inquiryUsecases.CreateInquiryCommand) (*inquiryDto.InquiryResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &inquiryDto.InquiryResponse{}, nil
}

type mockInquiryCommand struct {
	executeFn func(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error)
}

func (m *mockInquiryCommand) Execute(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return &inquiryDto.InquiryResponse{SID: cmd.InquirySID}, nil
}

type mockInquirySLAReader struct {
	executeFn func(ctx context.Context, sid string) (*inquiryDto.SLAResponse, error)
}

func (m *mockInquirySLAReader) Execute(ctx context.Context, sid string) (*inquiryDto.SLAResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, sid)
	}
	return &inquiryDto.SLAResponse{InquirySID: sid}, nil
}

type mockComplianceReporter struct {
	executeFn func(ctx context.Context, agentID uint) ([]inquiryDto.AgentComplianceResponse, error)
}

func (m *mockComplianceReporter) Execute(ctx context.Context, agentID uint) ([]inquiryDto.AgentComplianceResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, agentID)
	}
	return nil, nil
}

type mockSettingsReader struct {
	executeFn func(ctx context.Context) ([]settingDto.SettingResponse, error)
}

func (m *mockSettingsReader) Execute(ctx context.Context) ([]settingDto.SettingResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx)
	}
	return nil, nil
}

type mockSettingsUpdater struct {
	executeFn func(ctx context.Context, req settingDto.UpdateSettingsRequest, updatedBy uint) ([]settingDto.SettingResponse, error)
}

func (m *mockSettingsUpdater) Execute(ctx context.Context, req settingDto.UpdateSettingsRequest, updatedBy uint) ([]settingDto.SettingResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, req, updatedBy)
	}
	return nil, nil
}

type mockNotificationLister struct {
	executeFn func(ctx context.Context, query notificationUsecases.ListNotificationsQuery) (*utils.ListResponse, error)
}

func (m *mockNotificationLister) Execute(ctx context.Context, query notificationUsecases.ListNotificationsQuery) (*utils.ListResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return &utils.ListResponse{}, nil
}

type mockUnreadCounter struct {
	executeFn func(ctx context.Context, userID uint) (*notificationDto.UnreadCountResponse, error)
}

func (m *mockUnreadCounter) Execute(ctx context.Context, userID uint) (*notificationDto.UnreadCountResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, userID)
	}
	return &notificationDto.UnreadCountResponse{}, nil
}

type mockNotificationReader struct {
	executeFn func(ctx context.Context, id, userID uint) error
}

func (m *mockNotificationReader) Execute(ctx context.Context, id, userID uint) error {
	if m.executeFn != nil {
		return m.executeFn(ctx, id, userID)
	}
	return nil
}

type mockAllNotificationsReader struct {
	executeFn func(ctx context.Context, userID uint) (*notificationDto.MarkAllAsReadResponse, error)
}

func (m *mockAllNotificationsReader) Execute(ctx context.Context, userID uint) (*notificationDto.MarkAllAsReadResponse, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, userID)
	}
	return &notificationDto.MarkAllAsReadResponse{}, nil
}
