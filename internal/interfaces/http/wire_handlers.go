package http

import (
	"context"

	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	listingHandler      *handlers.ListingHandler
	inquiryHandler      *handlers.InquiryHandler
	settingHandler      *handlers.SettingHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	checks := map[string]handlers.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := c.db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if c.redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return c.redis.Ping(ctx).Err()
		}
	}

	c.hdlrs = &allHandlers{
		listingHandler: handlers.NewListingHandler(
			ucs.createListingUC, ucs.getListingUC, ucs.transitionListingUC, ucs.listBonusesUC,
			log.Named("listing-handler"),
		),
		inquiryHandler: handlers.NewInquiryHandler(
			ucs.createInquiryUC, ucs.recordResponseUC, ucs.archiveInquiryUC,
			ucs.getInquirySLAUC, ucs.agentComplianceUC,
			log.Named("inquiry-handler"),
		),
		settingHandler: handlers.NewSettingHandler(ucs.getSettingsUC, ucs.updateSettingsUC, log.Named("setting-handler")),
		notificationHandler: handlers.NewNotificationHandler(
			ucs.listNotificationsUC, ucs.unreadCountUC, ucs.markAsReadUC, ucs.markAllAsReadUC,
			log.Named("notification-handler"),
		),
		healthHandler: handlers.NewHealthHandler(checks, log.Named("health")),
	}
	if c.schedulerManager != nil {
		c.hdlrs.healthHandler.SetSweepReporter(c.schedulerManager)
	}
}
