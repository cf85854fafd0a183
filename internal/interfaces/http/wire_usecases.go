package http

import (
	"context"
	"fmt"

	inquiryUsecases "github.com/orris-inc/estatehub/internal/application/inquiry/usecases"
	listingUsecases "github.com/orris-inc/estatehub/internal/application/listing/usecases"
	notificationUsecases "github.com/orris-inc/estatehub/internal/application/notification/usecases"
	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/infrastructure/cache"
	"github.com/orris-inc/estatehub/internal/infrastructure/scheduler"
	"github.com/orris-inc/estatehub/internal/infrastructure/sequence"
	shareddb "github.com/orris-inc/estatehub/internal/shared/db"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Listing
	createListingUC     *listingUsecases.CreateListingUseCase
	getListingUC        *listingUsecases.GetListingUseCase
	transitionListingUC *listingUsecases.TransitionListingStatusUseCase
	listBonusesUC       *listingUsecases.ListRecruiterBonusesUseCase

	// Inquiry
	createInquiryUC   *inquiryUsecases.CreateInquiryUseCase
	recordResponseUC  *inquiryUsecases.RecordFirstResponseUseCase
	archiveInquiryUC  *inquiryUsecases.ArchiveInquiryUseCase
	evaluateInquiryUC *inquiryUsecases.EvaluateInquiryUseCase
	getInquirySLAUC   *inquiryUsecases.GetInquirySLAUseCase
	sweepInquiriesUC  *inquiryUsecases.SweepInquiriesUseCase
	agentComplianceUC *inquiryUsecases.AgentComplianceUseCase

	// Settings
	getSettingsUC    *settingUsecases.GetSettingsUseCase
	updateSettingsUC *settingUsecases.UpdateSettingsUseCase

	// Notification
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	unreadCountUC       *notificationUsecases.GetUnreadCountUseCase
	markAsReadUC        *notificationUsecases.MarkNotificationAsReadUseCase
	markAllAsReadUC     *notificationUsecases.MarkAllAsReadUseCase
}

// initUseCases builds every use case plus the sweep scheduler.
func (c *Container) initUseCases(ctx context.Context) error {
	cfg := c.cfg
	log := c.log
	repos := c.repos

	qualifying, err := listingUsecases.ParseQualifyingStatuses(cfg.Engine.Bonus.QualifyingStatuses)
	if err != nil {
		return fmt.Errorf("invalid engine.bonus.qualifying_statuses: %w", err)
	}

	allocator, err := c.newListingAllocator(ctx)
	if err != nil {
		return err
	}
	txManager := shareddb.NewTransactionManager(c.db)

	var locker inquiryUsecases.InquiryLocker
	if c.redis != nil {
		locker = cache.NewRedisInquiryLock(c.redis, cfg.Engine.SLA.LockTTL, log.Named("inquiry-lock"))
	} else {
		locker = cache.NewLocalInquiryLock()
		log.Infow("Redis disabled, inquiry locks are process-local")
	}

	ucs := &allUseCases{}

	ucs.createListingUC = listingUsecases.NewCreateListingUseCase(repos.listingRepo, allocator, txManager, log.Named("create-listing"))
	ucs.getListingUC = listingUsecases.NewGetListingUseCase(repos.listingRepo, log.Named("get-listing"))
	ucs.transitionListingUC = listingUsecases.NewTransitionListingStatusUseCase(
		repos.listingRepo, repos.accountRepo, repos.bonusRepo, txManager,
		c.settingsStore, c.dispatcher, qualifying, log.Named("transition-listing"),
	)
	ucs.listBonusesUC = listingUsecases.NewListRecruiterBonusesUseCase(repos.bonusRepo, log.Named("list-bonuses"))

	ucs.createInquiryUC = inquiryUsecases.NewCreateInquiryUseCase(repos.inquiryRepo, repos.listingRepo, log.Named("create-inquiry"))
	ucs.recordResponseUC = inquiryUsecases.NewRecordFirstResponseUseCase(repos.inquiryRepo, log.Named("record-response"))
	ucs.archiveInquiryUC = inquiryUsecases.NewArchiveInquiryUseCase(repos.inquiryRepo, log.Named("archive-inquiry"))
	ucs.evaluateInquiryUC = inquiryUsecases.NewEvaluateInquiryUseCase(repos.inquiryRepo, locker, c.dispatcher, log.Named("sla-evaluator"))
	ucs.getInquirySLAUC = inquiryUsecases.NewGetInquirySLAUseCase(repos.inquiryRepo, ucs.evaluateInquiryUC, c.settingsStore, log.Named("inquiry-sla"))
	ucs.sweepInquiriesUC = inquiryUsecases.NewSweepInquiriesUseCase(
		repos.inquiryRepo, ucs.evaluateInquiryUC, c.settingsStore,
		cfg.Engine.SLA.SweepWorkers, cfg.Engine.SLA.BatchSize, log.Named("sla-sweep"),
	)
	ucs.agentComplianceUC = inquiryUsecases.NewAgentComplianceUseCase(repos.inquiryRepo, c.settingsStore, log.Named("agent-compliance"))

	ucs.getSettingsUC = settingUsecases.NewGetSettingsUseCase(c.settingsStore, log.Named("get-settings"))
	ucs.updateSettingsUC = settingUsecases.NewUpdateSettingsUseCase(c.settingsStore, log.Named("update-settings"))

	ucs.listNotificationsUC = notificationUsecases.NewListNotificationsUseCase(repos.notificationRepo, log.Named("list-notifications"))
	ucs.unreadCountUC = notificationUsecases.NewGetUnreadCountUseCase(repos.notificationRepo, log.Named("unread-count"))
	ucs.markAsReadUC = notificationUsecases.NewMarkNotificationAsReadUseCase(repos.notificationRepo, log.Named("mark-read"))
	ucs.markAllAsReadUC = notificationUsecases.NewMarkAllAsReadUseCase(repos.notificationRepo, log.Named("mark-all-read"))

	c.ucs = ucs

	schedulerManager, err := scheduler.NewSchedulerManager(log.Named("scheduler"))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	c.schedulerManager = schedulerManager

	return nil
}

// newListingAllocator returns the shared database sequence, or an in-process
// counter seeded from it when engine.listing_allocator is "memory".
func (c *Container) newListingAllocator(ctx context.Context) (listing.NumberAllocator, error) {
	cfg := c.cfg.Engine
	gormAllocator := sequence.NewGormAllocator(c.db, sequence.ListingNumberSequence, cfg.ListingNumberFloor, c.log.Named("allocator"))
	if cfg.ListingAllocator != "memory" {
		return gormAllocator, nil
	}

	last, err := gormAllocator.LastIssued(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed in-memory listing allocator: %w", err)
	}
	c.log.Warnw("listing numbers are allocated in process, run a single instance",
		"floor", cfg.ListingNumberFloor,
		"last_issued", last,
	)
	return sequence.NewAtomicAllocator(cfg.ListingNumberFloor, last), nil
}
