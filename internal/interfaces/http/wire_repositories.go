package http

import (
	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/domain/notification"
	"github.com/orris-inc/estatehub/internal/domain/referral"
	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/infrastructure/repository"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	accountRepo      user.AccountRepository
	listingRepo      listing.Repository
	inquiryRepo      inquiry.Repository
	bonusRepo        referral.BonusRecordRepository
	notificationRepo notification.NotificationRepository
	settingRepo      setting.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		accountRepo:      repository.NewAccountRepository(db),
		listingRepo:      repository.NewListingRepository(db, log.Named("listing-repo")),
		inquiryRepo:      repository.NewInquiryRepository(db, log.Named("inquiry-repo")),
		bonusRepo:        repository.NewRecruiterBonusRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		settingRepo:      repository.NewSystemSettingRepository(db, log.Named("setting-repo")),
	}
}
