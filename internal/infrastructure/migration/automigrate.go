package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/infrastructure/persistence/models"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.SystemSettingModel{},
		&models.AccountModel{},
		&models.ListingSequenceModel{},
		&models.ListingModel{},
		&models.InquiryModel{},
		&models.NotificationModel{},
		&models.RecruiterBonusRecordModel{},
	}
}

// GormAutoMigrateStrategy creates and alters tables from the GORM models
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm auto migrate", "models_count", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// Status reports which model tables exist
func (s *GormAutoMigrateStrategy) Status(db *gorm.DB) (string, error) {
	migrator := db.Migrator()
	missing := 0
	for _, m := range AutoMigrateModels() {
		if !migrator.HasTable(m) {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Sprintf("%d of %d tables missing", missing, len(AutoMigrateModels())), nil
	}
	return "all tables present", nil
}
