package usecases

import (
	"context"

	"github.com/orris-inc/estatehub/internal/application/setting/dto"
	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// GetSettingsUseCase lists effective settings for the admin API.
type GetSettingsUseCase struct {
	store  *SettingsStore
	logger logger.Interface
}

func NewGetSettingsUseCase(store *SettingsStore, logger logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{store: store, logger: logger}
}

func (uc *GetSettingsUseCase) Execute(ctx context.Context) ([]dto.SettingResponse, error) {
	effective, err := uc.store.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list settings", "error", err)
		return nil, errors.NewInternalError("failed to load settings").Wrap(err)
	}

	out := make([]dto.SettingResponse, 0, len(effective))
	for _, e := range effective {
		out = append(out, dto.ToSettingResponse(e.Definition, e.Value))
	}
	return out, nil
}

// GetSetting returns a single key.
func (uc *GetSettingsUseCase) GetSetting(ctx context.Context, key string) (*dto.SettingResponse, error) {
	v, err := uc.store.Get(ctx, key)
	if err != nil {
		return nil, translateSettingError(err)
	}
	def, _ := setting.Lookup(key)
	resp := dto.ToSettingResponse(def, v)
	return &resp, nil
}
