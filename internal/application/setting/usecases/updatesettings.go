package usecases

import (
	"context"
	stderrors "errors"

	"github.com/orris-inc/estatehub/internal/application/setting/dto"
	"github.com/orris-inc/estatehub/internal/domain/setting"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// UpdateSettingsUseCase applies an admin batch update. Nothing is written unless
// every value validates.
type UpdateSettingsUseCase struct {
	store  *SettingsStore
	logger logger.Interface
}

func NewUpdateSettingsUseCase(store *SettingsStore, logger logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{store: store, logger: logger}
}

func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, req dto.UpdateSettingsRequest, updatedBy uint) ([]dto.SettingResponse, error) {
	if len(req.Settings) == 0 {
		return nil, errors.NewValidationError("at least one setting is required")
	}

	values, err := uc.store.SetMany(ctx, req.Settings, updatedBy)
	if err != nil {
		uc.logger.Warnw("settings update rejected", "updated_by", updatedBy, "error", err)
		return nil, translateSettingError(err)
	}

	out := make([]dto.SettingResponse, 0, len(values))
	for _, v := range values {
		def, _ := setting.Lookup(v.Key())
		out = append(out, dto.ToSettingResponse(def, v))
	}
	return out, nil
}

func translateSettingError(err error) error {
	var invalid *setting.InvalidValueError
	switch {
	case stderrors.As(err, &invalid):
		return errors.NewValidationError("invalid setting value", invalid.Error()).
			WithReason("invalid_setting_value").Wrap(err)
	case stderrors.Is(err, setting.ErrUnknownSettingKey):
		return errors.NewValidationError("unknown setting key", err.Error()).
			WithReason("unknown_setting_key").Wrap(err)
	default:
		return errors.NewInternalError("failed to update settings").Wrap(err)
	}
}
