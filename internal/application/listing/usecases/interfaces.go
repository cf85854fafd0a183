package usecases

import (
	"context"

	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
)

// PolicyReader supplies the settings snapshot used by the bonus trigger.
type PolicyReader interface {
	Policy(ctx context.Context) (settingUsecases.Policy, error)
}
