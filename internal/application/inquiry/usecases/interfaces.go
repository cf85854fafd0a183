package usecases

import (
	"context"

	settingUsecases "github.com/orris-inc/estatehub/internal/application/setting/usecases"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/shared/errors"
)

// InquiryCommand addresses one inquiry on behalf of a caller. Only the assigned
// agent or an admin may act on it.
type InquiryCommand struct {
	InquirySID string
	Caller     user.Actor
}

func authorizeInquiryCaller(i *inquiry.Inquiry, caller user.Actor) error {
	if caller.IsAdmin() || i.IsAssignedTo(caller.ID) {
		return nil
	}
	return errors.NewForbiddenError("only the assigned agent or an admin can act on this inquiry")
}

// InquiryLocker hands out a per-inquiry try-lock. ok is false when another
// evaluator holds the lock.
type InquiryLocker interface {
	TryAcquire(ctx context.Context, inquiryID uint) (release func(), ok bool, err error)
}

type PolicyReader interface {
	Policy(ctx context.Context) (settingUsecases.Policy, error)
}
