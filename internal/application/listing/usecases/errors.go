package usecases

import (
	stderrors "errors"

	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/shared/errors"
)

// Machine-readable reasons attached to listing AppErrors.
const (
	ReasonInvalidCommissionSplit = "invalid_commission_split"
	ReasonInvalidCommissionRange = "invalid_commission_range"
	ReasonAllocatorExhausted     = "allocator_exhausted"
	ReasonInvalidTransition      = "invalid_status_transition"
	ReasonConcurrentModification = "concurrent_modification"
)

func translateListingError(err error) error {
	var splitErr *listing.InvalidCommissionSplitError
	var rangeErr *listing.InvalidCommissionRangeError
	switch {
	case errors.IsAppError(err):
		return err
	case stderrors.As(err, &splitErr):
		return errors.NewValidationError("commission percentages must sum to 100", splitErr.Error()).
			WithReason(ReasonInvalidCommissionSplit).Wrap(err)
	case stderrors.As(err, &rangeErr):
		return errors.NewValidationError("commission percentage out of range", rangeErr.Error()).
			WithReason(ReasonInvalidCommissionRange).Wrap(err)
	case stderrors.Is(err, listing.ErrAllocatorExhausted):
		return errors.NewInternalError("listing numbers exhausted").
			WithReason(ReasonAllocatorExhausted).Wrap(err)
	case stderrors.Is(err, listing.ErrListingNotFound):
		return errors.NewNotFoundError("listing not found").Wrap(err)
	case stderrors.Is(err, listing.ErrInvalidStatusTransition):
		return errors.NewConflictError("status transition not allowed", err.Error()).
			WithReason(ReasonInvalidTransition).Wrap(err)
	case stderrors.Is(err, listing.ErrConcurrentModification):
		return errors.NewConflictError("listing was modified concurrently, retry the request").
			WithReason(ReasonConcurrentModification).Wrap(err)
	default:
		return errors.NewInternalError("listing operation failed").Wrap(err)
	}
}
