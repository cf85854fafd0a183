package usecases

import (
	stderrors "errors"

	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/domain/listing"
	"github.com/orris-inc/estatehub/internal/shared/errors"
)

func translateInquiryError(err error) error {
	switch {
	case errors.IsAppError(err):
		return err
	case stderrors.Is(err, inquiry.ErrInquiryNotFound):
		return errors.NewNotFoundError("inquiry not found").Wrap(err)
	case stderrors.Is(err, listing.ErrListingNotFound):
		return errors.NewNotFoundError("listing not found").Wrap(err)
	case stderrors.Is(err, inquiry.ErrInquiryArchived):
		return errors.NewConflictError("inquiry is archived").WithReason("inquiry_archived").Wrap(err)
	case stderrors.Is(err, inquiry.ErrResponseBeforeCreation):
		return errors.NewValidationError(err.Error()).Wrap(err)
	default:
		return errors.NewInternalError("inquiry operation failed").Wrap(err)
	}
}
