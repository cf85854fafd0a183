package inquiry

import "errors"

var (
	ErrInquiryNotFound        = errors.New("inquiry not found")
	ErrInquiryArchived        = errors.New("inquiry is archived")
	ErrResponseBeforeCreation = errors.New("first response cannot precede inquiry creation")
)
