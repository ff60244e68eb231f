package render

import "errors"

// Sentinel errors for render operations.
var (
	ErrFontRegister    = errors.New("failed to register font")
	ErrBuilderFinished = errors.New("document already written")
	ErrOutput          = errors.New("failed to serialize PDF")
	ErrUnknownKind     = errors.New("unknown element kind")
	ErrInvalidStyle    = errors.New("invalid style")
	ErrInvalidPage     = errors.New("invalid page layout")
)
