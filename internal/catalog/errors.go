package catalog

import (
	"errors"

	"github.com/mediacat/mediacat/internal/media"
)

var (
	// ErrInvalidItem indicates the item failed validation and was not
	// persisted.
	ErrInvalidItem = errors.New("invalid item")

	// ErrUnknownAction indicates a status action with no transition.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownKind indicates a kind label with no registered factory.
	ErrUnknownKind = media.ErrUnknownKind
)
