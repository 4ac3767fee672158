package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogLevel       = errors.New("invalid logging level")
	ErrInvalidLogFormat      = errors.New("invalid logging format")
	ErrInvalidLongPress      = errors.New("ui.long_press must be greater than zero")
	ErrInvalidDebounce       = errors.New("assets.debounce must not be negative")
	ErrAssetPatternsRequired = errors.New("assets.patterns requires at least one pattern")
	ErrInvalidAssetPattern   = errors.New("invalid asset pattern")

	ErrEmptyCollection = errors.New("collection must contain at least one artwork")
	ErrInvalidArtwork  = errors.New("artwork requires an image ref and a title")

	ErrAssetNotFound      = errors.New("asset not found")
	ErrAssetDirNotExist   = errors.New("asset directory does not exist")
	ErrFailedToReadAsset  = errors.New("failed to read asset")
	ErrFailedToWatchAsset = errors.New("failed to watch asset directory")

	ErrClipboardUnavailable = errors.New("clipboard is not available")

	ErrFileAlreadyExists = errors.New("file already exists, use --force to overwrite")
	ErrUnknownCommand    = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
