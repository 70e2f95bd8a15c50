package assets

import "errors"

// Sentinel errors for asset loading.
var (
	ErrThemeNotFound    = errors.New("certificate theme not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
)
