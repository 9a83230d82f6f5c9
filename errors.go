package lantern

import "errors"

var (
	// ErrResourceNotFound is wrapped by loaders when a named bitmap does
	// not exist. Callers degrade (skip the sprite) instead of aborting.
	ErrResourceNotFound = errors.New("lantern: resource not found")

	// ErrBadBitmap reports a bitmap whose pixel count does not match its
	// dimensions.
	ErrBadBitmap = errors.New("lantern: malformed bitmap")

	// ErrNoRoom reports a room number with no registered factory.
	ErrNoRoom = errors.New("lantern: no such room")
)
