package imagepkg

import "errors"

var (
	// ErrDecode reports bytes that are not a supported image.
	ErrDecode = errors.New("decode failed")
	// ErrEncode reports a failure to allocate or encode a raster.
	ErrEncode = errors.New("encode failed")
	// ErrNotImage is returned by Fetch for payloads that are not images.
	ErrNotImage = errors.New("not an image")
)
