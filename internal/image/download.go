package imagepkg

import (
	"context"

	"github.com/h2non/filetype"
	"github.com/youruser/helpcard/internal/util"
)

// Fetch downloads an icon or background image of at most limit bytes. The
// payload must sniff as a raster image or look like an SVG document; it is
// not decoded here.
func Fetch(ctx context.Context, url string, limit int64) ([]byte, error) {
	body, err := util.GetBytes(ctx, url, limit)
	if err != nil {
		return nil, err
	}
	if !filetype.IsImage(body) && !looksLikeSVG(body) {
		return nil, ErrNotImage
	}
	return body, nil
}
