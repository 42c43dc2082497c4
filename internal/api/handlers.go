package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youruser/helpcard/internal/catalog"
	"github.com/youruser/helpcard/internal/help"
	imagepkg "github.com/youruser/helpcard/internal/image"
)

// Handler serves the help rendering endpoints.
type Handler struct {
	renderer *help.Renderer
	catalog  *catalog.Catalog
	fetch    fetchFunc
	maxBody  int64
	log      *slog.Logger
}

type Options struct {
	Catalog       *catalog.Catalog
	FetchTimeout  time.Duration
	MaxFetchBytes int64
	MaxBodyBytes  int64
	Logger        *slog.Logger
}

func NewHandler(r *help.Renderer, opt Options) *Handler {
	h := &Handler{
		renderer: r,
		catalog:  opt.Catalog,
		maxBody:  opt.MaxBodyBytes,
		log:      opt.Logger,
	}
	if h.log == nil {
		h.log = slog.Default()
	}
	h.fetch = func(ctx context.Context, url string) ([]byte, error) {
		if opt.FetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opt.FetchTimeout)
			defer cancel()
		}
		return imagepkg.Fetch(ctx, url, opt.MaxFetchBytes)
	}
	return h
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// render renders a help list posted as JSON.
func (h *Handler) render(c *gin.Context) {
	if h.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}
	var req helpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		h.log.Debug("bind render request", "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	list, err := req.helpList(c.Request.Context(), h.fetch)
	if err != nil {
		status, label := http.StatusBadGateway, "fetch failed"
		if errors.Is(err, imagepkg.ErrNotImage) {
			status, label = http.StatusUnprocessableEntity, imagepkg.ErrNotImage.Error()
		}
		h.log.Warn("fetch assets", "err", err)
		c.JSON(status, gin.H{"error": label})
		return
	}
	h.writePNG(c, list)
}

func (h *Handler) catalogList(c *gin.Context) {
	entries := h.catalog.Entries()
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "lists": entries})
}

// catalogImage renders a stored list, narrowed by ?q= and ?group=.
func (h *Handler) catalogImage(c *gin.Context) {
	list, ok := h.lookup(c)
	if !ok {
		return
	}
	h.writePNG(c, list)
}

func (h *Handler) catalogText(c *gin.Context) {
	list, ok := h.lookup(c)
	if !ok {
		return
	}
	c.String(http.StatusOK, help.ExportText(list))
}

func (h *Handler) lookup(c *gin.Context) (*help.HelpList, bool) {
	list, ok := h.catalog.Get(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown help list"})
		return nil, false
	}
	opt := catalog.FilterOptions{
		Groups:    c.QueryArray("group"),
		FreeWords: c.Query("q"),
	}
	if len(opt.Groups) > 0 || opt.FreeWords != "" {
		list = catalog.Filter(list, opt)
	}
	return list, true
}

func (h *Handler) writePNG(c *gin.Context, list *help.HelpList) {
	b, err := h.renderer.Render(list)
	if err != nil {
		status, label := http.StatusInternalServerError, imagepkg.ErrEncode.Error()
		if errors.Is(err, imagepkg.ErrDecode) {
			status, label = http.StatusUnprocessableEntity, imagepkg.ErrDecode.Error()
		}
		c.JSON(status, gin.H{"error": label})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
