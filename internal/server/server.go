package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gridlegend/gridlegend/internal/legend"
	"github.com/gridlegend/gridlegend/internal/types"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// Handler serves the legend tables of one registry as JSON.
type Handler struct {
	reg  *legend.Registry
	log  log.FieldLogger
	etag string
}

func NewHandler(reg *legend.Registry, logger log.FieldLogger) *Handler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Handler{
		reg:  reg,
		log:  logger,
		etag: `"` + reg.Fingerprint() + `"`,
	}
}

// NewApp builds a fiber app with the legend routes registered.
func NewApp(reg *legend.Registry, logger log.FieldLogger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "gridlegend",
	})
	NewHandler(reg, logger).RegisterRoutes(app)
	return app
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.handleHealth)

	api := app.Group("/api", h.logRequest, h.conditional)
	api.Get("/legend", h.handleLegend)
	api.Get("/categories", h.handleCategories)
	api.Get("/colors", h.handleColors)
	api.Get("/colors/:category", h.handleColor)
	api.Get("/labels/:locale", h.handleLabels)
	api.Get("/labels/:locale/:key", h.handleLabel)
	api.Get("/regions", h.handleRegions)
}

// Serve listens on addr until ctx is cancelled, then shuts the app down.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(addr)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return err
		}
		return <-errCh
	}
}

func (h *Handler) logRequest(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.log.WithFields(log.Fields{
		"method":   c.Method(),
		"path":     c.Path(),
		"status":   c.Response().StatusCode(),
		"duration": time.Since(start).String(),
	}).Debug("request")
	return err
}

// conditional answers 304 when the client already holds the current tables.
// The registry is immutable, so one ETag covers every route.
func (h *Handler) conditional(c *fiber.Ctx) error {
	c.Set(fiber.HeaderETag, h.etag)
	if c.Get(fiber.HeaderIfNoneMatch) == h.etag {
		return c.SendStatus(fiber.StatusNotModified)
	}
	return c.Next()
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "fingerprint": h.reg.Fingerprint()})
}

func (h *Handler) handleLegend(c *fiber.Ctx) error {
	return c.JSON(h.reg.Snapshot())
}

func (h *Handler) handleCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"renewables":     h.reg.RenewableCategories(),
		"non_renewables": h.reg.NonRenewableCategories(),
		"misc":           h.reg.MiscCategories(),
	})
}

func (h *Handler) handleColors(c *fiber.Ctx) error {
	return c.JSON(h.reg.Colors())
}

func (h *Handler) handleColor(c *fiber.Ctx) error {
	cat := types.Category(c.Params("category"))
	col, err := h.reg.ColorFor(cat)
	if err != nil {
		return h.notFound(c, err)
	}
	return c.JSON(fiber.Map{"category": cat, "color": col})
}

func (h *Handler) handleLabels(c *fiber.Ctx) error {
	table, err := h.reg.Labels(types.Locale(c.Params("locale")))
	if err != nil {
		return h.notFound(c, err)
	}
	return c.JSON(table)
}

func (h *Handler) handleLabel(c *fiber.Ctx) error {
	loc := types.Locale(c.Params("locale"))
	key := c.Params("key")
	label, err := h.reg.LabelFor(loc, key)
	if err != nil {
		return h.notFound(c, err)
	}
	return c.JSON(fiber.Map{"locale": loc, "key": key, "label": label})
}

func (h *Handler) handleRegions(c *fiber.Ctx) error {
	return c.JSON(h.reg.Regions())
}

func (h *Handler) notFound(c *fiber.Ctx, err error) error {
	kind := "unknown"
	switch {
	case errors.Is(err, legend.ErrUnknownCategory):
		kind = "unknown_category"
	case errors.Is(err, legend.ErrUnknownLocale):
		kind = "unknown_locale"
	case errors.Is(err, legend.ErrUnknownKey):
		kind = "unknown_key"
	}
	h.log.WithFields(log.Fields{"path": c.Path(), "kind": kind}).Info("legend lookup miss")
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error(), "kind": kind})
}
