package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/dto/request"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	quoteHandler *api.QuoteHandler,
	holdHandler *api.HoldHandler,
	checkoutHandler *api.CheckoutHandler,
	capacityHandler *api.CapacityHandler,
) error {
	if err := request.RegisterValidations(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, quoteHandler, holdHandler, checkoutHandler, capacityHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	quoteHandler *api.QuoteHandler,
	holdHandler *api.HoldHandler,
	checkoutHandler *api.CheckoutHandler,
	capacityHandler *api.CapacityHandler,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/quotes", Handler: quoteHandler.CreateQuote},
			{Method: http.MethodGet, Path: "/availability", Handler: capacityHandler.GetAvailability},
		})

		holds := apiGroup.Group("/holds")
		{
			addRoutes(holds, []route{
				{Method: http.MethodPost, Path: "", Handler: holdHandler.CreateHold},
				{Method: http.MethodGet, Path: "/:id", Handler: holdHandler.GetHold},
				{Method: http.MethodPatch, Path: "/:id", Handler: holdHandler.UpdateHold},
				{Method: http.MethodDelete, Path: "/:id", Handler: holdHandler.ReleaseHold},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Checkout},
				{Method: http.MethodPost, Path: "/cancel", Handler: checkoutHandler.CancelBooking},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/capacity", Handler: capacityHandler.CreatePool},
				{Method: http.MethodPatch, Path: "/capacity", Handler: capacityHandler.AdjustTotal},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
