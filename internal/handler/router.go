package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/handler/api"
	"github.com/d3coo/car-rental-backend/internal/handler/middleware"
	"github.com/d3coo/car-rental-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Car      *api.CarHandler
	Booking  *api.BookingHandler
	Contract *api.ContractHandler
	Pricing  *api.PricingHandler
	Wallet   *api.WalletHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		cars := apiGroup.Group("/cars")
		{
			addRoutes(cars, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Car.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Car.Get},
			})

			carsStaff := cars.Group("")
			carsStaff.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(carsStaff, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Car.Create},
				{Method: http.MethodPatch, Path: "/:id/rates", Handler: h.Car.UpdateRates},
				{Method: http.MethodPost, Path: "/:id/maintenance", Handler: h.Car.SendForMaintenance},
				{Method: http.MethodPost, Path: "/:id/return", Handler: h.Car.ReturnToFleet},
				{Method: http.MethodPost, Path: "/:id/retire", Handler: h.Car.Retire},
			})
		}

		pricing := apiGroup.Group("/pricing")
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/booking", Handler: h.Pricing.QuoteBooking},
				{Method: http.MethodPost, Path: "/extension", Handler: h.Pricing.QuoteExtension},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Booking.Accept, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/deny", Handler: h.Booking.Deny, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		contracts := apiGroup.Group("/contracts")
		contracts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(contracts, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Contract.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Contract.Get},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: h.Contract.Extend},
				{Method: http.MethodPost, Path: "", Handler: h.Contract.Create, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Contract.Complete, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Contract.Cancel, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: h.Wallet.Balance},
				{Method: http.MethodGet, Path: "/history", Handler: h.Wallet.History},
				{Method: http.MethodPost, Path: "/:user_id/credit", Handler: h.Wallet.Credit, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPost, Path: "/:user_id/debit", Handler: h.Wallet.Debit, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
