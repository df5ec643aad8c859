// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"voyago/internal/bookings"
	"voyago/internal/cancellation"
	"voyago/internal/flightstatus"
	"voyago/internal/notifications"
	"voyago/internal/pricing"
	"voyago/internal/reviews"
	"voyago/internal/rooms"
	"voyago/internal/seats"
	"voyago/internal/shared/config"
	"voyago/internal/shared/database"
	"voyago/internal/users"
	"voyago/pkg/cache"
	"voyago/pkg/clock"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	clk       clock.Clock
	publisher *notifications.BookingEventAdapter

	// Services shared across slices
	userService    users.Service
	bookingService bookings.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher *notifications.BookingEventAdapter) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		clk:       clock.New(),
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Client-facing routes mount at the engine root; the SDK builds paths
	// from the base URL without a version prefix
	api := engine.Group("")
	{
		r.setupUserRoutes(api)
		r.setupBookingRoutes(api)
		r.setupCancellationRoutes(api)
		r.setupPricingRoutes(api)
		r.setupSeatRoutes(api)
		r.setupRoomRoutes(api)
		r.setupReviewRoutes(api)
		r.setupFlightStatusRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "voyago-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "voyago-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "operational",
			"timestamp": time.Now(),
		})
	})
}

// setupUserRoutes configures user profile routes
func (r *Router) setupUserRoutes(rg *gin.RouterGroup) {
	userRepo := users.NewRepository(r.db.GetPostgreSQL())
	r.userService = users.NewService(userRepo, r.cache)
	userController := users.NewController(r.userService)

	users.SetupUserRoutes(rg, userController)
}

// setupBookingRoutes configures booking routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	r.bookingService = bookings.NewService(bookingRepo, r.publisher)
	bookingController := bookings.NewController(r.bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupCancellationRoutes configures the cancellation flow routes
func (r *Router) setupCancellationRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.db.GetPostgreSQL())
	cancellationService := cancellation.NewService(bookingRepo, r.publisher, r.clk)
	cancellationController := cancellation.NewController(cancellationService)

	cancellation.SetupCancellationRoutes(rg, cancellationController)
}

// setupPricingRoutes configures price freeze, history, and insight routes
func (r *Router) setupPricingRoutes(rg *gin.RouterGroup) {
	pricingRepo := pricing.NewRepository(r.db.GetPostgreSQL())
	pricingService := pricing.NewService(pricingRepo, r.db.GetRedisClient(), r.cache, r.clk)
	pricingController := pricing.NewController(pricingService)

	pricing.SetupPricingRoutes(rg, pricingController)
}

// setupSeatRoutes configures seat selection routes
func (r *Router) setupSeatRoutes(rg *gin.RouterGroup) {
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatLock := seats.NewBookingLock(r.db.GetRedisClient())
	seatService := seats.NewService(seatRepo, r.cache, seatLock)
	seatController := seats.NewController(seatService)

	seats.SetupSeatRoutes(rg, seatController)
}

// setupRoomRoutes configures room selection routes
func (r *Router) setupRoomRoutes(rg *gin.RouterGroup) {
	roomRepo := rooms.NewRepository(r.db.GetPostgreSQL())
	roomLock := rooms.NewBookingLock(r.db.GetRedisClient())
	roomService := rooms.NewService(roomRepo, r.cache, roomLock)
	roomController := rooms.NewController(roomService)

	rooms.SetupRoomRoutes(rg, roomController)
}

// setupReviewRoutes configures review routes
func (r *Router) setupReviewRoutes(rg *gin.RouterGroup) {
	reviewRepo := reviews.NewRepository(r.db.GetPostgreSQL())
	reviewService := reviews.NewService(reviewRepo, r.bookingService, r.userService, r.cache)
	reviewController := reviews.NewController(reviewService)

	reviews.SetupReviewRoutes(rg, reviewController)
}

// setupFlightStatusRoutes configures flight status routes
func (r *Router) setupFlightStatusRoutes(rg *gin.RouterGroup) {
	statusRepo := flightstatus.NewRepository(r.db.GetPostgreSQL())
	statusService := flightstatus.NewService(statusRepo, r.cache, r.clk)
	statusController := flightstatus.NewController(statusService)

	flightstatus.SetupFlightStatusRoutes(rg, statusController)
}
