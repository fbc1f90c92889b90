package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/svce/hostel-management/internal/handler"    // handlers implement the endpoint logic
	"github.com/svce/hostel-management/internal/middleware" // middleware supplies authentication and rate limiting
)

// RegisterRoutes registers the routes that live outside the /api prefix:
// the health check used by monitoring and the HTML endpoint index served
// at the root.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/", handler.Home)
}

// RegisterAPI wires the admin API under /api.  Login is the only endpoint
// reachable without passing the Authenticator; every other route runs it
// first.  The rate limiter wraps the whole group and is a pass-through
// unless explicitly enabled.
func RegisterAPI(
	e *echo.Echo,
	auth *handler.AuthHandler,
	rooms *handler.RoomHandler,
	members *handler.MemberHandler,
	payments *handler.PaymentHandler,
	reports *handler.ReportHandler,
	authn middleware.Authenticator,
	limiter echo.MiddlewareFunc,
) {
	api := e.Group("/api")
	api.Use(limiter)

	api.POST("/login", auth.Login)

	// Everything below the login endpoint requires an identity.  With the
	// default trust-all Authenticator this check always succeeds; see the
	// middleware package for the bearer alternative.
	g := api.Group("")
	g.Use(middleware.Authenticate(authn))

	g.GET("/rooms", rooms.List)
	g.POST("/rooms", rooms.Create)

	g.GET("/members", members.List)
	g.POST("/members", members.Create)

	g.GET("/payments", payments.List)
	g.POST("/payments", payments.Create)

	g.GET("/reports/occupancy", reports.Occupancy)
	g.GET("/reports/payments", reports.Payments)
}
