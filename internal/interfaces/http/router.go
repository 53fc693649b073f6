package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/business-dashboard/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Auth      *AuthHandler
	Reports   *ReportHandlers
	Admin     *AdminHandler
	JWTSecret string
}

// Router registra las rutas de la API. Los reportes requieren sesión; las
// operaciones de datos requieren además rol Admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Get("/roles", deps.Auth.Roles)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/dashboard/overview", deps.Reports.Overview)
	protected.Get("/inventory/report", deps.Reports.InventoryReport)
	protected.Get("/sales/report", deps.Reports.SalesReport)
	protected.Get("/purchases/report", deps.Reports.PurchaseReport)
	protected.Get("/performance/report", deps.Reports.PerformanceReport)
	protected.Get("/reports/business", deps.Reports.BusinessReport)

	// Administración de datos (solo Admin)
	admin := protected.Group("/admin", RequireRole(auth.RoleAdmin))
	admin.Post("/data/bootstrap", deps.Admin.Bootstrap)
	admin.Post("/data/performance/regenerate", deps.Admin.RegeneratePerformance)
}
