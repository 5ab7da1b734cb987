package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printops-api/internal/application/auth"
	"github.com/jhoicas/printops-api/internal/application/dashboard"
	"github.com/jhoicas/printops-api/internal/application/usecase"
	"github.com/jhoicas/printops-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	DashboardUC      *dashboard.UseCase
	ResumenPDF       ResumenPDFGenerator
	ClienteUC        *usecase.ClienteUseCase
	SKUUC            *usecase.SKUUseCase
	ImpresoraUC      *usecase.ImpresoraUseCase
	CompatibilidadUC *usecase.CompatibilidadUseCase
	RequerimientoUC  *usecase.RequerimientoUseCase
	JWTSecret        string
}

// Roles con acceso por pantalla. El master accede a todo; el resto de roles
// mapea a las pantallas que opera.
var (
	rolesDashboard = []string{
		entity.RolMaster, entity.RolEspecialista,
		entity.RolEDistribucion, entity.RolESuministros, entity.RolADistribucion,
	}
	rolesClientes         = []string{entity.RolMaster, entity.RolESuministros}
	rolesSKUs             = []string{entity.RolMaster, entity.RolEDistribucion}
	rolesImpresoras       = []string{entity.RolMaster, entity.RolAdm}
	rolesCompatibilidades = []string{entity.RolMaster, entity.RolEspecialista}
	rolesRequerimientos   = []string{
		entity.RolMaster, entity.RolEspecialista, entity.RolOperador,
		entity.RolEDistribucion, entity.RolESuministros, entity.RolADistribucion, entity.RolAdm,
	}
)

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard (protegido)
	dash := protected.Group("/dashboard", RequireRole(rolesDashboard...))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.ResumenPDF)
	dash.Get("/resumen", dashboardHandler.GetResumen)
	dash.Get("/reporte.pdf", dashboardHandler.GetReportePDF)

	// Clientes (protegido)
	clientes := protected.Group("/clientes", RequireRole(rolesClientes...))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// SKUs (protegido)
	skus := protected.Group("/skus", RequireRole(rolesSKUs...))
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Get("/colores", skuHandler.ListColores) // antes de /:cod para no capturarla
	skus.Get("/", skuHandler.List)
	skus.Post("/", skuHandler.Create)
	skus.Get("/:cod", skuHandler.GetByCod)
	skus.Put("/:cod", skuHandler.Update)
	skus.Delete("/:cod", skuHandler.Delete)

	// Impresoras (protegido)
	impresoras := protected.Group("/impresoras", RequireRole(rolesImpresoras...))
	impresoraHandler := NewImpresoraHandler(deps.ImpresoraUC)
	impresoras.Get("/", impresoraHandler.List)
	impresoras.Post("/", impresoraHandler.Create)
	impresoras.Get("/:serie", impresoraHandler.GetBySerie)
	impresoras.Put("/:serie", impresoraHandler.Update)
	impresoras.Delete("/:serie", impresoraHandler.Delete)

	// Compatibilidades modelo ↔ SKU (protegido)
	compat := protected.Group("/compatibilidades", RequireRole(rolesCompatibilidades...))
	compatHandler := NewCompatibilidadHandler(deps.CompatibilidadUC)
	compat.Post("/", compatHandler.Create)
	compat.Get("/:idModelo", compatHandler.ListByModelo)
	compat.Delete("/:idModelo/:codSKU", compatHandler.Delete)

	// Requerimientos (protegido, todos los roles)
	reqs := protected.Group("/requerimientos", RequireRole(rolesRequerimientos...))
	reqHandler := NewRequerimientoHandler(deps.RequerimientoUC)
	reqs.Get("/historico", reqHandler.ListHistorico) // antes de /:id
	reqs.Get("/", reqHandler.ListActivos)
	reqs.Post("/", reqHandler.Create)
	reqs.Put("/:id", reqHandler.Update)
	reqs.Post("/:id/archivar", reqHandler.Archivar)
}
