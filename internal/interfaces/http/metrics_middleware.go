package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printops-api/pkg/metrics"
)

// MetricsMiddleware cuenta las peticiones por método, ruta y estado. Usa la
// ruta registrada (/api/clientes/:id), no el path crudo, para acotar la
// cardinalidad de la serie.
func MetricsMiddleware(met *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		met.HTTPRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		return err
	}
}
