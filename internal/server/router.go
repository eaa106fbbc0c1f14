package server

import (
	"log/slog"

	"github.com/Houeta/employee-service/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the employee API, the excel export, the health check and the
// Prometheus endpoint onto a gin engine.
//
// Parameters:
// - log: A logger for request and error logging.
// - svc: The employee use cases backing /employee/v1.
// - m: Application metrics, may be nil.
// - db: A database pinger for /healthz.
// - gatherer: The registry exposed on /metrics.
func NewRouter(
	log *slog.Logger,
	svc EmployeeService,
	m *metrics.Metrics,
	db DBPinger,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), instrument(m))

	handler := NewEmployeeHandler(log, svc, m)

	api := router.Group("/employee/v1")
	{
		api.GET("/", handler.ListEmployees)
		api.GET("/:id", handler.GetEmployee)
		api.POST("/", handler.CreateEmployee)
		api.PUT("/", handler.UpdateEmployee)
		api.DELETE("/:id", handler.DeleteEmployee)
	}

	router.GET("/reports/employees.xlsx", handler.ExportEmployees)
	router.GET("/healthz", gin.WrapH(NewHealthChecker(log, db)))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return router
}
