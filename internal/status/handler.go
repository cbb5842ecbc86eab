package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"status-backend/internal/employees"
	"status-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.home)
	r.GET("/health", h.health)
	r.GET("/db-status", h.dbStatus)
}

func (h *Handler) home(c *gin.Context) {
	respond.OK(c, h.Svc.Home())
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, h.Svc.Health())
}

func (h *Handler) dbStatus(c *gin.Context) {
	report := h.Svc.CheckDatabase(c.Request.Context())
	status, body := Envelope(report)
	respond.JSON(c, status, body)
}

// Envelope maps a report to its HTTP status and JSON body.
func Envelope(report DatabaseReport) (int, any) {
	if !report.OK() {
		msg := report.Err.Error()
		if msg == "" {
			msg = "database error"
		}
		return http.StatusInternalServerError, ErrorResponse{
			Database: DatabaseError,
			Message:  msg,
		}
	}
	list := report.Employees
	if list == nil {
		list = []employees.Employee{}
	}
	return http.StatusOK, ConnectedResponse{
		Database:  DatabaseConnected,
		Count:     len(list),
		Employees: list,
	}
}
