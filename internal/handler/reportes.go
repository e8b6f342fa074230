package handler

import (
	"net/http"

	"github.com/mo826440-cpu/sistema-kioscos/internal/apierror"
	"github.com/mo826440-cpu/sistema-kioscos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// ResumenDia GET /v1/reportes/resumen-dia?fecha=YYYY-MM-DD
func (h *ReportesHandler) ResumenDia(c *gin.Context) {
	resp, err := h.svc.ResumenDia(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CuentasPorCobrar GET /v1/reportes/cuentas-por-cobrar
func (h *ReportesHandler) CuentasPorCobrar(c *gin.Context) {
	resp, err := h.svc.CuentasPorCobrar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CuentasPorPagar GET /v1/reportes/cuentas-por-pagar
func (h *ReportesHandler) CuentasPorPagar(c *gin.Context) {
	resp, err := h.svc.CuentasPorPagar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el reporte"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
