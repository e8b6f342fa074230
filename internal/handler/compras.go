package handler

import (
	"net/http"
	"strconv"

	"github.com/mo826440-cpu/sistema-kioscos/internal/apierror"
	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Registrar POST /v1/compras
func (h *ComprasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req, currentUsername(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/compras?proveedor_id=N&pendientes=true
func (h *ComprasHandler) Listar(c *gin.Context) {
	if c.Query("pendientes") == "true" {
		resp, err := h.svc.ListarPendientes(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if raw := c.Query("proveedor_id"); raw != "" {
		proveedorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || proveedorID < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("proveedor_id inválido"))
			return
		}
		resp, err := h.svc.ListarPorProveedor(c.Request.Context(), proveedorID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/compras/:id
func (h *ComprasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/compras/:id
func (h *ComprasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrCompraNoEncontrada {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarPago POST /v1/compras/:id/pagos
func (h *ComprasHandler) AgregarPago(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PagoCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarPago(c.Request.Context(), id, req)
	if err != nil {
		status := http.StatusBadRequest
		if err == service.ErrCompraNoEncontrada {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Eliminar DELETE /v1/compras/:id
func (h *ComprasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		if err == service.ErrCompraNoEncontrada {
			status = http.StatusNotFound
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
