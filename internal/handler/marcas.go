package handler

import (
	"net/http"
	"strconv"

	"github.com/mo826440-cpu/sistema-kioscos/internal/apierror"
	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/service"

	"github.com/gin-gonic/gin"
)

type MarcasHandler struct{ svc service.MarcaService }

func NewMarcasHandler(svc service.MarcaService) *MarcasHandler {
	return &MarcasHandler{svc: svc}
}

// Crear POST /v1/marcas
func (h *MarcasHandler) Crear(c *gin.Context) {
	var req dto.CrearMarcaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /v1/marcas?categoria_id=N
func (h *MarcasHandler) Listar(c *gin.Context) {
	if raw := c.Query("categoria_id"); raw != "" {
		categoriaID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoriaID < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("categoria_id inválido"))
			return
		}
		resp, err := h.svc.ListarPorCategoria(c.Request.Context(), categoriaID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar marcas"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar marcas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/marcas/:id
func (h *MarcasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarMarcaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/marcas/:id
func (h *MarcasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		status := http.StatusBadRequest
		if err == service.ErrMarcaEnUso {
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
