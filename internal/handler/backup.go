package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/apierror"
	"github.com/mo826440-cpu/sistema-kioscos/internal/service"

	"github.com/gin-gonic/gin"
)

type BackupHandler struct{ svc service.BackupService }

func NewBackupHandler(svc service.BackupService) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export GET /v1/backup/export — downloads the store as a SQL script.
func (h *BackupHandler) Export(c *gin.Context) {
	script, err := h.svc.ExportSQL(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el respaldo"))
		return
	}
	fileName := fmt.Sprintf("respaldo_%s.sql", time.Now().Format("2006-01-02_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/sql", []byte(script))
}
