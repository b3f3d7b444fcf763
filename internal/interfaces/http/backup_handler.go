package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
)

// BackupHandler respaldo y restauración del documento (solo admin).
type BackupHandler struct {
	ledger *inventory.Ledger
}

// NewBackupHandler construye el handler.
func NewBackupHandler(ledger *inventory.Ledger) *BackupHandler {
	return &BackupHandler{ledger: ledger}
}

// Backup godoc
// @Summary      Respaldar el documento a una ruta
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupRequest  true  "Ruta destino"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/backup [post]
func (h *BackupHandler) Backup(c *fiber.Ctx) error {
	var in dto.BackupRequest
	if err := c.BodyParser(&in); err != nil || in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	if err := h.ledger.Backup(in.Path); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "BACKUP_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "respaldo creado en " + in.Path})
}

// Restore godoc
// @Summary      Restaurar el documento desde un respaldo
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestoreRequest  true  "Ruta del respaldo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/restore [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var in dto.RestoreRequest
	if err := c.BodyParser(&in); err != nil || in.Path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "path es requerido"})
	}
	if err := h.ledger.Restore(in.Path); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "RESTORE_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "documento restaurado desde " + in.Path})
}
