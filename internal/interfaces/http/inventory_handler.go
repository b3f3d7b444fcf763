package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain"
)

// InventoryHandler maneja movimientos, existencias y stock bajo.
type InventoryHandler struct {
	ledger *inventory.Ledger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.Ledger) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento (type: in|out)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	m, err := h.ledger.AddMovement(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "se requiere un usuario autenticado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto, bodega, tipo (in|out) y cantidad positiva son requeridos"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la salida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Notes:       m.Notes,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos con filtros
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        type          query  string  false  "in | out"
// @Param        from          query  string  false  "Fecha inicial (RFC3339)"
// @Param        to            query  string  false  "Fecha final (RFC3339)"
// @Param        search        query  string  false  "Texto libre sobre notas"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter, err := movementFilterFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser fechas RFC3339"})
	}
	movements := h.ledger.FilterMovements(filter)
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			WarehouseID: m.WarehouseID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Notes:       m.Notes,
			UserID:      m.UserID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Existencia de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "ID del producto"
// @Param        warehouse_id  query  string  false  "ID de la bodega; vacío = total"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/stock [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	warehouseID := c.Query("warehouse_id")
	return c.JSON(dto.StockResponse{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    h.ledger.GetProductStock(productID, warehouseID),
	})
}

// LowStock godoc
// @Summary      Productos con stock bajo el umbral
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockProductDTO
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	products := h.ledger.GetLowStockProducts()
	out := make([]dto.LowStockProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.LowStockProductDTO{
			ProductResponse: toProductResponse(p),
			TotalStock:      h.ledger.GetProductStock(p.ID, ""),
		})
	}
	return c.JSON(out)
}

// movementFilterFromQuery arma el filtro del historial desde la query string.
func movementFilterFromQuery(c *fiber.Ctx) (dto.MovementFilter, error) {
	filter := dto.MovementFilter{
		ProductID:   c.Query("product_id"),
		WarehouseID: c.Query("warehouse_id"),
		Type:        c.Query("type"),
		Search:      c.Query("search"),
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	return filter, nil
}
