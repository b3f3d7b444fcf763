package analytics

import (
	"time"

	"github.com/jhoicas/inventario-desk/internal/application/dto"
	"github.com/jhoicas/inventario-desk/internal/application/inventory"
	"github.com/jhoicas/inventario-desk/internal/domain/entity"
)

const recentMovementsLimit = 5

// DashboardUseCase arma el resumen de la pantalla principal a partir de
// lecturas del ledger; no muta nada.
type DashboardUseCase struct {
	ledger *inventory.Ledger
	now    func() time.Time
}

func NewDashboardUseCase(ledger *inventory.Ledger) *DashboardUseCase {
	return &DashboardUseCase{ledger: ledger, now: time.Now}
}

// GetSummary calcula contadores, entradas/salidas de hoy, stock bajo y los
// últimos movimientos enriquecidos con nombres de producto y bodega.
func (uc *DashboardUseCase) GetSummary() dto.DashboardSummaryDTO {
	products := uc.ledger.Products()
	warehouses := uc.ledger.Warehouses()
	stock := uc.ledger.Stock()
	movements := uc.ledger.Movements()

	productsByID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}
	warehousesByID := make(map[string]entity.Warehouse, len(warehouses))
	for _, w := range warehouses {
		warehousesByID[w.ID] = w
	}

	summary := dto.DashboardSummaryDTO{
		TotalProducts:   len(products),
		TotalWarehouses: len(warehouses),
		LowStock:        []dto.LowStockProductDTO{},
		RecentMovements: []dto.RecentMovementDTO{},
	}
	for _, s := range stock {
		summary.TotalUnits += s.Quantity
	}

	today := uc.now()
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	for _, mv := range movements {
		if mv.CreatedAt.Before(dayStart) || !mv.CreatedAt.Before(dayEnd) {
			continue
		}
		if mv.Type == entity.MovementTypeIn {
			summary.TodayEntries += mv.Quantity
		} else {
			summary.TodayExits += mv.Quantity
		}
	}

	for _, p := range uc.ledger.GetLowStockProducts() {
		summary.LowStock = append(summary.LowStock, dto.LowStockProductDTO{
			ProductResponse: toProductResponse(p),
			TotalStock:      uc.ledger.GetProductStock(p.ID, ""),
		})
	}

	// Los movimientos vienen en orden cronológico; el widget muestra los
	// últimos, del más reciente al más antiguo.
	for i := len(movements) - 1; i >= 0 && len(summary.RecentMovements) < recentMovementsLimit; i-- {
		mv := movements[i]
		recent := dto.RecentMovementDTO{
			ID:        mv.ID,
			Type:      mv.Type,
			Quantity:  mv.Quantity,
			CreatedAt: mv.CreatedAt,
		}
		if p, ok := productsByID[mv.ProductID]; ok {
			recent.ProductName = p.Name
			recent.SKU = p.SKU
		}
		if w, ok := warehousesByID[mv.WarehouseID]; ok {
			recent.WarehouseName = w.Name
		}
		summary.RecentMovements = append(summary.RecentMovements, recent)
	}
	return summary
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		MinStock:    p.MinStock,
		CreatedAt:   p.CreatedAt,
	}
}
