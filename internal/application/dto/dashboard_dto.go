package dto

import "time"

// DashboardSummaryDTO resumen para la pantalla principal.
type DashboardSummaryDTO struct {
	TotalProducts   int                  `json:"total_products"`
	TotalWarehouses int                  `json:"total_warehouses"`
	TotalUnits      int                  `json:"total_units"` // suma de existencias de todas las bodegas
	TodayEntries    int                  `json:"today_entries"`
	TodayExits      int                  `json:"today_exits"`
	LowStock        []LowStockProductDTO `json:"low_stock"`
	RecentMovements []RecentMovementDTO  `json:"recent_movements"`
}

// RecentMovementDTO movimiento reciente enriquecido con nombres para el widget del dashboard.
type RecentMovementDTO struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"product_name"`
	SKU           string    `json:"sku"`
	WarehouseName string    `json:"warehouse_name"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}
