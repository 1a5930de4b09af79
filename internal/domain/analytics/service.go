// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockmaster-backend/internal/config"
	"github.com/your-org/stockmaster-backend/internal/domain/operations"
	"github.com/your-org/stockmaster-backend/internal/infrastructure/database/redis"
	"gorm.io/gorm"
)

const dashboardCacheKey = "dashboard:kpis"

// DashboardKPIs aggregates the headline numbers shown on the dashboard
type DashboardKPIs struct {
	TotalProducts     int64     `json:"total_products"`
	TotalWarehouses   int64     `json:"total_warehouses"`
	TotalStockUnits   float64   `json:"total_stock_units"`
	LowStockProducts  int64     `json:"low_stock_products"`
	OutOfStockItems   int64     `json:"out_of_stock_items"`
	PendingReceipts   int64     `json:"pending_receipts"`
	PendingDeliveries int64     `json:"pending_deliveries"`
	PendingTransfers  int64     `json:"pending_transfers"`
	RecentMoves       int64     `json:"recent_moves"`
	GeneratedAt       time.Time `json:"generated_at"`
}

// Service computes dashboard analytics
type Service struct {
	db     *gorm.DB
	cache  *redis.Client
	config *config.Config
}

// NewService creates a new analytics service. The cache is optional; without
// it every call recomputes.
func NewService(db *gorm.DB, cache *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		cache:  cache,
		config: cfg,
	}
}

// GetDashboardKPIs returns the dashboard numbers, served from cache when fresh
func (s *Service) GetDashboardKPIs(ctx context.Context) (*DashboardKPIs, error) {
	if s.cache != nil {
		var cached DashboardKPIs
		if err := s.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	kpis, err := s.computeKPIs()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, dashboardCacheKey, kpis, s.config.Inventory.DashboardCacheTTL); err != nil {
			logrus.WithError(err).Warn("failed to cache dashboard KPIs")
		}
	}

	return kpis, nil
}

// InvalidateDashboard drops the cached KPIs so the next read recomputes
func (s *Service) InvalidateDashboard(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, dashboardCacheKey)
}

func (s *Service) computeKPIs() (*DashboardKPIs, error) {
	kpis := &DashboardKPIs{
		GeneratedAt: time.Now().UTC(),
	}

	if err := s.db.Table("products").Where("deleted_at IS NULL").Count(&kpis.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.Table("warehouses").Where("is_active = ?", true).Count(&kpis.TotalWarehouses).Error; err != nil {
		return nil, fmt.Errorf("failed to count warehouses: %w", err)
	}

	var total *float64
	if err := s.db.Table("stocks").Select("SUM(quantity)").Scan(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to sum stock: %w", err)
	}
	if total != nil {
		kpis.TotalStockUnits = *total
	}

	// A product is low on stock when its total across all locations sits
	// under the configured threshold but above zero.
	lowStockQuery := `
		SELECT COUNT(*) FROM (
			SELECT product_id, SUM(quantity) AS total
			FROM stocks
			GROUP BY product_id
			HAVING SUM(quantity) > 0 AND SUM(quantity) < ?
		) low`
	if err := s.db.Raw(lowStockQuery, s.config.Inventory.LowStockThreshold).Scan(&kpis.LowStockProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count low stock products: %w", err)
	}

	if err := s.db.Table("stocks").Where("quantity <= 0").Count(&kpis.OutOfStockItems).Error; err != nil {
		return nil, fmt.Errorf("failed to count out-of-stock rows: %w", err)
	}

	if err := s.db.Model(&operations.Receipt{}).Where("validated = ?", false).Count(&kpis.PendingReceipts).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending receipts: %w", err)
	}
	if err := s.db.Model(&operations.Delivery{}).Where("validated = ?", false).Count(&kpis.PendingDeliveries).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending deliveries: %w", err)
	}
	if err := s.db.Model(&operations.InternalTransfer{}).Where("validated = ?", false).Count(&kpis.PendingTransfers).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending transfers: %w", err)
	}

	since := time.Now().UTC().AddDate(0, 0, -7)
	if err := s.db.Table("move_histories").Where("date >= ?", since).Count(&kpis.RecentMoves).Error; err != nil {
		return nil, fmt.Errorf("failed to count recent moves: %w", err)
	}

	return kpis, nil
}
