package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/application/settlement"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
)

// DashboardStats is the admin landing-page summary. Money fields are
// cents internally and decimals on the wire.
type DashboardStats struct {
	TodayRevenue      int64
	TodayProfit       int64
	TodayTransactions int
	LowStockCount     int
	ExpiringSoonCount int
	SystemBalance     int64
	TodaySettlement   []settlement.DailyRecord
}

// MarshalJSON renders cent amounts as decimals for API responses
func (d DashboardStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		TodayRevenue      float64                  `json:"todayRevenue"`
		TodayProfit       float64                  `json:"todayProfit"`
		TodayTransactions int                      `json:"todayTransactions"`
		LowStockCount     int                      `json:"lowStockCount"`
		ExpiringSoonCount int                      `json:"expiringSoonCount"`
		SystemBalance     float64                  `json:"systemBalance"`
		TodaySettlement   []settlement.DailyRecord `json:"todaySettlement"`
	}{
		TodayRevenue:      float64(d.TodayRevenue) / 100,
		TodayProfit:       float64(d.TodayProfit) / 100,
		TodayTransactions: d.TodayTransactions,
		LowStockCount:     d.LowStockCount,
		ExpiringSoonCount: d.ExpiringSoonCount,
		SystemBalance:     float64(d.SystemBalance) / 100,
		TodaySettlement:   d.TodaySettlement,
	})
}

// DashboardService assembles the admin overview from the other
// read paths
type DashboardService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	settlements *SettlementService
	loc         *time.Location
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository, settlements *SettlementService, loc *time.Location) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		settlements: settlements,
		loc:         loc,
	}
}

// GetStats computes today's figures in the business timezone. Profit
// uses each product's current cost price; a sale whose product row has
// since disappeared contributes zero cost rather than failing the page.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	sales, err := s.saleRepo.ListRange(ctx, &repository.SaleRangeParams{From: &dayStart, To: &dayEnd})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TodayTransactions: len(sales)}

	productIDs := make([]uuid.UUID, 0, len(sales))
	seen := make(map[uuid.UUID]bool, len(sales))
	for i := range sales {
		stats.TodayRevenue += sales[i].TotalAmount
		if !seen[sales[i].ProductID] {
			seen[sales[i].ProductID] = true
			productIDs = append(productIDs, sales[i].ProductID)
		}
	}

	costByID := make(map[uuid.UUID]int64, len(productIDs))
	if len(productIDs) > 0 {
		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return nil, err
		}
		for i := range products {
			costByID[products[i].ID] = products[i].CostPrice
		}
	}
	stats.TodayProfit = stats.TodayRevenue
	for i := range sales {
		stats.TodayProfit -= costByID[sales[i].ProductID] * int64(sales[i].Quantity)
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	expiring, err := s.productRepo.GetExpiringBefore(ctx, now.AddDate(0, 2, 0))
	if err != nil {
		return nil, err
	}
	stats.ExpiringSoonCount = len(expiring)

	todayRecords, err := s.settlements.DailyHistory(ctx, &dayStart, &dayEnd, nil)
	if err != nil {
		return nil, err
	}
	stats.TodaySettlement = todayRecords

	balances, err := s.settlements.LifetimeBalances(ctx)
	if err != nil {
		return nil, err
	}
	stats.SystemBalance = settlement.SystemBalance(balances)

	return stats, nil
}
