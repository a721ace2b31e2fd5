package dashboard

import (
	"context"
	"math"
	"sync"
	"time"

	"farm-service/internal/model"

	"go.uber.org/zap"
)

// RecentActivityLimit bounds the dashboard's recent-activity list
const RecentActivityLimit = 5

// Store is the read-only view of the record store the aggregator needs.
// Every method returns rows scoped to the given user id.
type Store interface {
	LandParcelAreas(ctx context.Context, userID uint) ([]float64, error)
	CropsByStatus(ctx context.Context, userID uint, statuses []string) ([]model.Crop, error)
	InventoryItems(ctx context.Context, userID uint) ([]model.InventoryItem, error)
	Tools(ctx context.Context, userID uint) ([]model.ToolEquipment, error)
	FinancialAmounts(ctx context.Context, userID uint, recordType string) ([]float64, error)
	RecentNotifications(ctx context.Context, userID uint, limit int) ([]model.Notification, error)
}

// Snapshot is the immutable bundle of metrics produced by one aggregation
// run. Metrics belonging to a query named in FailedQueries are zero-valued
// placeholders, not computed results.
type Snapshot struct {
	TotalLand        float64              `json:"total_land"`
	ActiveCrops      int                  `json:"active_crops"`
	UpcomingHarvests int                  `json:"upcoming_harvests"`
	LowStockItems    int                  `json:"low_stock_items"`
	MaintenanceDue   int                  `json:"maintenance_due"`
	TotalExpenses    float64              `json:"total_expenses"`
	TotalRevenue     float64              `json:"total_revenue"`
	ProfitLoss       float64              `json:"profit_loss"`
	RecentActivity   []model.Notification `json:"recent_activity"`
	FailedQueries    []string             `json:"failed_queries,omitempty"`
	GeneratedAt      time.Time            `json:"generated_at"`
}

// Complete reports whether every underlying query succeeded
func (s *Snapshot) Complete() bool {
	return len(s.FailedQueries) == 0
}

// Aggregator computes dashboard snapshots from a Store
type Aggregator struct {
	store  Store
	logger *zap.Logger
}

// NewAggregator creates an aggregator over the given store
func NewAggregator(store Store, logger *zap.Logger) *Aggregator {
	return &Aggregator{store: store, logger: logger}
}

// Snapshot issues the seven independent reads for the user concurrently,
// reduces them and assembles one snapshot. A zero user id short-circuits to
// the empty snapshot without touching the store. A failed read leaves its
// metrics at zero and records the query name in FailedQueries; no error is
// returned so the dashboard always renders something usable.
func (a *Aggregator) Snapshot(ctx context.Context, userID uint, now time.Time) *Snapshot {
	snap := &Snapshot{
		RecentActivity: []model.Notification{},
		GeneratedAt:    now,
	}
	if userID == 0 {
		return snap
	}

	var (
		areas         []float64
		activeCrops   []model.Crop
		inventory     []model.InventoryItem
		tools         []model.ToolEquipment
		expenses      []float64
		revenue       []float64
		notifications []model.Notification
	)

	queries := []struct {
		name string
		run  func() error
	}{
		{"land_parcels", func() (err error) {
			areas, err = a.store.LandParcelAreas(ctx, userID)
			return
		}},
		{"active_crops", func() (err error) {
			activeCrops, err = a.store.CropsByStatus(ctx, userID, model.ActiveCropStatuses)
			return
		}},
		{"inventory", func() (err error) {
			inventory, err = a.store.InventoryItems(ctx, userID)
			return
		}},
		{"tools", func() (err error) {
			tools, err = a.store.Tools(ctx, userID)
			return
		}},
		{"expenses", func() (err error) {
			expenses, err = a.store.FinancialAmounts(ctx, userID, model.FinancialTypeExpense)
			return
		}},
		{"revenue", func() (err error) {
			revenue, err = a.store.FinancialAmounts(ctx, userID, model.FinancialTypeRevenue)
			return
		}},
		{"notifications", func() (err error) {
			notifications, err = a.store.RecentNotifications(ctx, userID, RecentActivityLimit)
			return
		}},
	}

	// Fan-out: the reads are independent, so each branch runs on its own
	// goroutine and records its own error slot. Every branch must finish
	// even when a sibling fails, which is why the join is a plain WaitGroup.
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, run func() error) {
			defer wg.Done()
			errs[i] = run()
		}(i, q.run)
	}
	wg.Wait()

	for i, q := range queries {
		if errs[i] != nil {
			a.logger.Error("dashboard query failed",
				zap.String("query", q.name),
				zap.Uint("user_id", userID),
				zap.Error(errs[i]))
			snap.FailedQueries = append(snap.FailedQueries, q.name)
		}
	}

	snap.TotalLand = sumFinite(areas)
	snap.ActiveCrops = len(activeCrops)
	for i := range activeCrops {
		if IsUpcomingHarvest(&activeCrops[i], now) {
			snap.UpcomingHarvests++
		}
	}
	for i := range inventory {
		if IsLowStock(&inventory[i]) {
			snap.LowStockItems++
		}
	}
	for i := range tools {
		if IsMaintenanceDue(&tools[i], now) {
			snap.MaintenanceDue++
		}
	}
	snap.TotalExpenses = sumFinite(expenses)
	snap.TotalRevenue = sumFinite(revenue)
	snap.ProfitLoss = snap.TotalRevenue - snap.TotalExpenses

	if len(notifications) > RecentActivityLimit {
		notifications = notifications[:RecentActivityLimit]
	}
	if notifications != nil {
		snap.RecentActivity = notifications
	}

	return snap
}

// sumFinite folds the values, skipping NaN and infinities so one malformed
// row cannot corrupt the aggregate
func sumFinite(values []float64) float64 {
	var sum float64
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		sum += v
	}
	return sum
}
