package marketplace

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/meli-labs/seller-dashboard/internal/domain"
	"github.com/robfig/cron/v3"
)

// Snapshot caches the cross-docking warehouse data served on /api/cd-data,
// /api/products and /api/metrics. It is loaded from a JSON export once at
// startup and its metrics are jittered on a cron schedule so the local
// dashboard does not look frozen.
type Snapshot struct {
	mu     sync.RWMutex
	data   domain.CrossDocking
	logger *slog.Logger
}

// LoadSnapshot reads the export at path. A missing or unreadable file is
// not fatal: the snapshot falls back to baked-in values, mirroring what
// the frontend expects on a fresh checkout.
func LoadSnapshot(path string, logger *slog.Logger) *Snapshot {
	s := &Snapshot{
		data:   fallbackData(),
		logger: logger.With("component", "cd_snapshot"),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("cross-docking export not found, using fallback data", "path", path, "error", err)
		return s
	}

	var data domain.CrossDocking
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("cross-docking export unreadable, using fallback data", "path", path, "error", err)
		return s
	}

	s.data = data
	s.logger.Info("cross-docking export loaded", "path", path, "products", len(data.Products))
	return s
}

func (s *Snapshot) Data() domain.CrossDocking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Snapshot) Products() []domain.CrossDockingProduct {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Products
}

func (s *Snapshot) Metrics() domain.CrossDockingMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Metrics
}

// Refresh jitters the operational metrics around their current values.
func (s *Snapshot) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &s.data.Metrics
	if m.TotalProducts > 0 {
		m.AwaitingShipment = rand.IntN(m.TotalProducts + 1)
	}
	m.AvgTimeInWarehouse = round2(m.AvgTimeInWarehouse * (0.95 + rand.Float64()*0.1))
	m.OperationalEfficiency = round2(70 + rand.Float64()*25)
}

// StartRefresher schedules Refresh on the given cron spec and returns
// the started scheduler; callers stop it during shutdown.
func (s *Snapshot) StartRefresher(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, s.Refresh); err != nil {
		return nil, fmt.Errorf("schedule snapshot refresh: %w", err)
	}
	c.Start()
	return c, nil
}

func fallbackData() domain.CrossDocking {
	return domain.CrossDocking{
		Metrics: domain.CrossDockingMetrics{
			TotalProducts:         50,
			AwaitingShipment:      17,
			AvgTimeInWarehouse:    161.36,
			OperationalEfficiency: 78,
		},
		Products: []domain.CrossDockingProduct{},
	}
}
