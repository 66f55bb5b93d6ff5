package marketplace_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/meli-labs/seller-dashboard/internal/marketplace"
)

func TestProducts_RespectsLimitAndOffset(t *testing.T) {
	c := marketplace.NewClient("")

	page := c.Products(5, 10)
	if len(page.Results) != 5 {
		t.Errorf("len(results) = %d, want 5", len(page.Results))
	}
	if page.Paging.Offset != 10 || page.Paging.Limit != 5 {
		t.Errorf("paging = %+v, want offset 10 limit 5", page.Paging)
	}
	for _, p := range page.Results {
		if p.ID == "" || p.Title == "" {
			t.Errorf("incomplete product: %+v", p)
		}
	}
}

func TestProducts_DefaultsAndCaps(t *testing.T) {
	c := marketplace.NewClient("")

	if got := len(c.Products(0, 0).Results); got != 50 {
		t.Errorf("zero limit: got %d products, want default 50", got)
	}
	if got := len(c.Products(100000, 0).Results); got != 200 {
		t.Errorf("huge limit: got %d products, want cap 200", got)
	}
	if got := c.Products(10, -5).Paging.Offset; got != 0 {
		t.Errorf("negative offset: got %d, want 0", got)
	}
}

func TestQuestions_DefaultLimit(t *testing.T) {
	c := marketplace.NewClient("")

	page := c.Questions(0)
	if len(page.Questions) != 20 {
		t.Errorf("len(questions) = %d, want default 20", len(page.Questions))
	}
	if page.Total != len(page.Questions) {
		t.Errorf("total = %d, want %d", page.Total, len(page.Questions))
	}
}

func TestUpdateStock_EchoesQuantity(t *testing.T) {
	c := marketplace.NewClient("")

	upd := c.UpdateStock("MLB123", 42)
	if upd.ProductID != "MLB123" || upd.AvailableQuantity != 42 {
		t.Errorf("update = %+v, want MLB123 / 42", upd)
	}
	if upd.Status != "success" {
		t.Errorf("status = %q, want success", upd.Status)
	}
}

func TestShippingInfo_KeepsOrderID(t *testing.T) {
	c := marketplace.NewClient("")

	info := c.ShippingInfo("2087654321")
	if info.OrderID != "2087654321" {
		t.Errorf("order_id = %q, want 2087654321", info.OrderID)
	}
	if info.TrackingNumber == "" {
		t.Error("missing tracking number")
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestLoadSnapshot_MissingFile_UsesFallback(t *testing.T) {
	s := marketplace.LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"), testLogger())

	m := s.Metrics()
	if m.TotalProducts != 50 {
		t.Errorf("total_produtos = %d, want fallback 50", m.TotalProducts)
	}
}

func TestLoadSnapshot_ReadsExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cd.json")
	payload := `{
		"metrics": {"total_produtos": 3, "aguardando_envio": 1, "tempo_medio_permanencia": 10.5, "eficiencia_operacional": 90},
		"products": [{"id": "MLB1", "title": "Caixa", "sku": "SKU-1", "quantity": 2, "status": "aguardando_envio", "hours_in_cd": 4.2}]
	}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write export: %v", err)
	}

	s := marketplace.LoadSnapshot(path, testLogger())

	if got := s.Metrics().TotalProducts; got != 3 {
		t.Errorf("total_produtos = %d, want 3", got)
	}
	if got := len(s.Products()); got != 1 {
		t.Errorf("len(products) = %d, want 1", got)
	}
}

func TestSnapshotRefresh_KeepsMetricsInRange(t *testing.T) {
	s := marketplace.LoadSnapshot(filepath.Join(t.TempDir(), "nope.json"), testLogger())

	for range 10 {
		s.Refresh()
		m := s.Metrics()
		if m.AwaitingShipment < 0 || m.AwaitingShipment > m.TotalProducts {
			t.Fatalf("aguardando_envio = %d out of range [0, %d]", m.AwaitingShipment, m.TotalProducts)
		}
		if m.OperationalEfficiency < 70 || m.OperationalEfficiency > 95 {
			t.Fatalf("eficiencia_operacional = %f out of range", m.OperationalEfficiency)
		}
	}
}
