package agents

import (
	"math/rand"
	"testing"
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

func newTestPharmacy() (*PharmacyAgent, *domain.Pharmacy, *domain.WorldState, *bus.Bus, *logCapture) {
	world := newTestWorld()
	p := &domain.Pharmacy{
		ID: "P1", Name: "Test Pharmacy", Zone: "Zone-1",
		Medicines: map[string]*domain.Medicine{},
	}
	world.Pharmacies["P1"] = p

	b := bus.New()
	capture := &logCapture{}
	agent := NewPharmacyAgent("P1", world, b, capture.fn(), rand.New(rand.NewSource(3)), 20*time.Second)
	return agent, p, world, b, capture
}

func TestCheckStockLevels_ShortageAndOrder(t *testing.T) {
	agent, p, _, b, _ := newTestPharmacy()
	p.Medicines["dengueMed"] = &domain.Medicine{
		Stock: 15, ReorderPoint: 20, DailyUsage: 5, Criticality: "high", Supplier: "S1",
	}

	var shortage *domain.MedicineShortage
	var placed *domain.OrderPlaced
	b.Subscribe(domain.EventMedicineShortage, func(v any) { shortage = v.(*domain.MedicineShortage) })
	b.Subscribe(domain.EventOrderPlaced, func(v any) { placed = v.(*domain.OrderPlaced) })

	agent.checkStockLevels(p)

	if shortage == nil {
		t.Fatal("shortage event not published")
	}
	// 15*2 >= 20: срочность еще средняя.
	if shortage.Urgency != "medium" {
		t.Errorf("urgency = %s, want medium", shortage.Urgency)
	}
	if shortage.Criticality != "high" {
		t.Errorf("criticality = %s, want high", shortage.Criticality)
	}

	if placed == nil {
		t.Fatal("order not placed")
	}
	if placed.SupplierID != "S1" || placed.Medicine != "dengueMed" {
		t.Errorf("unexpected order: %+v", placed)
	}
	// Пополнение до тройной точки перезаказа.
	if placed.Quantity != 20*3-15 {
		t.Errorf("quantity = %d, want %d", placed.Quantity, 20*3-15)
	}
	if len(p.PendingOrders) != 1 {
		t.Fatalf("pending orders = %d, want 1", len(p.PendingOrders))
	}
}

func TestCheckStockLevels_HighUrgency(t *testing.T) {
	agent, p, _, b, _ := newTestPharmacy()
	p.Medicines["ivFluids"] = &domain.Medicine{
		Stock: 5, ReorderPoint: 30, DailyUsage: 15, Criticality: "high", Supplier: "S1",
	}

	var shortage *domain.MedicineShortage
	b.Subscribe(domain.EventMedicineShortage, func(v any) { shortage = v.(*domain.MedicineShortage) })

	agent.checkStockLevels(p)

	if shortage == nil || shortage.Urgency != "high" {
		t.Fatalf("expected high urgency, got %+v", shortage)
	}
}

func TestCheckStockLevels_NoDuplicateOrderWhilePending(t *testing.T) {
	agent, p, _, b, _ := newTestPharmacy()
	p.Medicines["ors"] = &domain.Medicine{
		Stock: 10, ReorderPoint: 50, DailyUsage: 20, Criticality: "medium", Supplier: "S1",
	}

	orders := 0
	b.Subscribe(domain.EventOrderPlaced, func(any) { orders++ })

	agent.checkStockLevels(p)
	agent.checkStockLevels(p)
	agent.checkStockLevels(p)

	// Дефицит репортится каждый раз, но заказ в полете один.
	if orders != 1 {
		t.Errorf("orders placed = %d, want 1", orders)
	}
	if len(p.PendingOrders) != 1 {
		t.Errorf("pending orders = %d, want 1", len(p.PendingOrders))
	}
}

func TestOrderLifecycle_ConfirmedThenDelivered(t *testing.T) {
	agent, p, world, b, _ := newTestPharmacy()
	_ = agent
	p.Medicines["ceftriaxone"] = &domain.Medicine{
		Stock: 5, ReorderPoint: 25, DailyUsage: 8, Criticality: "high", Supplier: "S1",
	}

	agent.checkStockLevels(p)
	if len(p.PendingOrders) != 1 {
		t.Fatal("order not placed")
	}
	order := p.PendingOrders[0]

	b.Publish(domain.EventOrderConfirmed, &domain.OrderConfirmed{
		OrderID: order.ID, SupplierID: "S1", PharmacyID: "P1", Medicine: "ceftriaxone", ETAHours: 3,
	})
	if order.Status != "confirmed" {
		t.Errorf("status = %s, want confirmed", order.Status)
	}

	b.Publish(domain.EventOrderDelivered, &domain.OrderDelivered{
		OrderID: order.ID, SupplierID: "S1", PharmacyID: "P1", Medicine: "ceftriaxone", Quantity: 70,
	})

	if p.Medicines["ceftriaxone"].Stock != 5+70 {
		t.Errorf("stock after delivery = %d, want 75", p.Medicines["ceftriaxone"].Stock)
	}
	if len(p.PendingOrders) != 0 {
		t.Errorf("pending orders after delivery = %d, want 0", len(p.PendingOrders))
	}
	// Метрики города - не зона ответственности аптеки.
	if world.City.SystemMetrics.StockoutsPrevented != 0 {
		t.Errorf("pharmacy handler mutated city metrics: %d", world.City.SystemMetrics.StockoutsPrevented)
	}
}

// Доставка должна отрабатывать целиком даже без городского агрегата:
// хендлер аптеки не трогает ничего за пределами своей сущности.
func TestOnOrderDelivered_NoCityAggregateNeeded(t *testing.T) {
	agent, p, world, b, capture := newTestPharmacy()
	world.City = nil
	p.Medicines["ors"] = &domain.Medicine{
		Stock: 10, ReorderPoint: 50, DailyUsage: 20, Criticality: "medium", Supplier: "S1",
	}

	agent.checkStockLevels(p)
	if len(p.PendingOrders) != 1 {
		t.Fatal("order not placed")
	}
	order := p.PendingOrders[0]

	b.Publish(domain.EventOrderDelivered, &domain.OrderDelivered{
		OrderID: order.ID, SupplierID: "S1", PharmacyID: "P1", Medicine: "ors", Quantity: 140,
	})

	if p.Medicines["ors"].Stock != 150 {
		t.Errorf("stock = %d, want 150", p.Medicines["ors"].Stock)
	}
	if len(p.PendingOrders) != 0 {
		t.Errorf("pending orders = %d, want 0", len(p.PendingOrders))
	}
	if capture.countType("ORDER_DELIVERED") != 1 {
		t.Error("delivery log entry missing")
	}
}

func TestOrderEvents_ForOtherPharmacyIgnored(t *testing.T) {
	_, p, _, b, _ := newTestPharmacy()
	p.Medicines["ors"] = &domain.Medicine{Stock: 100, ReorderPoint: 50, Supplier: "S1"}

	b.Publish(domain.EventOrderDelivered, &domain.OrderDelivered{
		OrderID: "x", PharmacyID: "P-OTHER", Medicine: "ors", Quantity: 500,
	})

	if p.Medicines["ors"].Stock != 100 {
		t.Error("delivery for another pharmacy mutated our stock")
	}
}

func TestOnOutbreak_PreordersMappedMedicines(t *testing.T) {
	agent, p, _, b, capture := newTestPharmacy()
	_ = agent
	// Запас ниже двойной точки перезаказа - кандидат на превентивный заказ.
	p.Medicines["dengueMed"] = &domain.Medicine{Stock: 30, ReorderPoint: 20, DailyUsage: 5, Supplier: "S1"}
	// Запас уже двойной - дозаказ не нужен.
	p.Medicines["paracetamol"] = &domain.Medicine{Stock: 500, ReorderPoint: 150, DailyUsage: 50, Supplier: "S1"}

	orders := 0
	b.Subscribe(domain.EventOrderPlaced, func(any) { orders++ })

	b.Publish(domain.OutbreakEvent("dengue"), &domain.OutbreakPrediction{Zone: "Zone-1", Disease: "dengue"})

	if orders != 1 {
		t.Errorf("preorders placed = %d, want 1 (dengueMed only)", orders)
	}
	if !capture.contains("Pre-ordering for DENGUE outbreak") {
		t.Error("missing preorder log entry")
	}
}

func TestOnOutbreak_OtherZoneIgnored(t *testing.T) {
	_, p, _, b, _ := newTestPharmacy()
	p.Medicines["dengueMed"] = &domain.Medicine{Stock: 10, ReorderPoint: 20, DailyUsage: 5, Supplier: "S1"}

	b.Publish(domain.OutbreakEvent("dengue"), &domain.OutbreakPrediction{Zone: "Zone-9", Disease: "dengue"})

	if len(p.PendingOrders) != 0 {
		t.Error("outbreak in another zone triggered a preorder")
	}
}

func TestSimulateConsumption_NeverNegative(t *testing.T) {
	agent, p, _, _, _ := newTestPharmacy()
	p.Medicines["ors"] = &domain.Medicine{Stock: 3, ReorderPoint: 50, DailyUsage: 40, Supplier: "S1"}

	for i := 0; i < 20; i++ {
		agent.simulateConsumption(p)
		if p.Medicines["ors"].Stock < 0 {
			t.Fatalf("stock went negative on tick %d", i)
		}
	}
}

func TestSimulateConsumption_AccruesRevenue(t *testing.T) {
	agent, p, _, _, _ := newTestPharmacy()
	p.Medicines["paracetamol"] = &domain.Medicine{
		Stock: 1000, ReorderPoint: 150, DailyUsage: 40, Price: 20, Supplier: "S1",
	}

	agent.simulateConsumption(p)

	dispensed := 1000 - p.Medicines["paracetamol"].Stock
	if dispensed < 40/4 {
		t.Fatalf("dispensed = %d, want at least the base quarter of daily usage", dispensed)
	}
	// Выручка равна отпущенному объему по цене позиции.
	if p.Metrics.RevenueToday != dispensed*20 {
		t.Errorf("revenue = %d, want %d", p.Metrics.RevenueToday, dispensed*20)
	}
	if p.Metrics.AvgWaitTime < 5 || p.Metrics.AvgWaitTime > 30 {
		t.Errorf("avgWaitTime = %d, want within [5, 30]", p.Metrics.AvgWaitTime)
	}
}

// Выручка считается по отпущенному, а не по спросу: пустой склад
// не генерирует денег.
func TestSimulateConsumption_RevenueCappedByStock(t *testing.T) {
	agent, p, _, _, _ := newTestPharmacy()
	p.Medicines["ivFluids"] = &domain.Medicine{
		Stock: 2, ReorderPoint: 30, DailyUsage: 100, Price: 50, Supplier: "S1",
	}

	agent.simulateConsumption(p)

	if p.Metrics.RevenueToday > 2*50 {
		t.Errorf("revenue = %d, want at most %d", p.Metrics.RevenueToday, 2*50)
	}
	if p.Medicines["ivFluids"].Stock < 0 {
		t.Error("stock went negative")
	}
}
