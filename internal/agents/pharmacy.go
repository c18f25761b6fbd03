package agents

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

// Карта препаратов, которые аптека превентивно заказывает при вспышке.
var outbreakMedicines = map[string][]string{
	"dengue":    {"dengueMed", "ivFluids", "paracetamol"},
	"malaria":   {"chloroquine", "artemether"},
	"typhoid":   {"ceftriaxone", "ciprofloxacin", "ors"},
	"influenza": {"oseltamivir", "fluVaccine"},
	"covid":     {"covidVaccine"},
}

// PharmacyAgent симулирует расход препаратов одной аптеки, детектит
// приближение к точке перезаказа и ведет цикл заказов у поставщиков.
type PharmacyAgent struct {
	id       string
	world    *domain.WorldState
	bus      *bus.Bus
	log      activity.LogFunc
	rng      *rand.Rand
	interval time.Duration
}

func NewPharmacyAgent(id string, world *domain.WorldState, b *bus.Bus, log activity.LogFunc, rng *rand.Rand, interval time.Duration) *PharmacyAgent {
	a := &PharmacyAgent{
		id:       id,
		world:    world,
		bus:      b,
		log:      log,
		rng:      rng,
		interval: interval,
	}

	for _, disease := range domain.Diseases {
		d := disease
		b.Subscribe(domain.OutbreakEvent(d), func(payload any) { a.onOutbreak(d, payload) })
	}
	b.Subscribe(domain.EventOrderConfirmed, a.onOrderConfirmed)
	b.Subscribe(domain.EventOrderDelivered, a.onOrderDelivered)

	return a
}

func (a *PharmacyAgent) Name() string            { return "Pharmacy " + a.id }
func (a *PharmacyAgent) Interval() time.Duration { return a.interval }

func (a *PharmacyAgent) Start() {
	p := a.world.Pharmacies[a.id]
	if p == nil {
		return
	}
	a.log(
		fmt.Sprintf("✅ Pharmacy Agent %s (%s) initialized - Tracking %d medicines in %s", a.id, p.Name, len(p.Medicines), p.Zone),
		activity.Meta{"agent": "Pharmacy", "type": "INIT", "entityId": a.id},
	)
}

func (a *PharmacyAgent) Tick() {
	p := a.world.Pharmacies[a.id]
	if p == nil {
		return
	}

	low := a.simulateConsumption(p)

	a.log(
		fmt.Sprintf("💊 %s: %d medicines tracked | %d low stock | %d pending orders",
			p.Name, len(p.Medicines), low, len(p.PendingOrders)),
		activity.Meta{
			"agent": "Pharmacy", "type": "STATUS", "entityId": a.id,
			"lowStock": low, "pendingOrders": len(p.PendingOrders),
		},
	)

	a.checkStockLevels(p)
}

// simulateConsumption списывает дневной расход с шумом.
// Ключи отсортированы: итерация по map ломала бы воспроизводимость сида.
func (a *PharmacyAgent) simulateConsumption(p *domain.Pharmacy) (lowCount int) {
	for _, name := range sortedMedicineNames(p) {
		m := p.Medicines[name]

		// Расход за тик: доля дневного плюс шум. Отпустить можно
		// не больше, чем есть на складе.
		usage := m.DailyUsage/4 + a.rng.Intn(maxInt(m.DailyUsage/2, 1))
		dispensed := minInt(usage, m.Stock)
		m.Stock -= dispensed
		p.Metrics.RevenueToday += dispensed * m.Price

		if m.Stock <= m.ReorderPoint {
			lowCount++
		}
	}

	p.Metrics.PrescriptionsFilled += a.rng.Intn(15) + 5
	p.Metrics.CustomersServed += a.rng.Intn(20) + 10
	p.Metrics.AvgWaitTime = clamp(p.Metrics.AvgWaitTime+a.rng.Intn(3)-1, 5, 30)
	return lowCount
}

// checkStockLevels публикует дефициты и размещает заказы на пополнение.
func (a *PharmacyAgent) checkStockLevels(p *domain.Pharmacy) {
	for _, name := range sortedMedicineNames(p) {
		m := p.Medicines[name]
		if m.Stock > m.ReorderPoint {
			continue
		}

		urgency := "medium"
		if m.Stock*2 < m.ReorderPoint {
			urgency = "high"
		}

		a.log(
			fmt.Sprintf("⚠️ %s: %s stock low (%d units, reorder at %d) - %s urgency",
				p.Name, name, m.Stock, m.ReorderPoint, urgency),
			activity.Meta{
				"agent": "Pharmacy", "type": "SHORTAGE_RISK", "entityId": a.id,
				"medicine": name, "stock": m.Stock, "urgency": urgency,
			},
		)

		a.bus.Publish(domain.EventMedicineShortage, &domain.MedicineShortage{
			PharmacyID:   a.id,
			Medicine:     name,
			Zone:         p.Zone,
			Stock:        m.Stock,
			ReorderPoint: m.ReorderPoint,
			Urgency:      urgency,
			Criticality:  m.Criticality,
		})

		a.placeOrder(p, name, m)
	}
}

// placeOrder размещает заказ поставщику, если такого еще нет в полете.
// Количество - пополнение до тройной точки перезаказа.
func (a *PharmacyAgent) placeOrder(p *domain.Pharmacy, name string, m *domain.Medicine) {
	if p.HasPendingOrder(name) {
		return
	}
	if m.Supplier == "" {
		a.log(
			fmt.Sprintf("[Pharmacy %s] Cannot reorder %s: no supplier assigned", a.id, name),
			activity.Meta{"agent": "Pharmacy", "type": "ERROR", "entityId": a.id, "medicine": name},
		)
		return
	}

	quantity := maxInt(m.ReorderPoint*3-m.Stock, m.DailyUsage*2)
	order := &domain.PharmacyOrder{
		ID:         uuid.NewString(),
		Medicine:   name,
		Quantity:   quantity,
		SupplierID: m.Supplier,
		Status:     "pending",
		PlacedAt:   time.Now(),
	}
	p.PendingOrders = append(p.PendingOrders, order)

	a.log(
		fmt.Sprintf("📦 %s: Ordering %d units of %s from %s", p.Name, quantity, name, m.Supplier),
		activity.Meta{
			"agent": "Pharmacy", "type": "ORDER_PLACED", "entityId": a.id,
			"orderId": order.ID, "medicine": name, "quantity": quantity, "supplierId": m.Supplier,
		},
	)

	a.bus.Publish(domain.EventOrderPlaced, &domain.OrderPlaced{
		OrderID:    order.ID,
		PharmacyID: a.id,
		SupplierID: m.Supplier,
		Medicine:   name,
		Quantity:   quantity,
		Zone:       p.Zone,
	})
}

// onOutbreak превентивно дозаказывает профильные препараты при вспышке
// в зоне аптеки, не дожидаясь точки перезаказа.
func (a *PharmacyAgent) onOutbreak(disease string, payload any) {
	p := a.world.Pharmacies[a.id]
	if p == nil {
		return
	}

	var zone string
	switch ev := payload.(type) {
	case *domain.OutbreakPrediction:
		zone = ev.Zone
	case *domain.LegacyOutbreak:
		zone = ev.Zone
	default:
		return
	}
	if zone != p.Zone {
		return
	}

	var ordered []string
	for _, name := range outbreakMedicines[disease] {
		m := p.Medicines[name]
		if m == nil {
			continue
		}
		// Запас уже двойной - дозаказ не нужен.
		if m.Stock >= m.ReorderPoint*2 {
			continue
		}
		if p.HasPendingOrder(name) {
			continue
		}
		a.placeOrder(p, name, m)
		ordered = append(ordered, name)
	}

	if len(ordered) == 0 {
		return
	}
	a.log(
		fmt.Sprintf("🦠 %s: Pre-ordering for %s outbreak - %s", p.Name, strings.ToUpper(disease), strings.Join(ordered, ", ")),
		activity.Meta{"agent": "Pharmacy", "type": "PREORDER", "entityId": a.id, "disease": disease, "medicines": ordered},
	)
}

func (a *PharmacyAgent) onOrderConfirmed(payload any) {
	ev, ok := payload.(*domain.OrderConfirmed)
	if !ok || ev.PharmacyID != a.id {
		return
	}
	p := a.world.Pharmacies[a.id]
	if p == nil {
		return
	}

	for _, o := range p.PendingOrders {
		if o.ID == ev.OrderID {
			o.Status = "confirmed"
			break
		}
	}

	a.log(
		fmt.Sprintf("[Pharmacy %s] Order %s confirmed by %s (ETA %.1fh)", a.id, ev.OrderID, ev.SupplierID, ev.ETAHours),
		activity.Meta{"agent": "Pharmacy", "type": "ORDER_CONFIRMED", "entityId": a.id, "orderId": ev.OrderID},
	)
}

func (a *PharmacyAgent) onOrderDelivered(payload any) {
	ev, ok := payload.(*domain.OrderDelivered)
	if !ok || ev.PharmacyID != a.id {
		return
	}
	p := a.world.Pharmacies[a.id]
	if p == nil {
		return
	}

	if m := p.Medicines[ev.Medicine]; m != nil {
		m.Stock += ev.Quantity
	}
	p.RemovePendingOrder(ev.OrderID)

	a.log(
		fmt.Sprintf("✅ %s: Received %d units of %s from %s", p.Name, ev.Quantity, ev.Medicine, ev.SupplierID),
		activity.Meta{
			"agent": "Pharmacy", "type": "ORDER_DELIVERED", "entityId": a.id,
			"orderId": ev.OrderID, "medicine": ev.Medicine, "quantity": ev.Quantity,
		},
	)
}

func sortedMedicineNames(p *domain.Pharmacy) []string {
	names := make([]string, 0, len(p.Medicines))
	for name := range p.Medicines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
