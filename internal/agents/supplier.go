package agents

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

// Сколько тиков поставщика занимает доставка по городу.
const deliverySteps = 2

// SupplierAgent обслуживает заказы аптек: принимает их из шины,
// резервирует склад и машину, тиками продвигает доставку.
type SupplierAgent struct {
	id       string
	world    *domain.WorldState
	bus      *bus.Bus
	log      activity.LogFunc
	rng      *rand.Rand
	interval time.Duration
}

func NewSupplierAgent(id string, world *domain.WorldState, b *bus.Bus, log activity.LogFunc, rng *rand.Rand, interval time.Duration) *SupplierAgent {
	a := &SupplierAgent{
		id:       id,
		world:    world,
		bus:      b,
		log:      log,
		rng:      rng,
		interval: interval,
	}

	b.Subscribe(domain.EventOrderPlaced, a.onOrderPlaced)

	return a
}

func (a *SupplierAgent) Name() string            { return "Supplier " + a.id }
func (a *SupplierAgent) Interval() time.Duration { return a.interval }

func (a *SupplierAgent) Start() {
	s := a.world.Suppliers[a.id]
	if s == nil {
		return
	}
	a.log(
		fmt.Sprintf("✅ Supplier Agent %s (%s) initialized - %d items, %d vehicles", a.id, s.Name, len(s.Inventory), s.Fleet.Vehicles),
		activity.Meta{"agent": "Supplier", "type": "INIT", "entityId": a.id},
	)
}

func (a *SupplierAgent) Tick() {
	s := a.world.Suppliers[a.id]
	if s == nil {
		return
	}

	a.advanceDeliveries(s)
	a.restockInventory(s)

	a.log(
		fmt.Sprintf("🚚 %s: %d active orders | %d/%d vehicles available | %d/%d daily capacity",
			s.Name, len(s.ActiveOrders), s.Fleet.Available, s.Fleet.Vehicles,
			s.Constraints.CurrentOrders, s.Constraints.MaxDailyOrders),
		activity.Meta{
			"agent": "Supplier", "type": "STATUS", "entityId": a.id,
			"activeOrders": len(s.ActiveOrders), "vehiclesAvailable": s.Fleet.Available,
		},
	)
}

// onOrderPlaced принимает или отклоняет заказ аптеки. Причины отказа:
// чужой поставщик, незнакомый препарат, исчерпаны лимит/склад/машины.
func (a *SupplierAgent) onOrderPlaced(payload any) {
	ev, ok := payload.(*domain.OrderPlaced)
	if !ok || ev.SupplierID != a.id {
		return
	}
	s := a.world.Suppliers[a.id]
	if s == nil {
		return
	}

	item := s.Inventory[ev.Medicine]
	reason := ""
	switch {
	case item == nil:
		reason = "item not stocked"
	case item.Stock < ev.Quantity:
		reason = fmt.Sprintf("insufficient stock (%d < %d)", item.Stock, ev.Quantity)
	case s.Constraints.CurrentOrders >= s.Constraints.MaxDailyOrders:
		reason = "daily order limit reached"
	case s.Fleet.Available == 0:
		reason = "no vehicles available"
	}
	if reason != "" {
		a.log(
			fmt.Sprintf("❌ %s: REJECTED order %s from %s (%s) - %s", s.Name, ev.OrderID, ev.PharmacyID, ev.Medicine, reason),
			activity.Meta{
				"agent": "Supplier", "type": "ORDER_REJECTED", "entityId": a.id,
				"orderId": ev.OrderID, "pharmacyId": ev.PharmacyID, "reason": reason,
			},
		)
		return
	}

	// Резервирование: склад списываем сразу, машина уходит в рейс.
	item.Stock -= ev.Quantity
	s.Fleet.Available--
	s.Fleet.InTransit++
	s.Constraints.CurrentOrders++

	s.ActiveOrders = append(s.ActiveOrders, &domain.SupplierOrder{
		ID:         ev.OrderID,
		PharmacyID: ev.PharmacyID,
		Medicine:   ev.Medicine,
		Quantity:   ev.Quantity,
		StepsLeft:  deliverySteps,
		Status:     "confirmed",
	})

	a.log(
		fmt.Sprintf("✅ %s: Confirmed order %s - %d units of %s for %s", s.Name, ev.OrderID, ev.Quantity, ev.Medicine, ev.PharmacyID),
		activity.Meta{
			"agent": "Supplier", "type": "ORDER_CONFIRMED", "entityId": a.id,
			"orderId": ev.OrderID, "pharmacyId": ev.PharmacyID, "medicine": ev.Medicine,
		},
	)

	a.bus.Publish(domain.EventOrderConfirmed, &domain.OrderConfirmed{
		OrderID:    ev.OrderID,
		SupplierID: a.id,
		PharmacyID: ev.PharmacyID,
		Medicine:   ev.Medicine,
		ETAHours:   s.Fleet.AvgDeliveryTime,
	})
}

// advanceDeliveries продвигает каждый активный заказ на шаг;
// дошедшие до нуля доставляются и освобождают машину.
func (a *SupplierAgent) advanceDeliveries(s *domain.Supplier) {
	remaining := s.ActiveOrders[:0]
	for _, o := range s.ActiveOrders {
		o.StepsLeft--
		if o.StepsLeft > 0 {
			o.Status = "delivering"
			remaining = append(remaining, o)
			continue
		}

		s.Fleet.InTransit = maxInt(0, s.Fleet.InTransit-1)
		s.Fleet.Available = minInt(s.Fleet.Vehicles, s.Fleet.Available+1)
		s.Constraints.CurrentOrders = maxInt(0, s.Constraints.CurrentOrders-1)

		a.log(
			fmt.Sprintf("📬 %s: Delivered %d units of %s to %s", s.Name, o.Quantity, o.Medicine, o.PharmacyID),
			activity.Meta{
				"agent": "Supplier", "type": "ORDER_DELIVERED", "entityId": a.id,
				"orderId": o.ID, "pharmacyId": o.PharmacyID, "medicine": o.Medicine,
			},
		)

		a.bus.Publish(domain.EventOrderDelivered, &domain.OrderDelivered{
			OrderID:    o.ID,
			SupplierID: a.id,
			PharmacyID: o.PharmacyID,
			Medicine:   o.Medicine,
			Quantity:   o.Quantity,
		})
	}
	s.ActiveOrders = remaining
}

// restockInventory - приток со складов производителей: изредка позиция
// получает ожидаемую поставку, Incoming перетекает в Stock.
func (a *SupplierAgent) restockInventory(s *domain.Supplier) {
	names := make([]string, 0, len(s.Inventory))
	for name := range s.Inventory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		item := s.Inventory[name]
		if item.Incoming > 0 && a.rng.Float64() < 0.2 {
			arrived := item.Incoming
			item.Stock += arrived
			item.Incoming = 0
			a.log(
				fmt.Sprintf("[Supplier %s] Inbound shipment arrived: %s +%d units", a.id, name, arrived),
				activity.Meta{"agent": "Supplier", "type": "RESTOCK", "entityId": a.id, "item": name},
			)
		}
	}
}
