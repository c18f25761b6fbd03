package domain

import "time"

// Medicine - позиция аптечного склада.
type Medicine struct {
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorderPoint"`
	DailyUsage   int    `json:"dailyUsage"`
	Price        int    `json:"price"`
	Criticality  string `json:"criticality"` // low, medium, high
	ExpiryDate   string `json:"expiryDate"`
	Supplier     string `json:"supplier"`
}

// PharmacyMetrics - операционные метрики аптеки.
type PharmacyMetrics struct {
	PrescriptionsFilled int `json:"prescriptionsFilled"`
	AvgWaitTime         int `json:"avgWaitTime"` // минуты
	CustomersServed     int `json:"customersServed"`
	RevenueToday        int `json:"revenueToday"`
}

// PharmacyOrder - исходящий заказ аптеки поставщику.
type PharmacyOrder struct {
	ID         string    `json:"id"`
	Medicine   string    `json:"medicine"`
	Quantity   int       `json:"quantity"`
	SupplierID string    `json:"supplierId"`
	Status     string    `json:"status"` // pending, confirmed
	PlacedAt   time.Time `json:"placedAt"`
}

type Pharmacy struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Zone        string      `json:"zone"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`

	Medicines map[string]*Medicine `json:"medicines"`
	Metrics   PharmacyMetrics      `json:"metrics"`

	// Упорядоченная последовательность незакрытых заказов.
	PendingOrders []*PharmacyOrder `json:"pendingOrders"`

	OperatingHours string `json:"operatingHours"`
}

// HasPendingOrder сообщает, есть ли уже незакрытый заказ на препарат.
// Нужен, чтобы агент не плодил дубликаты, пока поставка в пути.
func (p *Pharmacy) HasPendingOrder(medicine string) bool {
	for _, o := range p.PendingOrders {
		if o.Medicine == medicine {
			return true
		}
	}
	return false
}

// RemovePendingOrder удаляет заказ по ID, сохраняя порядок остальных.
func (p *Pharmacy) RemovePendingOrder(orderID string) {
	for i, o := range p.PendingOrders {
		if o.ID == orderID {
			p.PendingOrders = append(p.PendingOrders[:i], p.PendingOrders[i+1:]...)
			return
		}
	}
}
