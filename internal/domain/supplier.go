package domain

// InventoryItem - позиция склада поставщика.
type InventoryItem struct {
	Stock       int    `json:"stock"`
	Incoming    int    `json:"incoming"`
	DeliveryETA string `json:"deliveryEta"`
	Cost        int    `json:"cost"`
}

// Fleet - парк доставки поставщика.
type Fleet struct {
	Vehicles        int     `json:"vehicles"`
	Available       int     `json:"available"`
	InTransit       int     `json:"inTransit"`
	AvgDeliveryTime float64 `json:"avgDeliveryTime"` // часы по городу
}

// SupplierOrder - принятый заказ в обработке.
// StepsLeft - сколько тиков осталось до доставки.
type SupplierOrder struct {
	ID         string `json:"id"`
	PharmacyID string `json:"pharmacyId"`
	Medicine   string `json:"medicine"`
	Quantity   int    `json:"quantity"`
	StepsLeft  int    `json:"stepsLeft"`
	Status     string `json:"status"` // confirmed, delivering
}

// Constraints - операционные ограничения поставщика.
type Constraints struct {
	MaxDailyOrders int    `json:"maxDailyOrders"`
	CurrentOrders  int    `json:"currentOrders"`
	WorkingHours   string `json:"workingHours"`
}

type Supplier struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Zone        string      `json:"zone"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`

	Inventory map[string]*InventoryItem `json:"inventory"`
	Fleet     Fleet                     `json:"fleet"`

	// Упорядоченная последовательность активных заказов.
	ActiveOrders []*SupplierOrder `json:"activeOrders"`

	Constraints Constraints `json:"constraints"`
}
