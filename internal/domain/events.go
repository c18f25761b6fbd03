package domain

import "strings"

// Типы событий шины. Ключ - строка, как в протоколе фронтенда.
const (
	EventHospitalOverload  = "HOSPITAL_OVERLOAD_RISK"
	EventMedicineShortage  = "MEDICINE_SHORTAGE_RISK"
	EventLabCapacity       = "LAB_CAPACITY_WARNING"
	EventEquipmentShortage = "EQUIPMENT_SHORTAGE"
	EventOrderPlaced       = "MEDICINE_ORDER_PLACED"
	EventOrderConfirmed    = "MEDICINE_ORDER_CONFIRMED"
	EventOrderDelivered    = "MEDICINE_ORDER_DELIVERED"
)

// Diseases - отслеживаемые болезни. Порядок фиксирован, чтобы тики
// при одном сиде были воспроизводимы (итерация по map - нет).
var Diseases = []string{"dengue", "malaria", "typhoid", "influenza", "covid"}

// OutbreakEvent строит тип события вспышки для болезни,
// например "DENGUE_OUTBREAK_PREDICTED".
func OutbreakEvent(disease string) string {
	return strings.ToUpper(disease) + "_OUTBREAK_PREDICTED"
}

// OutbreakPrediction - полезная нагрузка события вспышки.
type OutbreakPrediction struct {
	LabID          string    `json:"labId"`
	LabName        string    `json:"labName"`
	Zone           string    `json:"zone"`
	Disease        string    `json:"disease"`
	Today          int       `json:"today"`
	Avg            float64   `json:"avg"`
	GrowthRate     float64   `json:"growthRate"` // доля, не проценты
	RiskLevel      RiskLevel `json:"riskLevel"`
	Confidence     float64   `json:"confidence"`
	PositiveRate   float64   `json:"positiveRate"`
	PredictedCases int       `json:"predictedCases"`
}

// LegacyOutbreak - укороченная форма события вспышки, оставленная для
// обратной совместимости. Публикуется только для денге, вслед за полной.
type LegacyOutbreak struct {
	Zone  string  `json:"zone"`
	Today int     `json:"today"`
	Avg   float64 `json:"avg"`
}

// LabCapacityWarning - лаборатория близка к пределу пропускной способности.
type LabCapacityWarning struct {
	LabID         string  `json:"labId"`
	Zone          string  `json:"zone"`
	Utilization   float64 `json:"utilization"`
	TotalTests    int     `json:"totalTests"`
	TotalCapacity int     `json:"totalCapacity"`
	QueueLength   int     `json:"queueLength"`
}

// HospitalOverload - больница на грани переполнения.
type HospitalOverload struct {
	HospitalID string  `json:"hospitalId"`
	Name       string  `json:"name"`
	Zone       string  `json:"zone"`
	Occupancy  float64 `json:"occupancy"`
}

// MedicineShortage - запас препарата у аптеки у точки перезаказа.
type MedicineShortage struct {
	PharmacyID   string `json:"pharmacyId"`
	Medicine     string `json:"medicine"`
	Zone         string `json:"zone"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorderPoint"`
	Urgency      string `json:"urgency"`     // medium, high
	Criticality  string `json:"criticality"` // из карточки препарата
}

// EquipmentShortage - дефицит оборудования в больнице.
type EquipmentShortage struct {
	HospitalID string `json:"hospitalId"`
	Zone       string `json:"zone"`
	Equipment  string `json:"equipment"`
}

// OrderPlaced - аптека разместила заказ у поставщика.
type OrderPlaced struct {
	OrderID    string `json:"orderId"`
	PharmacyID string `json:"pharmacyId"`
	SupplierID string `json:"supplierId"`
	Medicine   string `json:"medicine"`
	Quantity   int    `json:"quantity"`
	Zone       string `json:"zone"`
}

// OrderConfirmed - поставщик принял заказ в работу.
type OrderConfirmed struct {
	OrderID    string  `json:"orderId"`
	SupplierID string  `json:"supplierId"`
	PharmacyID string  `json:"pharmacyId"`
	Medicine   string  `json:"medicine"`
	ETAHours   float64 `json:"etaHours"`
}

// OrderDelivered - заказ доставлен аптеке.
type OrderDelivered struct {
	OrderID    string `json:"orderId"`
	SupplierID string `json:"supplierId"`
	PharmacyID string `json:"pharmacyId"`
	Medicine   string `json:"medicine"`
	Quantity   int    `json:"quantity"`
}
