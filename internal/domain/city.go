package domain

import "time"

// MaxActiveAlerts - емкость журнала активных алертов города.
const MaxActiveAlerts = 50

// Zone - географическая зона города и ее состав.
type Zone struct {
	Name        string      `json:"name"`
	Population  int         `json:"population"`
	Area        string      `json:"area"`
	Hospitals   []string    `json:"hospitals"`
	Labs        []string    `json:"labs"`
	Pharmacies  []string    `json:"pharmacies"`
	Coordinates Coordinates `json:"coordinates"`
}

// ZoneRisk - риски зоны по отдельным факторам и производный общий уровень.
type ZoneRisk struct {
	Factors    map[string]RiskLevel `json:"factors"` // болезни + heatwave, waterborne
	AirQuality string               `json:"airQuality"`
	Overall    RiskLevel            `json:"overall"`
}

// Recompute пересчитывает общий риск зоны по правилу:
// >=2 повышенных -> high; >=1 повышенный или >=2 medium -> medium; иначе low.
func (zr *ZoneRisk) Recompute() {
	highCount, mediumCount := 0, 0
	for _, r := range zr.Factors {
		if r.Elevated() {
			highCount++
		} else if r == RiskMedium {
			mediumCount++
		}
	}

	switch {
	case highCount >= 2:
		zr.Overall = RiskHigh
	case highCount >= 1 || mediumCount >= 2:
		zr.Overall = RiskMedium
	default:
		zr.Overall = RiskLow
	}
}

// Alert - запись журнала активных алертов.
type Alert struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Zone       string    `json:"zone"`
	Disease    string    `json:"disease,omitempty"`
	EntityID   string    `json:"entityId,omitempty"` // источник: больница/аптека/лаборатория
	Medicine   string    `json:"medicine,omitempty"`
	Equipment  string    `json:"equipment,omitempty"`
	Message    string    `json:"message"`
	RiskLevel  RiskLevel `json:"riskLevel,omitempty"`
	Severity   string    `json:"severity,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"` // active
}

// DiseaseStat - общегородская статистика по болезни.
type DiseaseStat struct {
	ActiveCases int `json:"activeCases"`
	Deaths      int `json:"deaths"`
	Recovered   int `json:"recovered"`
	NewToday    int `json:"newToday"`
}

// ResourcePool - свернутый общегородской ресурс (койки, ИВЛ...).
type ResourcePool struct {
	Total       int     `json:"total"`
	Used        int     `json:"used"`
	Available   int     `json:"available"`
	Utilization float64 `json:"utilization"`
}

// FleetPool - свернутый парк скорых.
type FleetPool struct {
	Total       int     `json:"total"`
	Available   int     `json:"available"`
	Busy        int     `json:"busy"`
	Utilization float64 `json:"utilization"`
}

// StaffPool - свернутый персонал.
type StaffPool struct {
	Total     int `json:"total"`
	OnDuty    int `json:"onDuty"`
	Available int `json:"available"`
}

// TotalResources - общегородская свертка ресурсов всех больниц.
// Пересчитывается целиком на каждом тике CityAgent, не инкрементально.
type TotalResources struct {
	Beds        ResourcePool `json:"beds"`
	ICUBeds     ResourcePool `json:"icuBeds"`
	Ventilators ResourcePool `json:"ventilators"`
	Ambulances  FleetPool    `json:"ambulances"`
	Doctors     StaffPool    `json:"doctors"`
	Nurses      StaffPool    `json:"nurses"`
}

// SystemMetrics - метрики работы самой сети координации.
type SystemMetrics struct {
	AvgResponseTime    int       `json:"avgResponseTime"` // минуты от алерта до действия
	AlertsToday        int       `json:"alertsToday"`
	CoordinationsToday int       `json:"coordinationsToday"`
	StockoutsPrevented int       `json:"stockoutsPrevented"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

// City - синглтон-агрегат. Мутируется только CityAgent-ом,
// читается всеми, кому нужен контекст зоны.
type City struct {
	Name       string `json:"name"`
	Population int    `json:"population"`

	Zones map[string]*Zone `json:"zones"`

	ActiveAlerts []*Alert `json:"activeAlerts"`

	RiskZones    map[string]*ZoneRisk    `json:"riskZones"`
	DiseaseStats map[string]*DiseaseStat `json:"diseaseStats"`

	TotalResources TotalResources `json:"totalResources"`
	SystemMetrics  SystemMetrics  `json:"systemMetrics"`
}

// PushAlert добавляет алерт и применяет лимит журнала (FIFO, старые первыми).
func (c *City) PushAlert(a *Alert) {
	c.ActiveAlerts = append(c.ActiveAlerts, a)
	if len(c.ActiveAlerts) > MaxActiveAlerts {
		c.ActiveAlerts = c.ActiveAlerts[len(c.ActiveAlerts)-MaxActiveAlerts:]
	}
	c.SystemMetrics.AlertsToday++
}

// EnsureRiskZone гарантирует наличие записи риска для зоны (дефолт - все low).
func (c *City) EnsureRiskZone(zone string) *ZoneRisk {
	if zr, ok := c.RiskZones[zone]; ok {
		return zr
	}
	zr := &ZoneRisk{
		Factors: map[string]RiskLevel{
			"dengue":     RiskLow,
			"malaria":    RiskLow,
			"covid":      RiskLow,
			"typhoid":    RiskLow,
			"influenza":  RiskLow,
			"heatwave":   RiskLow,
			"waterborne": RiskLow,
		},
		AirQuality: "good",
		Overall:    RiskLow,
	}
	c.RiskZones[zone] = zr
	return zr
}
