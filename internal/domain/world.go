package domain

import "sync"

// Weather - погодные условия одной зоны.
type Weather struct {
	Temperature int    `json:"temperature"` // Цельсий
	Humidity    int    `json:"humidity"`
	Forecast    string `json:"forecast"`
	AQIIndex    int    `json:"aqiIndex"`
	UVIndex     int    `json:"uvIndex"`
	Rainfall    int    `json:"rainfall"` // мм
	WindSpeed   int    `json:"windSpeed"`
}

// CityEvent - запланированное массовое мероприятие (фактор риска).
type CityEvent struct {
	Type      string `json:"type"`
	Date      string `json:"date"`
	CrowdSize int    `json:"crowdSize"`
	Zone      string `json:"zone"`
}

// Environment - внешние факторы: погода, сезон, качество воды.
type Environment struct {
	Weather      map[string]*Weather `json:"weather"`
	Season       string              `json:"season"`
	CityEvents   []CityEvent         `json:"cityEvents"`
	WaterQuality map[string]string   `json:"waterQuality"`
}

// WorldState - единый разделяемый агрегат состояния всей сети.
// Живет весь процесс, сбрасывается только рестартом.
//
// Дисциплина владения: запись каждой сущности мутирует только ее собственный
// агент; агрегаты City - только CityAgent. Тики агентов выполняются под
// общим мьютексом (cron гоняет задания в отдельных горутинах), поэтому
// каждый тик атомарен: run-to-completion, как в однопоточном event loop.
type WorldState struct {
	mu sync.Mutex

	Hospitals  map[string]*Hospital `json:"hospitals"`
	Labs       map[string]*Lab      `json:"labs"`
	Pharmacies map[string]*Pharmacy `json:"pharmacies"`
	Suppliers  map[string]*Supplier `json:"suppliers"`

	Environment *Environment `json:"environment"`
	City        *City        `json:"city"`
}

// Lock захватывает мьютекс мира на время одного тика/снапшота.
func (w *WorldState) Lock() { w.mu.Lock() }

// Unlock освобождает мьютекс мира.
func (w *WorldState) Unlock() { w.mu.Unlock() }

// ZoneHospitalNames возвращает имена больниц зоны (для координационных логов).
func (w *WorldState) ZoneHospitalNames(zone string) []string {
	var names []string
	for id, h := range w.Hospitals {
		if h.Zone == zone {
			if h.Name != "" {
				names = append(names, h.Name)
			} else {
				names = append(names, id)
			}
		}
	}
	return names
}

// ZonePharmacyNames возвращает имена аптек зоны.
func (w *WorldState) ZonePharmacyNames(zone string) []string {
	var names []string
	for id, p := range w.Pharmacies {
		if p.Zone == zone {
			if p.Name != "" {
				names = append(names, p.Name)
			} else {
				names = append(names, id)
			}
		}
	}
	return names
}
