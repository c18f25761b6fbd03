package domain

// Coordinates - географическая привязка объекта.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BedGroup - койки одной категории (general, icu, isolation...).
type BedGroup struct {
	Total    int `json:"total"`
	Used     int `json:"used"`
	Reserved int `json:"reserved"`
}

// EquipmentGroup - оборудование одной категории.
// Инвариант (best-effort): InUse + Available <= Total.
type EquipmentGroup struct {
	Total       int `json:"total"`
	InUse       int `json:"inUse"`
	Available   int `json:"available"`
	Maintenance int `json:"maintenance"`
}

// StaffGroup - персонал одной роли.
type StaffGroup struct {
	Total     int `json:"total"`
	OnDuty    int `json:"onDuty"`
	Available int `json:"available"`
	OnLeave   int `json:"onLeave"`
}

// PatientMetrics - метрики потока пациентов.
type PatientMetrics struct {
	InflowPerHour    int `json:"inflowPerHour"`
	AvgStayDuration  int `json:"avgStayDuration"` // часы
	DischargesPerDay int `json:"dischargesPerDay"`
	EmergencyCases   int `json:"emergencyCases"`
	Outpatients      int `json:"outpatients"`
	AdmissionsToday  int `json:"admissionsToday"`
}

// Department - состояние отделения.
type Department struct {
	Status   string `json:"status"` // normal, busy, crowded
	WaitTime int    `json:"waitTime"`
	Queue    int    `json:"queue"`
}

// DiseasePrep - готовность к конкретной болезни.
type DiseasePrep struct {
	Prepared      bool   `json:"prepared"`
	WardReady     bool   `json:"wardReady"`
	MedicineStock string `json:"medicineStock"` // low, adequate, high
	StaffAlerted  bool   `json:"staffAlerted"`
}

// HospitalHistory - скользящие окна последних 7 значений.
type HospitalHistory struct {
	BedsUsed       []int `json:"bedsUsed"`
	PatientInflow  []int `json:"patientInflow"`
	EmergencyCases []int `json:"emergencyCases"`
}

type Hospital struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Zone        string      `json:"zone"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`

	Beds        map[string]*BedGroup       `json:"beds"`
	Equipment   map[string]*EquipmentGroup `json:"equipment"`
	Staff       map[string]*StaffGroup     `json:"staff"`
	Specialists map[string]int             `json:"specialists"`

	PatientMetrics PatientMetrics          `json:"patientMetrics"`
	Departments    map[string]*Department  `json:"departments"`
	DiseasePrep    map[string]*DiseasePrep `json:"diseasePrep"`
	History        HospitalHistory         `json:"history"`
}

// BedOccupancy возвращает занятость по всем категориям коек.
// При нулевой общей емкости отношение определяется как 0 (защита от NaN).
func (h *Hospital) BedOccupancy() (used, total int, ratio float64) {
	for _, b := range h.Beds {
		total += b.Total
		used += b.Used
	}
	if total == 0 {
		return used, total, 0
	}
	return used, total, float64(used) / float64(total)
}
