package agents

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

const (
	// Занятость коек, выше которой публикуется риск перегрузки.
	hospitalOverloadThreshold = 0.85
	// Доля свободных ИВЛ, ниже которой публикуется дефицит оборудования.
	ventilatorShortageRatio = 0.1
)

// HospitalAgent симулирует поток пациентов одной больницы и реагирует
// на вспышки в своей зоне подготовкой профильных отделений.
type HospitalAgent struct {
	id       string
	world    *domain.WorldState
	bus      *bus.Bus
	log      activity.LogFunc
	rng      *rand.Rand
	interval time.Duration

	// Счетчик тиков для редких записей в окна истории.
	tickCount int
}

func NewHospitalAgent(id string, world *domain.WorldState, b *bus.Bus, log activity.LogFunc, rng *rand.Rand, interval time.Duration) *HospitalAgent {
	a := &HospitalAgent{
		id:       id,
		world:    world,
		bus:      b,
		log:      log,
		rng:      rng,
		interval: interval,
	}

	// Больница слушает все вспышки, но реагирует только на свою зону.
	for _, disease := range domain.Diseases {
		d := disease
		b.Subscribe(domain.OutbreakEvent(d), func(payload any) { a.onOutbreak(d, payload) })
	}

	return a
}

func (a *HospitalAgent) Name() string            { return "Hospital " + a.id }
func (a *HospitalAgent) Interval() time.Duration { return a.interval }

func (a *HospitalAgent) Start() {
	h := a.world.Hospitals[a.id]
	if h == nil {
		return
	}
	_, total, _ := h.BedOccupancy()
	a.log(
		fmt.Sprintf("✅ Hospital Agent %s (%s) initialized - %d beds in %s", a.id, h.Name, total, h.Zone),
		activity.Meta{"agent": "Hospital", "type": "INIT", "entityId": a.id},
	)
}

func (a *HospitalAgent) Tick() {
	h := a.world.Hospitals[a.id]
	if h == nil {
		return
	}

	a.simulatePatientFlow(h)

	used, total, occupancy := h.BedOccupancy()

	emoji := "🟢"
	if occupancy > hospitalOverloadThreshold {
		emoji = "🔴"
	} else if occupancy > 0.7 {
		emoji = "🟡"
	}
	a.log(
		fmt.Sprintf("%s %s: %d/%d beds occupied (%.0f%%) | Inflow: %d/hr | Emergency: %d",
			emoji, h.Name, used, total, occupancy*100, h.PatientMetrics.InflowPerHour, h.PatientMetrics.EmergencyCases),
		activity.Meta{
			"agent": "Hospital", "type": "STATUS", "entityId": a.id,
			"occupancy": occupancy, "bedsUsed": used, "bedsTotal": total,
		},
	)

	a.checkOverload(h, occupancy)
	a.checkEquipment(h)
}

// simulatePatientFlow продвигает счетчики коек и оборудования.
// Дельта смещена вверх при высоком входящем потоке.
func (a *HospitalAgent) simulatePatientFlow(h *domain.Hospital) {
	general := h.Beds["general"]
	if general != nil {
		previous := general.Used

		// -3..+3 плюс смещение от потока пациентов.
		delta := a.rng.Intn(7) - 3
		if h.PatientMetrics.InflowPerHour > 15 {
			delta++
		}
		general.Used = clamp(general.Used+delta, 0, general.Total)

		if delta > 0 {
			h.PatientMetrics.AdmissionsToday += delta
		}

		a.tickCount++
		if a.tickCount >= historyPushEvery {
			a.tickCount = 0
			h.History.BedsUsed = domain.PushWindow(h.History.BedsUsed, previous, domain.TestHistoryLen)
			h.History.PatientInflow = domain.PushWindow(h.History.PatientInflow, h.PatientMetrics.InflowPerHour, domain.TestHistoryLen)
			h.History.EmergencyCases = domain.PushWindow(h.History.EmergencyCases, h.PatientMetrics.EmergencyCases, domain.TestHistoryLen)
		}
	}

	// Дрейф потока: 10-25 пациентов в час, экстренные 0-9.
	a.driftMetric(&h.PatientMetrics.InflowPerHour, 10, 25)
	a.driftMetric(&h.PatientMetrics.EmergencyCases, 0, 9)

	if icu := h.Beds["icu"]; icu != nil {
		icu.Used = clamp(icu.Used+a.rng.Intn(3)-1, 0, icu.Total)
	}

	// ИВЛ следуют за реанимацией с небольшим собственным шумом.
	if v := h.Equipment["ventilators"]; v != nil {
		v.InUse = clamp(v.InUse+a.rng.Intn(3)-1, 0, v.Total-v.Maintenance)
		v.Available = v.Total - v.InUse - v.Maintenance
	}
}

// driftMetric пошагово сдвигает метрику на -1..+1 в пределах [lo, hi].
func (a *HospitalAgent) driftMetric(v *int, lo, hi int) {
	*v = clamp(*v+a.rng.Intn(3)-1, lo, hi)
}

func (a *HospitalAgent) checkOverload(h *domain.Hospital, occupancy float64) {
	if occupancy <= hospitalOverloadThreshold {
		return
	}

	a.log(
		fmt.Sprintf("🚨 %s: OVERLOAD RISK! Bed occupancy at %.0f%%", h.Name, occupancy*100),
		activity.Meta{"agent": "Hospital", "type": "OVERLOAD_RISK", "entityId": a.id, "occupancy": occupancy},
	)

	a.bus.Publish(domain.EventHospitalOverload, &domain.HospitalOverload{
		HospitalID: a.id,
		Name:       h.Name,
		Zone:       h.Zone,
		Occupancy:  occupancy,
	})
}

func (a *HospitalAgent) checkEquipment(h *domain.Hospital) {
	v := h.Equipment["ventilators"]
	if v == nil || v.Total == 0 {
		return
	}

	if float64(v.Available)/float64(v.Total) >= ventilatorShortageRatio {
		return
	}

	a.log(
		fmt.Sprintf("⚠️ %s: Ventilator shortage - only %d of %d available", h.Name, v.Available, v.Total),
		activity.Meta{"agent": "Hospital", "type": "EQUIPMENT_SHORTAGE", "entityId": a.id, "available": v.Available},
	)

	a.bus.Publish(domain.EventEquipmentShortage, &domain.EquipmentShortage{
		HospitalID: a.id,
		Zone:       h.Zone,
		Equipment:  "ventilators",
	})
}

// onOutbreak готовит больницу к вспышке в ее зоне: резерв коек,
// оповещение персонала, отметка готовности по болезни.
func (a *HospitalAgent) onOutbreak(disease string, payload any) {
	h := a.world.Hospitals[a.id]
	if h == nil {
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

	if zone != h.Zone {
		return
	}

	prep := h.DiseasePrep[disease]
	if prep == nil {
		prep = &domain.DiseasePrep{}
		h.DiseasePrep[disease] = prep
	}
	alreadyPrepared := prep.Prepared
	prep.Prepared = true
	prep.WardReady = true
	prep.StaffAlerted = true

	// Резервируем немного изоляционных коек под ожидаемый наплыв.
	if iso := h.Beds["isolation"]; iso != nil {
		free := iso.Total - iso.Used - iso.Reserved
		if free > 0 {
			iso.Reserved += minInt(3, free)
		}
	}

	if alreadyPrepared {
		return
	}

	a.log(
		fmt.Sprintf("🏥 %s: Preparing for %s outbreak - wards ready, staff alerted", h.Name, strings.ToUpper(disease)),
		activity.Meta{"agent": "Hospital", "type": "PREPARATION", "entityId": a.id, "disease": disease, "zone": zone},
	)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
