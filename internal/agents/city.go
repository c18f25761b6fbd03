package agents

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

const (
	// Занятость, выше которой перегрузка считается критической.
	criticalOccupancy = 0.95
	// Занятость, ниже которой больница годится для перенаправления пациентов.
	redirectOccupancy = 0.7
	// Оценка новых случаев, если событие вспышки не принесло прогноз.
	defaultPredictedCases = 20
)

// CityAgent - синглтон-координатор: агрегирует общегородские ресурсы,
// ведет риски зон и журнал активных алертов. Подписан на все события
// вспышек, перегрузок и дефицитов.
type CityAgent struct {
	world    *domain.WorldState
	bus      *bus.Bus
	log      activity.LogFunc
	interval time.Duration
}

func NewCityAgent(world *domain.WorldState, b *bus.Bus, log activity.LogFunc, interval time.Duration) *CityAgent {
	a := &CityAgent{
		world:    world,
		bus:      b,
		log:      log,
		interval: interval,
	}

	// Подписки оформляются при конструировании, до старта таймеров.
	for _, disease := range domain.Diseases {
		d := disease
		b.Subscribe(domain.OutbreakEvent(d), func(payload any) { a.onOutbreak(d, payload) })
	}
	b.Subscribe(domain.EventHospitalOverload, a.onHospitalOverload)
	b.Subscribe(domain.EventMedicineShortage, a.onMedicineShortage)
	b.Subscribe(domain.EventLabCapacity, a.onLabCapacity)
	b.Subscribe(domain.EventEquipmentShortage, a.onEquipmentShortage)
	b.Subscribe(domain.EventOrderConfirmed, a.onOrderConfirmed)
	b.Subscribe(domain.EventOrderDelivered, a.onOrderDelivered)

	return a
}

func (a *CityAgent) Name() string            { return "City" }
func (a *CityAgent) Interval() time.Duration { return a.interval }

func (a *CityAgent) Start() {
	city := a.world.City
	facilities := len(a.world.Hospitals) + len(a.world.Labs) + len(a.world.Pharmacies) + len(a.world.Suppliers)
	a.log(
		fmt.Sprintf("✅ City Agent initialized - Coordinating citywide healthcare across %d zones with %d facilities",
			len(city.Zones), facilities),
		activity.Meta{"agent": "City", "type": "INIT", "entityId": "CITY"},
	)
}

func (a *CityAgent) Tick() {
	city := a.world.City
	if city == nil {
		return
	}

	a.updateCityMetrics()
	city.SystemMetrics.LastUpdated = time.Now()

	totalActiveCases := 0
	for _, d := range city.DiseaseStats {
		totalActiveCases += d.ActiveCases
	}

	beds := city.TotalResources.Beds
	bedUtilization := int(math.Round(beds.Utilization * 100))

	highRiskZones, _, overall := a.assessCityRisk()

	if len(highRiskZones) > 0 {
		a.log(
			fmt.Sprintf("🏙️ City Health Status: 🔴 %d HIGH-RISK zones (%s) | %d active cases | %d/%d beds (%d%% used) | %d alerts",
				len(highRiskZones), strings.Join(highRiskZones, ", "), totalActiveCases,
				beds.Available, beds.Total, bedUtilization, len(city.ActiveAlerts)),
			activity.Meta{
				"agent": "City", "type": "STATUS", "entityId": "CITY",
				"highRiskZones": highRiskZones, "overallRisk": overall,
				"activeAlerts": len(city.ActiveAlerts), "totalCases": totalActiveCases,
				"bedUtilization": bedUtilization,
			},
		)
	} else {
		a.log(
			fmt.Sprintf("🏙️ City Health Status: 🟢 All zones STABLE | %d active cases | %d/%d beds available | %d alerts",
				totalActiveCases, beds.Available, beds.Total, len(city.ActiveAlerts)),
			activity.Meta{
				"agent": "City", "type": "STATUS", "entityId": "CITY",
				"overallRisk": overall, "totalCases": totalActiveCases,
			},
		)
	}
}

// updateCityMetrics пересчитывает общегородскую свертку ресурсов с нуля
// по всем больницам (не инкрементально - дешевле и нечему разъезжаться).
func (a *CityAgent) updateCityMetrics() {
	city := a.world.City

	var totalBeds, usedBeds int
	var totalICU, usedICU int
	var totalVents, usedVents int
	var totalAmb, availAmb int
	var totalDoctors, doctorsOnDuty int
	var totalNurses, nursesOnDuty int

	for _, h := range a.world.Hospitals {
		for _, b := range h.Beds {
			totalBeds += b.Total
			usedBeds += b.Used
		}
		if icu := h.Beds["icu"]; icu != nil {
			totalICU += icu.Total
			usedICU += icu.Used
		}
		if v := h.Equipment["ventilators"]; v != nil {
			totalVents += v.Total
			usedVents += v.InUse
		}
		if amb := h.Equipment["ambulances"]; amb != nil {
			totalAmb += amb.Total
			availAmb += amb.Available
		}
		if d := h.Staff["doctors"]; d != nil {
			totalDoctors += d.Total
			doctorsOnDuty += d.OnDuty
		}
		if n := h.Staff["nurses"]; n != nil {
			totalNurses += n.Total
			nursesOnDuty += n.OnDuty
		}
	}

	city.TotalResources = domain.TotalResources{
		Beds:        pool(totalBeds, usedBeds),
		ICUBeds:     pool(totalICU, usedICU),
		Ventilators: pool(totalVents, usedVents),
		Ambulances: domain.FleetPool{
			Total:       totalAmb,
			Available:   availAmb,
			Busy:        totalAmb - availAmb,
			Utilization: ratio(totalAmb-availAmb, totalAmb),
		},
		Doctors: domain.StaffPool{Total: totalDoctors, OnDuty: doctorsOnDuty, Available: doctorsOnDuty},
		Nurses:  domain.StaffPool{Total: totalNurses, OnDuty: nursesOnDuty, Available: nursesOnDuty},
	}
}

func pool(total, used int) domain.ResourcePool {
	return domain.ResourcePool{
		Total:       total,
		Used:        used,
		Available:   total - used,
		Utilization: ratio(used, total),
	}
}

// ratio - деление с защитой: нулевой знаменатель дает 0, а не NaN.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// assessCityRisk классифицирует зоны и общий риск города.
// Имена зон отсортированы, чтобы статусные строки были стабильны.
func (a *CityAgent) assessCityRisk() (highRiskZones, mediumRiskZones []string, overall domain.RiskLevel) {
	city := a.world.City

	names := make([]string, 0, len(city.RiskZones))
	for name := range city.RiskZones {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		zr := city.RiskZones[name]

		hasHigh, hasMedium := false, false
		for _, r := range zr.Factors {
			if r.Elevated() {
				hasHigh = true
			} else if r == domain.RiskMedium {
				hasMedium = true
			}
		}

		switch {
		case zr.Overall == domain.RiskHigh || hasHigh:
			highRiskZones = append(highRiskZones, name)
		case zr.Overall == domain.RiskMedium || hasMedium:
			mediumRiskZones = append(mediumRiskZones, name)
		}
	}

	switch {
	case len(highRiskZones) > 0:
		overall = domain.RiskHigh
	case len(mediumRiskZones) > 1:
		overall = domain.RiskMedium
	default:
		overall = domain.RiskLow
	}
	return highRiskZones, mediumRiskZones, overall
}

// onOutbreak обрабатывает событие вспышки (полный или легаси-формат).
func (a *CityAgent) onOutbreak(disease string, payload any) {
	city := a.world.City

	var zone, labID string
	riskLevel := domain.RiskHigh // дефолт, если событие не принесло уровень
	predicted := defaultPredictedCases

	switch ev := payload.(type) {
	case *domain.OutbreakPrediction:
		zone = ev.Zone
		labID = ev.LabID
		if ev.RiskLevel != "" {
			riskLevel = ev.RiskLevel
		}
		if ev.PredictedCases > 0 {
			predicted = ev.PredictedCases
		}
	case *domain.LegacyOutbreak:
		zone = ev.Zone
	default:
		a.log(
			fmt.Sprintf("[CityAgent] Dropped malformed outbreak event for %s: %T", disease, payload),
			activity.Meta{"agent": "City", "type": "ERROR", "disease": disease},
		)
		return
	}

	zr := city.EnsureRiskZone(zone)
	zr.Factors[disease] = riskLevel
	zr.Recompute()

	city.PushAlert(&domain.Alert{
		ID:        uuid.NewString(),
		Type:      strings.ToUpper(disease) + "_OUTBREAK",
		Disease:   disease,
		Zone:      zone,
		RiskLevel: riskLevel,
		Message:   fmt.Sprintf("%s outbreak predicted in %s", strings.ToUpper(disease), zone),
		Timestamp: time.Now(),
		Status:    "active",
	})

	a.log(
		fmt.Sprintf("[CityAgent] %s outbreak alert in %s. Risk level: %s. Lab %s detected pattern.",
			strings.ToUpper(disease), zone, riskLevel, labID),
		activity.Meta{"agent": "City", "type": "OUTBREAK_ALERT", "disease": disease, "zone": zone, "riskLevel": riskLevel},
	)

	if stat := city.DiseaseStats[disease]; stat != nil {
		stat.NewToday += predicted
		stat.ActiveCases += int(math.Round(float64(predicted) * 0.8))
	}
}

// onHospitalOverload фиксирует алерт и подбирает больницы для
// перенаправления. Рекомендация чисто совещательная: никакого реального
// перемещения пациентов не моделируется.
func (a *CityAgent) onHospitalOverload(payload any) {
	ev, ok := payload.(*domain.HospitalOverload)
	if !ok {
		return
	}
	city := a.world.City

	severity := "high"
	if ev.Occupancy > criticalOccupancy {
		severity = "critical"
	}

	name := ev.Name
	if name == "" {
		name = ev.HospitalID
	}

	city.PushAlert(&domain.Alert{
		ID:        uuid.NewString(),
		Type:      "HOSPITAL_OVERLOAD",
		Zone:      ev.Zone,
		EntityID:  ev.HospitalID,
		Message:   fmt.Sprintf("%s overload risk (%.0f%% occupancy)", name, ev.Occupancy*100),
		Severity:  severity,
		Timestamp: time.Now(),
		Status:    "active",
	})

	a.log(
		fmt.Sprintf("[CityAgent] Hospital overload: %s in %s at %.0f%% capacity", name, ev.Zone, ev.Occupancy*100),
		activity.Meta{"agent": "City", "type": "OVERLOAD_ALERT", "hospitalId": ev.HospitalID, "zone": ev.Zone, "occupancy": ev.Occupancy},
	)

	a.suggestPatientRedirection(ev.HospitalID)
}

func (a *CityAgent) suggestPatientRedirection(overloadedID string) {
	var available []string
	for id, h := range a.world.Hospitals {
		if id == overloadedID {
			continue
		}
		if _, _, occupancy := h.BedOccupancy(); occupancy < redirectOccupancy {
			available = append(available, id)
		}
	}
	sort.Strings(available)

	if len(available) == 0 {
		return
	}

	a.log(
		fmt.Sprintf("[CityAgent] Recommendation: Redirect patients from %s to %s",
			overloadedID, strings.Join(available, ", ")),
		activity.Meta{"agent": "City", "type": "REDIRECT_SUGGESTION", "from": overloadedID, "to": available},
	)
	a.world.City.SystemMetrics.CoordinationsToday++
}

// onMedicineShortage фильтрует шум: алерт заводится только для высокой
// срочности или критичности. Это осознанная политика, не баг.
func (a *CityAgent) onMedicineShortage(payload any) {
	ev, ok := payload.(*domain.MedicineShortage)
	if !ok {
		return
	}

	if ev.Criticality != "high" && ev.Urgency != "high" {
		return
	}

	a.world.City.PushAlert(&domain.Alert{
		ID:        uuid.NewString(),
		Type:      "MEDICINE_SHORTAGE",
		Zone:      ev.Zone,
		EntityID:  ev.PharmacyID,
		Medicine:  ev.Medicine,
		Message:   fmt.Sprintf("%s priority: %s shortage at Pharmacy %s", strings.ToUpper(ev.Urgency), ev.Medicine, ev.PharmacyID),
		Severity:  ev.Urgency,
		Timestamp: time.Now(),
		Status:    "active",
	})

	a.log(
		fmt.Sprintf("[CityAgent] Medicine shortage: %s at Pharmacy %s in %s (%s urgency)",
			ev.Medicine, ev.PharmacyID, ev.Zone, ev.Urgency),
		activity.Meta{"agent": "City", "type": "MED_SHORTAGE_ALERT", "pharmacyId": ev.PharmacyID, "medicine": ev.Medicine, "zone": ev.Zone, "urgency": ev.Urgency},
	)
}

func (a *CityAgent) onLabCapacity(payload any) {
	ev, ok := payload.(*domain.LabCapacityWarning)
	if !ok {
		return
	}

	a.world.City.PushAlert(&domain.Alert{
		ID:        uuid.NewString(),
		Type:      "LAB_CAPACITY",
		Zone:      ev.Zone,
		EntityID:  ev.LabID,
		Message:   fmt.Sprintf("Lab %s at %.0f%% capacity", ev.LabID, ev.Utilization*100),
		Severity:  "medium",
		Timestamp: time.Now(),
		Status:    "active",
	})

	a.log(
		fmt.Sprintf("[CityAgent] Lab capacity warning: %s in %s at %.0f%% utilization", ev.LabID, ev.Zone, ev.Utilization*100),
		activity.Meta{"agent": "City", "type": "LAB_CAPACITY_ALERT", "labId": ev.LabID, "zone": ev.Zone, "utilization": ev.Utilization},
	)
}

func (a *CityAgent) onEquipmentShortage(payload any) {
	ev, ok := payload.(*domain.EquipmentShortage)
	if !ok {
		return
	}

	a.world.City.PushAlert(&domain.Alert{
		ID:        uuid.NewString(),
		Type:      "EQUIPMENT_SHORTAGE",
		Zone:      ev.Zone,
		EntityID:  ev.HospitalID,
		Equipment: ev.Equipment,
		Message:   fmt.Sprintf("Critical: %s shortage at Hospital %s", ev.Equipment, ev.HospitalID),
		Severity:  "critical",
		Timestamp: time.Now(),
		Status:    "active",
	})

	a.log(
		fmt.Sprintf("[CityAgent] Equipment shortage: %s at Hospital %s in %s", ev.Equipment, ev.HospitalID, ev.Zone),
		activity.Meta{"agent": "City", "type": "EQUIPMENT_ALERT", "hospitalId": ev.HospitalID, "zone": ev.Zone, "equipment": ev.Equipment},
	)
}

// onOrderConfirmed только отмечает координацию в метриках и журнале:
// подтвержденный заказ - не алерт.
func (a *CityAgent) onOrderConfirmed(payload any) {
	ev, ok := payload.(*domain.OrderConfirmed)
	if !ok {
		return
	}

	a.world.City.SystemMetrics.CoordinationsToday++
	a.log(
		fmt.Sprintf("[CityAgent] Supply chain: order %s confirmed by %s for %s (ETA %.1fh)",
			ev.OrderID, ev.SupplierID, ev.PharmacyID, ev.ETAHours),
		activity.Meta{"agent": "City", "type": "COORDINATION", "orderId": ev.OrderID, "supplierId": ev.SupplierID},
	)
}

// onOrderDelivered засчитывает предотвращенный дефицит. Метрики города
// мутирует только городской агент, аптека свою часть считает у себя.
func (a *CityAgent) onOrderDelivered(payload any) {
	if _, ok := payload.(*domain.OrderDelivered); !ok {
		return
	}
	a.world.City.SystemMetrics.StockoutsPrevented++
}
