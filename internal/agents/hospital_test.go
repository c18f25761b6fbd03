package agents

import (
	"math/rand"
	"testing"
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

func newTestHospital() (*HospitalAgent, *domain.Hospital, *bus.Bus, *logCapture) {
	world := newTestWorld()
	h := &domain.Hospital{
		ID: "H1", Name: "Test Hospital", Zone: "Zone-1",
		Beds: map[string]*domain.BedGroup{
			"general":   {Total: 100, Used: 50},
			"icu":       {Total: 20, Used: 10},
			"isolation": {Total: 10, Used: 2},
		},
		Equipment: map[string]*domain.EquipmentGroup{
			"ventilators": {Total: 20, InUse: 10, Available: 10},
		},
		Staff:       map[string]*domain.StaffGroup{},
		DiseasePrep: map[string]*domain.DiseasePrep{},
		PatientMetrics: domain.PatientMetrics{
			InflowPerHour: 12,
		},
	}
	world.Hospitals["H1"] = h

	b := bus.New()
	capture := &logCapture{}
	agent := NewHospitalAgent("H1", world, b, capture.fn(), rand.New(rand.NewSource(11)), 12*time.Second)
	return agent, h, b, capture
}

func TestCheckOverload(t *testing.T) {
	agent, h, b, _ := newTestHospital()

	var got *domain.HospitalOverload
	b.Subscribe(domain.EventHospitalOverload, func(v any) { got = v.(*domain.HospitalOverload) })

	// 85% ровно - еще не перегрузка (порог строгий).
	agent.checkOverload(h, 0.85)
	if got != nil {
		t.Fatal("overload fired at exactly 85%")
	}

	agent.checkOverload(h, 0.9)
	if got == nil {
		t.Fatal("overload not fired at 90%")
	}
	if got.HospitalID != "H1" || got.Zone != "Zone-1" || got.Occupancy != 0.9 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestCheckEquipment_VentilatorShortage(t *testing.T) {
	agent, h, b, _ := newTestHospital()

	var got *domain.EquipmentShortage
	b.Subscribe(domain.EventEquipmentShortage, func(v any) { got = v.(*domain.EquipmentShortage) })

	// 10 из 20 свободны - дефицита нет.
	agent.checkEquipment(h)
	if got != nil {
		t.Fatal("shortage fired with half the ventilators free")
	}

	h.Equipment["ventilators"].InUse = 19
	h.Equipment["ventilators"].Available = 1
	agent.checkEquipment(h)

	if got == nil {
		t.Fatal("shortage not fired below 10% availability")
	}
	if got.Equipment != "ventilators" {
		t.Errorf("equipment = %s, want ventilators", got.Equipment)
	}
}

func TestOnOutbreak_PreparesMatchingZone(t *testing.T) {
	_, h, b, capture := newTestHospital()

	b.Publish(domain.OutbreakEvent("dengue"), &domain.OutbreakPrediction{Zone: "Zone-1", Disease: "dengue"})

	prep := h.DiseasePrep["dengue"]
	if prep == nil || !prep.Prepared || !prep.WardReady || !prep.StaffAlerted {
		t.Fatalf("preparation not applied: %+v", prep)
	}
	if h.Beds["isolation"].Reserved != 3 {
		t.Errorf("isolation reserved = %d, want 3", h.Beds["isolation"].Reserved)
	}
	if !capture.contains("Preparing for DENGUE outbreak") {
		t.Error("missing preparation log entry")
	}

	// Повторная вспышка не дублирует лог подготовки.
	before := len(capture.entries)
	b.Publish(domain.OutbreakEvent("dengue"), &domain.OutbreakPrediction{Zone: "Zone-1", Disease: "dengue"})
	if len(capture.entries) != before {
		t.Error("repeated outbreak logged preparation again")
	}
}

func TestOnOutbreak_OtherZoneIgnoredByHospital(t *testing.T) {
	_, h, b, _ := newTestHospital()

	b.Publish(domain.OutbreakEvent("malaria"), &domain.OutbreakPrediction{Zone: "Zone-9", Disease: "malaria"})

	if h.DiseasePrep["malaria"] != nil {
		t.Error("hospital prepared for an outbreak in another zone")
	}
}

func TestSimulatePatientFlow_StaysWithinBounds(t *testing.T) {
	agent, h, _, _ := newTestHospital()

	for i := 0; i < 200; i++ {
		agent.simulatePatientFlow(h)

		g := h.Beds["general"]
		if g.Used < 0 || g.Used > g.Total {
			t.Fatalf("general beds out of bounds on tick %d: %d/%d", i, g.Used, g.Total)
		}
		v := h.Equipment["ventilators"]
		if v.InUse < 0 || v.InUse+v.Available+v.Maintenance != v.Total {
			t.Fatalf("ventilator accounting broken on tick %d: %+v", i, v)
		}
		if len(h.History.BedsUsed) > domain.TestHistoryLen {
			t.Fatalf("history window exceeded on tick %d", i)
		}
	}
}
