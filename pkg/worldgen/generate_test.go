package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

func TestGenerate_EntityCounts(t *testing.T) {
	w := Generate()

	assert.Len(t, w.Hospitals, 4)
	assert.Len(t, w.Labs, 2)
	assert.Len(t, w.Pharmacies, 3)
	assert.Len(t, w.Suppliers, 2)
	require.NotNil(t, w.City)
	require.NotNil(t, w.Environment)
	assert.Len(t, w.City.Zones, 3)
}

// Состав зон и поля Zone у сущностей должны сходиться.
func TestGenerate_ZoneMembershipConsistent(t *testing.T) {
	w := Generate()

	for zoneID, zone := range w.City.Zones {
		for _, id := range zone.Hospitals {
			h := w.Hospitals[id]
			require.NotNil(t, h, "hospital %s listed in %s does not exist", id, zoneID)
			assert.Equal(t, zoneID, h.Zone, "hospital %s", id)
		}
		for _, id := range zone.Labs {
			l := w.Labs[id]
			require.NotNil(t, l, "lab %s listed in %s does not exist", id, zoneID)
			assert.Equal(t, zoneID, l.Zone, "lab %s", id)
		}
		for _, id := range zone.Pharmacies {
			p := w.Pharmacies[id]
			require.NotNil(t, p, "pharmacy %s listed in %s does not exist", id, zoneID)
			assert.Equal(t, zoneID, p.Zone, "pharmacy %s", id)
		}
	}
}

func TestGenerate_LabTestData(t *testing.T) {
	w := Generate()

	for id, lab := range w.Labs {
		for _, disease := range domain.Diseases {
			td := lab.TestData[disease]
			require.NotNil(t, td, "lab %s missing %s", id, disease)
			assert.Positive(t, td.Capacity, "lab %s %s capacity", id, disease)
			assert.LessOrEqual(t, len(td.History), domain.TestHistoryLen, "lab %s %s history", id, disease)
		}
	}

	// Демо-сценарий вспышки денге: растущая история в L1.
	l1 := w.Labs["L1"].TestData["dengue"]
	assert.Equal(t, 30, l1.Today)
	assert.Equal(t, []int{10, 14, 18, 22, 26, 30}, l1.History)
}

// У каждого препарата должен быть существующий поставщик, иначе
// цикл перезаказа для него мертв.
func TestGenerate_MedicineSuppliersExist(t *testing.T) {
	w := Generate()

	for pid, p := range w.Pharmacies {
		for name, m := range p.Medicines {
			require.NotEmpty(t, m.Supplier, "pharmacy %s medicine %s has no supplier", pid, name)
			assert.Contains(t, w.Suppliers, m.Supplier, "pharmacy %s medicine %s", pid, name)
			assert.Positive(t, m.ReorderPoint, "pharmacy %s medicine %s", pid, name)
		}
	}
}

// Профильные препараты вспышек должны существовать хотя бы в одной аптеке.
func TestGenerate_OutbreakMedicinesStocked(t *testing.T) {
	w := Generate()

	for _, name := range []string{"dengueMed", "chloroquine", "oseltamivir", "covidVaccine", "ceftriaxone"} {
		found := false
		for _, p := range w.Pharmacies {
			if _, ok := p.Medicines[name]; ok {
				found = true
				break
			}
		}
		assert.True(t, found, "medicine %s not stocked anywhere", name)
	}
}

func TestGenerate_SupplierFleetsSane(t *testing.T) {
	w := Generate()

	for id, s := range w.Suppliers {
		assert.Positive(t, s.Fleet.Vehicles, "supplier %s", id)
		assert.Equal(t, s.Fleet.Vehicles, s.Fleet.Available+s.Fleet.InTransit, "supplier %s fleet accounting", id)
		assert.Positive(t, s.Constraints.MaxDailyOrders, "supplier %s", id)
		assert.Empty(t, s.ActiveOrders, "supplier %s must start idle", id)
	}
}
