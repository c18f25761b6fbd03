// Package worldgen собирает демо-мир сети здравоохранения: больницы,
// лаборатории, аптеки, поставщики и агрегаты города. Значения фиксированы
// (это стартовые данные демо-сценария), генерация детерминирована.
package worldgen

import (
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

// Generate строит полный стартовый WorldState.
func Generate() *domain.WorldState {
	return &domain.WorldState{
		Hospitals:   hospitals(),
		Labs:        labs(),
		Pharmacies:  pharmacies(),
		Suppliers:   suppliers(),
		Environment: environment(),
		City:        city(),
	}
}

func environment() *domain.Environment {
	return &domain.Environment{
		Weather: map[string]*domain.Weather{
			"Zone-1": {Temperature: 35, Humidity: 75, Forecast: "heatwave", AQIIndex: 180, UVIndex: 9, Rainfall: 0, WindSpeed: 12},
			"Zone-2": {Temperature: 32, Humidity: 85, Forecast: "heavy-rain", AQIIndex: 120, UVIndex: 6, Rainfall: 45, WindSpeed: 18},
			"Zone-3": {Temperature: 28, Humidity: 60, Forecast: "clear", AQIIndex: 80, UVIndex: 7, Rainfall: 0, WindSpeed: 10},
		},
		Season: "monsoon", // риск денге выше
		CityEvents: []domain.CityEvent{
			{Type: "marathon", Date: "2025-12-01", CrowdSize: 10000, Zone: "Zone-1"},
			{Type: "festival", Date: "2025-12-05", CrowdSize: 50000, Zone: "Zone-2"},
			{Type: "school-opening", Date: "2025-12-10", CrowdSize: 100000, Zone: "all"},
		},
		WaterQuality: map[string]string{
			"Zone-1": "good",
			"Zone-2": "contaminated", // риск тифа
			"Zone-3": "good",
		},
	}
}

func city() *domain.City {
	return &domain.City{
		Name:       "Mumbai",
		Population: 1200000,
		Zones: map[string]*domain.Zone{
			"Zone-1": {
				Name: "West Mumbai (Andheri, Juhu)", Population: 400000, Area: "35 sq km",
				Hospitals: []string{"H1", "H3"}, Labs: []string{"L2"}, Pharmacies: []string{"P2"},
				Coordinates: domain.Coordinates{Lat: 19.1136, Lng: 72.8697},
			},
			"Zone-2": {
				Name: "Central Mumbai (Bandra, Khar)", Population: 500000, Area: "42 sq km",
				Hospitals: []string{"H2"}, Labs: []string{"L1"}, Pharmacies: []string{"P1"},
				Coordinates: domain.Coordinates{Lat: 19.0596, Lng: 72.8656},
			},
			"Zone-3": {
				Name: "North Mumbai (Goregaon, Malad)", Population: 300000, Area: "38 sq km",
				Hospitals: []string{"H4"}, Labs: []string{}, Pharmacies: []string{"P3"},
				Coordinates: domain.Coordinates{Lat: 19.1700, Lng: 72.8500},
			},
		},
		ActiveAlerts: []*domain.Alert{},
		RiskZones: map[string]*domain.ZoneRisk{
			"Zone-1": {
				Factors: map[string]domain.RiskLevel{
					"dengue": domain.RiskLow, "malaria": domain.RiskLow, "covid": domain.RiskLow,
					"typhoid": domain.RiskLow, "influenza": domain.RiskMedium,
					"heatwave": domain.RiskHigh, "waterborne": domain.RiskLow,
				},
				AirQuality: "poor",
				Overall:    domain.RiskMedium,
			},
			"Zone-2": {
				Factors: map[string]domain.RiskLevel{
					"dengue": domain.RiskMedium, "malaria": domain.RiskMedium, "covid": domain.RiskLow,
					"typhoid": domain.RiskHigh, "influenza": domain.RiskMedium,
					"heatwave": domain.RiskMedium, "waterborne": domain.RiskHigh,
				},
				AirQuality: "moderate",
				Overall:    domain.RiskHigh,
			},
			"Zone-3": {
				Factors: map[string]domain.RiskLevel{
					"dengue": domain.RiskLow, "malaria": domain.RiskLow, "covid": domain.RiskLow,
					"typhoid": domain.RiskLow, "influenza": domain.RiskLow,
					"heatwave": domain.RiskLow, "waterborne": domain.RiskLow,
				},
				AirQuality: "good",
				Overall:    domain.RiskLow,
			},
		},
		DiseaseStats: map[string]*domain.DiseaseStat{
			"dengue":    {ActiveCases: 245, Deaths: 2, Recovered: 180, NewToday: 48},
			"malaria":   {ActiveCases: 120, Deaths: 1, Recovered: 95, NewToday: 25},
			"covid":     {ActiveCases: 450, Deaths: 5, Recovered: 400, NewToday: 75},
			"typhoid":   {ActiveCases: 80, Deaths: 0, Recovered: 65, NewToday: 13},
			"influenza": {ActiveCases: 1200, Deaths: 0, Recovered: 1050, NewToday: 205},
		},
		TotalResources: domain.TotalResources{
			Beds:        domain.ResourcePool{Total: 290, Used: 178, Available: 112, Utilization: 0.61},
			ICUBeds:     domain.ResourcePool{Total: 50, Used: 28, Available: 22, Utilization: 0.56},
			Ventilators: domain.ResourcePool{Total: 45, Used: 20, Available: 25, Utilization: 0.44},
			Ambulances:  domain.FleetPool{Total: 25, Available: 14, Busy: 11, Utilization: 0.44},
			Doctors:     domain.StaffPool{Total: 125, OnDuty: 89, Available: 73},
			Nurses:      domain.StaffPool{Total: 330, OnDuty: 223, Available: 200},
		},
		SystemMetrics: domain.SystemMetrics{
			AvgResponseTime:    18,
			AlertsToday:        3,
			CoordinationsToday: 7,
			StockoutsPrevented: 4,
			LastUpdated:        time.Now(),
		},
	}
}
