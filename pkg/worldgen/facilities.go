package worldgen

import "github.com/aditya-debugs/Heal-Sync/internal/domain"

func labs() map[string]*domain.Lab {
	return map[string]*domain.Lab{
		"L1": {
			ID: "L1", Name: "Metro Diagnostics", Type: "Full-service Diagnostic Lab",
			Zone: "Zone-2", Address: "Bandra West, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.0596, Lng: 72.8295},
			TestData: map[string]*domain.TestData{
				"dengue":    {Today: 30, History: []int{10, 14, 18, 22, 26, 30}, Capacity: 100, PositiveRate: 0.15, AvgTurnaround: 4},
				"malaria":   {Today: 15, History: []int{8, 9, 12, 13, 15, 15}, Capacity: 80, PositiveRate: 0.10, AvgTurnaround: 3},
				"covid":     {Today: 45, History: []int{60, 55, 50, 48, 47, 45}, Capacity: 200, PositiveRate: 0.08, AvgTurnaround: 6},
				"typhoid":   {Today: 8, History: []int{5, 6, 7, 7, 8, 8}, Capacity: 50, PositiveRate: 0.12, AvgTurnaround: 5},
				"influenza": {Today: 120, History: []int{80, 90, 100, 110, 115, 120}, Capacity: 150, PositiveRate: 0.20, AvgTurnaround: 2},
			},
			QueueLength: 25, AvgWaitTime: 45, StaffOnDuty: 8,
			OperatingHours: "24/7", TestsCompletedToday: 218, TestsPending: 25,
		},
		"L2": {
			ID: "L2", Name: "East Side Labs", Type: "Community Diagnostic Center",
			Zone: "Zone-1", Address: "Andheri East, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1197, Lng: 72.8682},
			TestData: map[string]*domain.TestData{
				"dengue":    {Today: 18, History: []int{6, 8, 10, 12, 15, 18}, Capacity: 60, PositiveRate: 0.12, AvgTurnaround: 5},
				"malaria":   {Today: 10, History: []int{5, 6, 7, 8, 9, 10}, Capacity: 50, PositiveRate: 0.08, AvgTurnaround: 4},
				"covid":     {Today: 30, History: []int{42, 38, 35, 33, 31, 30}, Capacity: 120, PositiveRate: 0.06, AvgTurnaround: 6},
				"typhoid":   {Today: 5, History: []int{3, 3, 4, 4, 5, 5}, Capacity: 30, PositiveRate: 0.10, AvgTurnaround: 5},
				"influenza": {Today: 85, History: []int{55, 60, 70, 75, 80, 85}, Capacity: 100, PositiveRate: 0.18, AvgTurnaround: 3},
			},
			QueueLength: 18, AvgWaitTime: 35, StaffOnDuty: 6,
			OperatingHours: "8 AM - 8 PM", TestsCompletedToday: 148, TestsPending: 18,
		},
	}
}

// med - шорткат для позиции аптечного склада.
func med(stock, reorder, daily, price int, crit, expiry, supplier string) *domain.Medicine {
	return &domain.Medicine{
		Stock: stock, ReorderPoint: reorder, DailyUsage: daily, Price: price,
		Criticality: crit, ExpiryDate: expiry, Supplier: supplier,
	}
}

func pharmacies() map[string]*domain.Pharmacy {
	return map[string]*domain.Pharmacy{
		"P1": {
			ID: "P1", Name: "HealthPlus Pharmacy", Type: "24-hour Retail Pharmacy",
			Zone: "Zone-2", Address: "Bandra West, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.0596, Lng: 72.8295},
			Medicines: map[string]*domain.Medicine{
				"dengueMed":     med(50, 20, 5, 150, "high", "2025-12-31", "S1"),
				"oseltamivir":   med(80, 30, 8, 200, "high", "2025-11-30", "S1"),
				"acyclovir":     med(120, 40, 10, 180, "medium", "2026-01-31", "S1"),
				"azithromycin":  med(200, 80, 25, 120, "high", "2025-12-15", "S1"),
				"ciprofloxacin": med(180, 70, 20, 100, "high", "2026-02-28", "S1"),
				"amoxicillin":   med(300, 100, 40, 80, "medium", "2025-11-30", "S1"),
				"chloroquine":   med(60, 20, 6, 140, "high", "2026-03-31", "S1"),
				"artemether":    med(45, 15, 4, 220, "high", "2025-12-31", "S1"),
				"paracetamol":   med(500, 150, 50, 20, "low", "2026-06-30", "S1"),
				"ibuprofen":     med(400, 120, 35, 25, "low", "2026-05-31", "S1"),
				"ors":           med(150, 50, 20, 15, "medium", "2027-12-31", "S1"),
				"ivFluids":      med(100, 30, 15, 50, "high", "2026-12-31", "S1"),
				"covidVaccine":  med(200, 50, 50, 500, "high", "2025-12-31", "S2"),
				"fluVaccine":    med(150, 40, 30, 400, "medium", "2025-12-31", "S2"),
				"ceftriaxone":   med(70, 25, 8, 180, "high", "2026-01-31", "S1"),
			},
			Metrics: domain.PharmacyMetrics{
				PrescriptionsFilled: 120, AvgWaitTime: 10, CustomersServed: 250, RevenueToday: 45000,
			},
			PendingOrders:  []*domain.PharmacyOrder{},
			OperatingHours: "24/7",
		},
		"P2": {
			ID: "P2", Name: "MediCare Pharmacy", Type: "Retail Pharmacy",
			Zone: "Zone-1", Address: "Andheri West, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1136, Lng: 72.8697},
			Medicines: map[string]*domain.Medicine{
				"dengueMed":     med(80, 25, 7, 150, "high", "2025-12-31", "S1"),
				"oseltamivir":   med(100, 35, 10, 200, "high", "2025-11-30", "S1"),
				"acyclovir":     med(150, 50, 12, 180, "medium", "2026-01-31", "S1"),
				"azithromycin":  med(250, 90, 30, 120, "high", "2025-12-15", "S1"),
				"ciprofloxacin": med(220, 80, 25, 100, "high", "2026-02-28", "S1"),
				"amoxicillin":   med(350, 120, 45, 80, "medium", "2025-11-30", "S1"),
				"chloroquine":   med(70, 25, 7, 140, "high", "2026-03-31", "S1"),
				"artemether":    med(55, 20, 5, 220, "high", "2025-12-31", "S1"),
				"paracetamol":   med(600, 180, 60, 20, "low", "2026-06-30", "S1"),
				"ibuprofen":     med(480, 140, 42, 25, "low", "2026-05-31", "S1"),
				"ors":           med(180, 60, 24, 15, "medium", "2027-12-31", "S1"),
				"ivFluids":      med(120, 35, 18, 50, "high", "2026-12-31", "S1"),
				"covidVaccine":  med(250, 60, 60, 500, "high", "2025-12-31", "S2"),
				"fluVaccine":    med(180, 50, 35, 400, "medium", "2025-12-31", "S2"),
				"ceftriaxone":   med(85, 30, 10, 180, "high", "2026-01-31", "S1"),
			},
			Metrics: domain.PharmacyMetrics{
				PrescriptionsFilled: 140, AvgWaitTime: 12, CustomersServed: 280, RevenueToday: 52000,
			},
			PendingOrders:  []*domain.PharmacyOrder{},
			OperatingHours: "8 AM - 10 PM",
		},
		"P3": {
			ID: "P3", Name: "Express Pharmacy", Type: "Quick Service Pharmacy",
			Zone: "Zone-3", Address: "Goregaon East, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1700, Lng: 72.8500},
			Medicines: map[string]*domain.Medicine{
				"dengueMed":     med(40, 15, 4, 150, "high", "2025-12-31", "S2"),
				"oseltamivir":   med(50, 20, 5, 200, "high", "2025-11-30", "S2"),
				"acyclovir":     med(80, 30, 7, 180, "medium", "2026-01-31", "S2"),
				"azithromycin":  med(150, 60, 18, 120, "high", "2025-12-15", "S2"),
				"ciprofloxacin": med(120, 50, 15, 100, "high", "2026-02-28", "S2"),
				"amoxicillin":   med(200, 80, 28, 80, "medium", "2025-11-30", "S2"),
				"chloroquine":   med(45, 18, 4, 140, "high", "2026-03-31", "S2"),
				"artemether":    med(35, 12, 3, 220, "high", "2025-12-31", "S2"),
				"paracetamol":   med(400, 120, 40, 20, "low", "2026-06-30", "S2"),
				"ibuprofen":     med(320, 100, 28, 25, "low", "2026-05-31", "S2"),
				"ors":           med(100, 40, 16, 15, "medium", "2027-12-31", "S2"),
				"ivFluids":      med(70, 25, 12, 50, "high", "2026-12-31", "S2"),
				"covidVaccine":  med(120, 30, 30, 500, "high", "2025-12-31", "S2"),
				"fluVaccine":    med(100, 30, 20, 400, "medium", "2025-12-31", "S2"),
				"ceftriaxone":   med(50, 18, 6, 180, "high", "2026-01-31", "S2"),
			},
			Metrics: domain.PharmacyMetrics{
				PrescriptionsFilled: 85, AvgWaitTime: 8, CustomersServed: 180, RevenueToday: 32000,
			},
			PendingOrders:  []*domain.PharmacyOrder{},
			OperatingHours: "9 AM - 9 PM",
		},
	}
}

// inv - шорткат для позиции склада поставщика.
func inv(stock, incoming int, eta string, cost int) *domain.InventoryItem {
	return &domain.InventoryItem{Stock: stock, Incoming: incoming, DeliveryETA: eta, Cost: cost}
}

func suppliers() map[string]*domain.Supplier {
	return map[string]*domain.Supplier{
		"S1": {
			ID: "S1", Name: "MediSupply Co.", Type: "Pharmaceutical Distributor",
			Zone: "Central", Address: "Andheri MIDC, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1197, Lng: 72.8682},
			Inventory: map[string]*domain.InventoryItem{
				"dengueMed":       inv(500, 200, "2 days", 100),
				"oseltamivir":     inv(800, 0, "", 150),
				"acyclovir":       inv(1000, 300, "3 days", 130),
				"azithromycin":    inv(2000, 500, "1 day", 80),
				"ciprofloxacin":   inv(1800, 0, "", 70),
				"amoxicillin":     inv(3000, 1000, "2 days", 50),
				"chloroquine":     inv(600, 200, "4 days", 100),
				"artemether":      inv(450, 100, "3 days", 180),
				"paracetamol":     inv(10000, 2000, "1 day", 10),
				"ibuprofen":       inv(8000, 0, "", 15),
				"ors":             inv(5000, 1000, "2 days", 8),
				"ivFluids":        inv(2000, 500, "1 day", 30),
				"ceftriaxone":     inv(800, 200, "2 days", 120),
				"ventilators":     inv(50, 10, "7 days", 150000),
				"oxygenCylinders": inv(500, 100, "1 day", 500),
				"ivStands":        inv(200, 50, "3 days", 1000),
				"ppe":             inv(10000, 5000, "2 days", 50),
			},
			Fleet:        domain.Fleet{Vehicles: 15, Available: 10, InTransit: 5, AvgDeliveryTime: 2},
			ActiveOrders: []*domain.SupplierOrder{},
			Constraints:  domain.Constraints{MaxDailyOrders: 50, CurrentOrders: 12, WorkingHours: "6 AM - 10 PM"},
		},
		"S2": {
			ID: "S2", Name: "QuickMed Distributors", Type: "Fast Delivery Pharma Supply",
			Zone: "North", Address: "Malad Industrial Area, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1863, Lng: 72.8490},
			Inventory: map[string]*domain.InventoryItem{
				"dengueMed":       inv(300, 150, "1 day", 105),
				"oseltamivir":     inv(500, 100, "2 days", 155),
				"acyclovir":       inv(700, 200, "2 days", 135),
				"azithromycin":    inv(1500, 300, "1 day", 85),
				"ciprofloxacin":   inv(1200, 200, "1 day", 75),
				"amoxicillin":     inv(2500, 500, "1 day", 55),
				"chloroquine":     inv(400, 100, "3 days", 105),
				"artemether":      inv(300, 50, "2 days", 185),
				"paracetamol":     inv(8000, 1000, "1 day", 12),
				"ibuprofen":       inv(6000, 500, "1 day", 18),
				"ors":             inv(4000, 500, "1 day", 10),
				"ivFluids":        inv(1500, 300, "1 day", 35),
				"ceftriaxone":     inv(600, 100, "1 day", 125),
				"covidVaccine":    inv(2000, 500, "1 day", 400),
				"fluVaccine":      inv(1500, 300, "2 days", 350),
				"oxygenCylinders": inv(300, 50, "1 day", 520),
				"ppe":             inv(8000, 2000, "1 day", 55),
			},
			Fleet:        domain.Fleet{Vehicles: 12, Available: 8, InTransit: 4, AvgDeliveryTime: 1.5},
			ActiveOrders: []*domain.SupplierOrder{},
			Constraints:  domain.Constraints{MaxDailyOrders: 40, CurrentOrders: 8, WorkingHours: "7 AM - 9 PM"},
		},
	}
}
