package worldgen

import "github.com/aditya-debugs/Heal-Sync/internal/domain"

func hospitals() map[string]*domain.Hospital {
	return map[string]*domain.Hospital{
		"H1": {
			ID: "H1", Name: "City Central Hospital", Type: "Multi-specialty Tertiary Care",
			Zone: "Zone-1", Address: "Andheri West, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1136, Lng: 72.8697},
			Beds: map[string]*domain.BedGroup{
				"general":   {Total: 100, Used: 65, Reserved: 10},
				"icu":       {Total: 20, Used: 12, Reserved: 3},
				"isolation": {Total: 30, Used: 8, Reserved: 5},
				"pediatric": {Total: 40, Used: 25, Reserved: 5},
				"maternity": {Total: 20, Used: 15, Reserved: 2},
			},
			Equipment: map[string]*domain.EquipmentGroup{
				"ventilators":     {Total: 15, InUse: 8, Maintenance: 1, Available: 6},
				"oxygenCylinders": {Total: 100, InUse: 45, Available: 45},
				"xrayMachines":    {Total: 3, InUse: 2, Available: 1},
				"ctScanners":      {Total: 2, InUse: 1, Available: 1},
				"ambulances":      {Total: 8, InUse: 3, Available: 5},
			},
			Staff: map[string]*domain.StaffGroup{
				"doctors": {Total: 45, OnDuty: 30, Available: 25, OnLeave: 5},
				"nurses":  {Total: 120, OnDuty: 80, Available: 70, OnLeave: 10},
			},
			Specialists: map[string]int{
				"infectiousDisease": 5, "pulmonology": 3, "pediatrics": 8,
				"emergency": 12, "generalMedicine": 17,
			},
			PatientMetrics: domain.PatientMetrics{
				InflowPerHour: 12, AvgStayDuration: 48, DischargesPerDay: 20,
				EmergencyCases: 8, Outpatients: 45, AdmissionsToday: 38,
			},
			Departments: map[string]*domain.Department{
				"emergency":  {Status: "normal", WaitTime: 15, Queue: 8},
				"icu":        {Status: "busy", WaitTime: 0},
				"outpatient": {Status: "crowded", WaitTime: 60, Queue: 45},
				"laboratory": {Status: "normal", WaitTime: 30},
			},
			DiseasePrep: map[string]*domain.DiseasePrep{
				"dengue":    {MedicineStock: "low"},
				"malaria":   {MedicineStock: "adequate"},
				"covid":     {Prepared: true, WardReady: true, MedicineStock: "high", StaffAlerted: true},
				"typhoid":   {MedicineStock: "adequate"},
				"influenza": {Prepared: true, WardReady: true, MedicineStock: "adequate", StaffAlerted: true},
			},
			History: domain.HospitalHistory{
				BedsUsed:       []int{60, 62, 65, 63, 61, 65, 65},
				PatientInflow:  []int{10, 11, 12, 10, 9, 12, 12},
				EmergencyCases: []int{6, 7, 8, 7, 6, 8, 8},
			},
		},
		"H2": {
			ID: "H2", Name: "Sunrise Hospital", Type: "General Hospital",
			Zone: "Zone-2", Address: "Bandra East, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.0596, Lng: 72.8656},
			Beds: map[string]*domain.BedGroup{
				"general":   {Total: 80, Used: 40, Reserved: 8},
				"icu":       {Total: 10, Used: 6, Reserved: 2},
				"isolation": {Total: 20, Used: 5, Reserved: 3},
				"pediatric": {Total: 30, Used: 18, Reserved: 4},
				"maternity": {Total: 15, Used: 10, Reserved: 2},
			},
			Equipment: map[string]*domain.EquipmentGroup{
				"ventilators":     {Total: 10, InUse: 4, Available: 6},
				"oxygenCylinders": {Total: 80, InUse: 30, Available: 42},
				"xrayMachines":    {Total: 2, InUse: 1, Available: 1},
				"ctScanners":      {Total: 1, Available: 1},
				"ambulances":      {Total: 6, InUse: 2, Available: 4},
			},
			Staff: map[string]*domain.StaffGroup{
				"doctors": {Total: 35, OnDuty: 25, Available: 20, OnLeave: 3},
				"nurses":  {Total: 90, OnDuty: 60, Available: 55, OnLeave: 8},
			},
			Specialists: map[string]int{
				"infectiousDisease": 3, "pulmonology": 2, "pediatrics": 6,
				"emergency": 8, "generalMedicine": 16,
			},
			PatientMetrics: domain.PatientMetrics{
				InflowPerHour: 8, AvgStayDuration: 36, DischargesPerDay: 15,
				EmergencyCases: 6, Outpatients: 35, AdmissionsToday: 28,
			},
			Departments: map[string]*domain.Department{
				"emergency":  {Status: "normal", WaitTime: 20, Queue: 6},
				"icu":        {Status: "normal", WaitTime: 0},
				"outpatient": {Status: "normal", WaitTime: 45, Queue: 35},
				"laboratory": {Status: "normal", WaitTime: 25},
			},
			DiseasePrep: map[string]*domain.DiseasePrep{
				"dengue":    {MedicineStock: "adequate"},
				"malaria":   {MedicineStock: "low"},
				"covid":     {Prepared: true, WardReady: true, MedicineStock: "adequate", StaffAlerted: true},
				"typhoid":   {MedicineStock: "adequate"},
				"influenza": {MedicineStock: "low"},
			},
			History: domain.HospitalHistory{
				BedsUsed:       []int{38, 39, 40, 39, 37, 40, 40},
				PatientInflow:  []int{7, 8, 8, 7, 7, 8, 8},
				EmergencyCases: []int{5, 6, 6, 5, 5, 6, 6},
			},
		},
		"H3": {
			ID: "H3", Name: "Children's Hospital", Type: "Pediatric Specialty Hospital",
			Zone: "Zone-1", Address: "Juhu, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1075, Lng: 72.8263},
			Beds: map[string]*domain.BedGroup{
				"general":   {Total: 60, Used: 35, Reserved: 8},
				"icu":       {Total: 15, Used: 8, Reserved: 3},
				"isolation": {Total: 25, Used: 6, Reserved: 4},
				"pediatric": {Total: 80, Used: 50, Reserved: 10},
				"maternity": {Total: 0, Used: 0, Reserved: 0},
			},
			Equipment: map[string]*domain.EquipmentGroup{
				"ventilators":     {Total: 12, InUse: 6, Available: 6},
				"oxygenCylinders": {Total: 70, InUse: 28, Available: 36},
				"xrayMachines":    {Total: 2, InUse: 1, Available: 1},
				"ctScanners":      {Total: 1, Maintenance: 1},
				"ambulances":      {Total: 5, InUse: 2, Available: 3},
			},
			Staff: map[string]*domain.StaffGroup{
				"doctors": {Total: 30, OnDuty: 22, Available: 18, OnLeave: 2},
				"nurses":  {Total: 80, OnDuty: 55, Available: 50, OnLeave: 5},
			},
			Specialists: map[string]int{
				"infectiousDisease": 4, "pulmonology": 3, "pediatrics": 18,
				"emergency": 5,
			},
			PatientMetrics: domain.PatientMetrics{
				InflowPerHour: 10, AvgStayDuration: 30, DischargesPerDay: 18,
				EmergencyCases: 7, Outpatients: 40, AdmissionsToday: 32,
			},
			Departments: map[string]*domain.Department{
				"emergency":  {Status: "busy", WaitTime: 25, Queue: 10},
				"icu":        {Status: "normal", WaitTime: 0},
				"outpatient": {Status: "crowded", WaitTime: 50, Queue: 40},
				"laboratory": {Status: "normal", WaitTime: 20},
			},
			DiseasePrep: map[string]*domain.DiseasePrep{
				"dengue":    {MedicineStock: "adequate"},
				"malaria":   {MedicineStock: "adequate"},
				"covid":     {Prepared: true, WardReady: true, MedicineStock: "high", StaffAlerted: true},
				"typhoid":   {MedicineStock: "low"},
				"influenza": {Prepared: true, WardReady: true, MedicineStock: "high", StaffAlerted: true},
			},
			History: domain.HospitalHistory{
				BedsUsed:       []int{33, 34, 35, 34, 33, 35, 35},
				PatientInflow:  []int{9, 10, 10, 9, 9, 10, 10},
				EmergencyCases: []int{6, 7, 7, 6, 6, 7, 7},
			},
		},
		"H4": {
			ID: "H4", Name: "Community Clinic", Type: "Primary Healthcare Center",
			Zone: "Zone-3", Address: "Goregaon, Mumbai",
			Coordinates: domain.Coordinates{Lat: 19.1700, Lng: 72.8500},
			Beds: map[string]*domain.BedGroup{
				"general":   {Total: 40, Used: 18, Reserved: 4},
				"icu":       {Total: 5, Used: 2, Reserved: 1},
				"isolation": {Total: 15, Used: 3, Reserved: 2},
				"pediatric": {Total: 20, Used: 10, Reserved: 3},
				"maternity": {Total: 10, Used: 5, Reserved: 1},
			},
			Equipment: map[string]*domain.EquipmentGroup{
				"ventilators":     {Total: 5, InUse: 2, Available: 3},
				"oxygenCylinders": {Total: 40, InUse: 12, Available: 24},
				"xrayMachines":    {Total: 1, Available: 1},
				"ctScanners":      {},
				"ambulances":      {Total: 3, InUse: 1, Available: 2},
			},
			Staff: map[string]*domain.StaffGroup{
				"doctors": {Total: 15, OnDuty: 12, Available: 10, OnLeave: 1},
				"nurses":  {Total: 40, OnDuty: 28, Available: 25, OnLeave: 3},
			},
			Specialists: map[string]int{
				"infectiousDisease": 1, "pulmonology": 1, "pediatrics": 3,
				"emergency": 4, "generalMedicine": 6,
			},
			PatientMetrics: domain.PatientMetrics{
				InflowPerHour: 5, AvgStayDuration: 24, DischargesPerDay: 10,
				EmergencyCases: 4, Outpatients: 25, AdmissionsToday: 15,
			},
			Departments: map[string]*domain.Department{
				"emergency":  {Status: "normal", WaitTime: 10, Queue: 4},
				"icu":        {Status: "normal", WaitTime: 0},
				"outpatient": {Status: "normal", WaitTime: 30, Queue: 25},
				"laboratory": {Status: "normal", WaitTime: 20},
			},
			DiseasePrep: map[string]*domain.DiseasePrep{
				"dengue":    {MedicineStock: "low"},
				"malaria":   {MedicineStock: "adequate"},
				"covid":     {MedicineStock: "adequate"},
				"typhoid":   {MedicineStock: "low"},
				"influenza": {MedicineStock: "low"},
			},
			History: domain.HospitalHistory{
				BedsUsed:       []int{16, 17, 18, 17, 16, 18, 18},
				PatientInflow:  []int{4, 5, 5, 4, 4, 5, 5},
				EmergencyCases: []int{3, 4, 4, 3, 3, 4, 4},
			},
		},
	}
}
