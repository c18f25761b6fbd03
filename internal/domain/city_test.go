package domain

import (
	"fmt"
	"testing"
	"time"
)

func newTestCity() *City {
	return &City{
		Name:         "Testville",
		Zones:        map[string]*Zone{},
		RiskZones:    map[string]*ZoneRisk{},
		DiseaseStats: map[string]*DiseaseStat{},
	}
}

func TestPushAlert_CapIsFIFO(t *testing.T) {
	c := newTestCity()

	for i := 0; i < MaxActiveAlerts+10; i++ {
		c.PushAlert(&Alert{
			ID:        fmt.Sprintf("a-%d", i),
			Type:      "TEST",
			Timestamp: time.Now(),
			Status:    "active",
		})
	}

	if len(c.ActiveAlerts) != MaxActiveAlerts {
		t.Fatalf("len = %d, want %d", len(c.ActiveAlerts), MaxActiveAlerts)
	}
	// Вытеснены старейшие: первым остался a-10.
	if c.ActiveAlerts[0].ID != "a-10" {
		t.Errorf("oldest surviving alert = %s, want a-10", c.ActiveAlerts[0].ID)
	}
	if c.ActiveAlerts[len(c.ActiveAlerts)-1].ID != fmt.Sprintf("a-%d", MaxActiveAlerts+9) {
		t.Errorf("newest alert = %s", c.ActiveAlerts[len(c.ActiveAlerts)-1].ID)
	}
	if c.SystemMetrics.AlertsToday != MaxActiveAlerts+10 {
		t.Errorf("AlertsToday = %d, want %d", c.SystemMetrics.AlertsToday, MaxActiveAlerts+10)
	}
}

func TestZoneRisk_Recompute(t *testing.T) {
	tests := []struct {
		name    string
		factors map[string]RiskLevel
		want    RiskLevel
	}{
		{
			name:    "all low",
			factors: map[string]RiskLevel{"dengue": RiskLow, "malaria": RiskLow},
			want:    RiskLow,
		},
		{
			name:    "one medium stays low",
			factors: map[string]RiskLevel{"dengue": RiskMedium, "malaria": RiskLow},
			want:    RiskLow,
		},
		{
			name:    "two medium",
			factors: map[string]RiskLevel{"dengue": RiskMedium, "malaria": RiskMedium},
			want:    RiskMedium,
		},
		{
			name:    "one high",
			factors: map[string]RiskLevel{"dengue": RiskHigh, "malaria": RiskLow},
			want:    RiskMedium,
		},
		{
			name:    "two elevated",
			factors: map[string]RiskLevel{"dengue": RiskHigh, "malaria": RiskCritical},
			want:    RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zr := &ZoneRisk{Factors: tt.factors}
			zr.Recompute()
			if zr.Overall != tt.want {
				t.Errorf("Overall = %s, want %s", zr.Overall, tt.want)
			}
		})
	}
}

func TestEnsureRiskZone_Defaults(t *testing.T) {
	c := newTestCity()

	zr := c.EnsureRiskZone("Zone-9")
	if zr.Overall != RiskLow {
		t.Errorf("default overall = %s, want low", zr.Overall)
	}
	if zr.AirQuality != "good" {
		t.Errorf("default airQuality = %s", zr.AirQuality)
	}
	for _, disease := range Diseases {
		if zr.Factors[disease] != RiskLow {
			t.Errorf("factor %s = %s, want low", disease, zr.Factors[disease])
		}
	}

	// Повторный вызов возвращает ту же запись, а не сбрасывает ее.
	zr.Factors["dengue"] = RiskHigh
	if again := c.EnsureRiskZone("Zone-9"); again.Factors["dengue"] != RiskHigh {
		t.Error("EnsureRiskZone reset an existing zone record")
	}
}

func TestHospital_BedOccupancy(t *testing.T) {
	h := &Hospital{Beds: map[string]*BedGroup{
		"general": {Total: 100, Used: 65},
		"icu":     {Total: 80, Used: 40},
	}}

	used, total, ratio := h.BedOccupancy()
	if used != 105 || total != 180 {
		t.Errorf("used/total = %d/%d, want 105/180", used, total)
	}
	if diff := ratio - 105.0/180.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ratio = %v, want %v", ratio, 105.0/180.0)
	}

	empty := &Hospital{Beds: map[string]*BedGroup{}}
	if _, _, r := empty.BedOccupancy(); r != 0 {
		t.Errorf("empty hospital ratio = %v, want 0", r)
	}
}
