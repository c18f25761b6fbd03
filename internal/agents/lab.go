package agents

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
)

// Пороги детектора вспышек. Сравнения строгие (>), см. ClassifyGrowth.
const (
	outbreakTriggerFactor = 1.5  // today > 1.5*avg
	labCapacityThreshold  = 0.85 // суммарная загрузка лаборатории
	spikeChance           = 0.05 // шанс локального кластера за тик
	historyPushEvery      = 6    // тиков между записями в окно истории
)

// LabAgent симулирует объемы тестирования одной лаборатории и детектит
// всплески, похожие на вспышку. Владеет testData своей записи Lab.
type LabAgent struct {
	id       string
	world    *domain.WorldState
	bus      *bus.Bus
	log      activity.LogFunc
	rng      *rand.Rand
	now      func() time.Time
	interval time.Duration
}

// NewLabAgent создает агента лаборатории. rng и now инжектируются,
// чтобы тесты могли получать детерминированные тики.
func NewLabAgent(id string, world *domain.WorldState, b *bus.Bus, log activity.LogFunc, rng *rand.Rand, now func() time.Time, interval time.Duration) *LabAgent {
	if now == nil {
		now = time.Now
	}
	return &LabAgent{
		id:       id,
		world:    world,
		bus:      b,
		log:      log,
		rng:      rng,
		now:      now,
		interval: interval,
	}
}

func (a *LabAgent) Name() string            { return "Lab " + a.id }
func (a *LabAgent) Interval() time.Duration { return a.interval }

func (a *LabAgent) Start() {
	lab := a.world.Labs[a.id]
	if lab == nil {
		return
	}
	a.log(
		fmt.Sprintf("✅ Lab Agent %s (%s) initialized - Testing %d diseases in %s", a.id, lab.Name, len(domain.Diseases), lab.Zone),
		activity.Meta{"agent": "Lab", "type": "INIT", "entityId": a.id},
	)
}

func (a *LabAgent) Tick() {
	lab := a.world.Labs[a.id]
	if lab == nil {
		return
	}

	a.simulateTestGrowth(lab)

	// Суммарные тесты и доля позитивных для статусной строки.
	totalTests, totalPositive := 0, 0
	for _, td := range lab.TestData {
		totalTests += td.Today
		totalPositive += td.Positive
	}
	positiveRate := 0.0
	if totalTests > 0 {
		positiveRate = float64(totalPositive) / float64(totalTests) * 100
	}

	// Болезни с настораживающей долей позитивных (>10%).
	var concerning []string
	for _, d := range domain.Diseases {
		td := lab.TestData[d]
		if td != nil && td.Today > 0 && float64(td.Positive)/float64(td.Today) > 0.1 {
			concerning = append(concerning, d)
		}
	}

	// Статус логируется каждый тик, независимо от алертов.
	concerningText := ""
	if len(concerning) > 0 {
		concerningText = " | 🔍 Monitoring: " + strings.Join(concerning, ", ")
	}
	a.log(
		fmt.Sprintf("%s: Processing %d tests today | Positive rate: %.1f%%%s", lab.Name, totalTests, positiveRate, concerningText),
		activity.Meta{"agent": "Lab", "type": "STATUS", "entityId": a.id, "totalTests": totalTests, "positiveRate": positiveRate},
	)

	for _, disease := range domain.Diseases {
		a.checkDiseaseOutbreak(lab, disease)
	}

	a.checkLabCapacity(lab)
}

// simulateTestGrowth продвигает счетчики тестов: естественная вариация
// с сезонным и суточным фактором, скользящая история и случайные мини-спайки.
func (a *LabAgent) simulateTestGrowth(lab *domain.Lab) {
	for _, disease := range domain.Diseases {
		td := lab.TestData[disease]
		if td == nil {
			continue
		}

		seasonal := a.seasonalFactor(disease)

		// Базовая вариация: от -3 до +8 тестов за тик, умноженная на сезон.
		baseChange := int(math.Floor((a.rng.Float64()*11 - 3) * seasonal))

		previous := td.Today
		td.Today = maxInt(0, td.Today+baseChange)

		// Окно истории пополняется не каждый тик, а каждый шестой.
		td.TickCount++
		if td.TickCount >= historyPushEvery {
			td.TickCount = 0
			td.History = domain.PushWindow(td.History, previous, domain.TestHistoryLen)
		}

		// Доля позитивных: 8-25% с вариацией.
		baseRate := 0.08 + a.rng.Float64()*0.17
		td.Positive = int(float64(td.Today) * baseRate)
		if td.Today > 0 {
			td.PositiveRate = float64(td.Positive) / float64(td.Today)
		} else {
			td.PositiveRate = 0
		}

		// Мини-спайк: локальный кластер с повышенной долей позитивных.
		if a.rng.Float64() < spikeChance {
			spike := a.rng.Intn(8) + 3 // 3-10 тестов
			td.Today += spike
			td.Positive = int(float64(td.Today) * baseRate * 1.3)
		}
	}
}

// seasonalFactor возвращает множитель интенсивности тестирования:
// сезонность болезни по месяцу плюс суточный профиль по часу.
func (a *LabAgent) seasonalFactor(disease string) float64 {
	t := a.now()
	month := t.Month()
	hour := t.Hour()

	factor := 1.0

	switch disease {
	case "dengue":
		// Пик в муссон (июнь-сентябрь).
		switch month {
		case time.June, time.July, time.August, time.September:
			factor = 1.6
		case time.May, time.October:
			factor = 1.3
		}
	case "malaria":
		// Пик после муссона (июль-октябрь).
		switch month {
		case time.July, time.August, time.September, time.October:
			factor = 1.5
		}
	case "influenza":
		// Зимний пик (ноябрь-февраль).
		switch month {
		case time.November, time.December, time.January, time.February:
			factor = 1.7
		}
	case "covid":
		// Легкий зимний подъем.
		switch month {
		case time.December, time.January, time.February:
			factor = 1.3
		}
	case "typhoid":
		// Летний пик (апрель-июнь).
		switch month {
		case time.April, time.May, time.June:
			factor = 1.4
		}
	}

	// Больше тестов утром, чуть меньше днем.
	if hour >= 8 && hour <= 12 {
		factor *= 1.2
	} else if hour >= 13 && hour <= 16 {
		factor *= 1.1
	}

	return factor
}

// checkDiseaseOutbreak сравнивает сегодняшний объем со средним двух последних
// записей истории и при превышении порога публикует событие вспышки.
func (a *LabAgent) checkDiseaseOutbreak(lab *domain.Lab, disease string) {
	td := lab.TestData[disease]
	if td == nil || len(td.History) < 2 {
		// Меньше двух точек истории - детекция пропускается целиком.
		return
	}

	last := td.History[len(td.History)-1]
	secondLast := td.History[len(td.History)-2]
	avg := float64(last+secondLast) / 2

	// Нулевой базис не дает сигнала роста.
	growthRate := 0.0
	if avg > 0 {
		growthRate = (float64(td.Today) - avg) / avg
	}

	riskLevel := domain.ClassifyGrowth(growthRate)
	confidence := 0.65
	if len(td.History) >= 5 {
		confidence = 0.85
	}

	if !(avg > 0 && float64(td.Today) > outbreakTriggerFactor*avg) {
		return
	}

	zoneHospitals := a.world.ZoneHospitalNames(lab.Zone)
	zonePharmacies := a.world.ZonePharmacyNames(lab.Zone)

	positivePct := 0.0
	if td.Today > 0 {
		positivePct = float64(td.Positive) / float64(td.Today) * 100
	}

	a.log(
		fmt.Sprintf("🚨 %s: %s OUTBREAK DETECTED! Tests: %d (+%.0f%% spike) | Positive rate: %.1f%%",
			lab.Name, strings.ToUpper(disease), td.Today, growthRate*100, positivePct),
		activity.Meta{
			"agent": "Lab", "type": "OUTBREAK_DETECTED", "entityId": a.id,
			"zone": lab.Zone, "disease": disease, "riskLevel": riskLevel, "confidence": confidence,
		},
	)

	a.log(
		fmt.Sprintf("📡 %s: Broadcasting %s alert to %d hospitals & %d pharmacies in %s",
			lab.Name, strings.ToUpper(disease), len(zoneHospitals), len(zonePharmacies), lab.Zone),
		activity.Meta{
			"agent": "Lab", "type": "COORDINATION", "entityId": a.id,
			"zone": lab.Zone, "disease": disease,
			"recipients": map[string][]string{"hospitals": zoneHospitals, "pharmacies": zonePharmacies},
		},
	)

	a.bus.Publish(domain.OutbreakEvent(disease), &domain.OutbreakPrediction{
		LabID:          a.id,
		LabName:        lab.Name,
		Zone:           lab.Zone,
		Disease:        disease,
		Today:          td.Today,
		Avg:            avg,
		GrowthRate:     growthRate,
		RiskLevel:      riskLevel,
		Confidence:     confidence,
		PositiveRate:   td.PositiveRate,
		PredictedCases: int(math.Round(float64(td.Today) * (1 + growthRate))),
	})

	// Для денге дополнительно публикуем событие в старом укороченном формате.
	// Старые подписчики знают только его; новые обязаны понимать оба.
	if disease == "dengue" {
		a.bus.Publish(domain.OutbreakEvent(disease), &domain.LegacyOutbreak{
			Zone:  lab.Zone,
			Today: td.Today,
			Avg:   avg,
		})
	}
}

// checkLabCapacity публикует предупреждение при суммарной загрузке выше 85%.
func (a *LabAgent) checkLabCapacity(lab *domain.Lab) {
	totalTests, totalCapacity, utilization := lab.Utilization()

	if utilization <= labCapacityThreshold {
		return
	}

	a.log(
		fmt.Sprintf("[Lab %s] High capacity utilization: %.1f%% (%d/%d tests)",
			a.id, utilization*100, totalTests, totalCapacity),
		activity.Meta{"agent": "Lab", "type": "CAPACITY_WARNING", "entityId": a.id, "utilization": utilization},
	)

	a.bus.Publish(domain.EventLabCapacity, &domain.LabCapacityWarning{
		LabID:         a.id,
		Zone:          lab.Zone,
		Utilization:   utilization,
		TotalTests:    totalTests,
		TotalCapacity: totalCapacity,
		QueueLength:   lab.QueueLength,
	})
}
