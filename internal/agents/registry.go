package agents

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/config"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
	"github.com/aditya-debugs/Heal-Sync/pkg/utils"
)

// Registry строит полный набор агентов по текущему миру и гоняет их тики
// по расписанию. Каждый тик оборачивается мьютексом мира, поэтому
// одновременно исполняется ровно один тик, сколько бы горутин ни породил cron.
type Registry struct {
	world  *domain.WorldState
	agents []Agent
	cron   *cron.Cron
}

// NewRegistry создает по агенту на каждую сущность мира плюс городского
// координатора. ID обходятся в отсортированном порядке, а каждый агент
// получает производный от masterSeed генератор: мир при одном сиде
// воспроизводим независимо от порядка создания.
func NewRegistry(world *domain.WorldState, b *bus.Bus, log activity.LogFunc, cfg *config.Config, masterSeed int64) *Registry {
	r := &Registry{
		world: world,
		cron:  cron.New(),
	}

	rng := func(id string) *rand.Rand {
		return rand.New(rand.NewSource(masterSeed + utils.StringToSeed(id)))
	}

	for _, id := range sortedKeys(world.Labs) {
		r.agents = append(r.agents, NewLabAgent(id, world, b, log, rng("lab:"+id), nil, cfg.Intervals.Lab))
	}
	for _, id := range sortedKeys(world.Hospitals) {
		r.agents = append(r.agents, NewHospitalAgent(id, world, b, log, rng("hospital:"+id), cfg.Intervals.Hospital))
	}
	for _, id := range sortedKeys(world.Pharmacies) {
		r.agents = append(r.agents, NewPharmacyAgent(id, world, b, log, rng("pharmacy:"+id), cfg.Intervals.Pharmacy))
	}
	for _, id := range sortedKeys(world.Suppliers) {
		r.agents = append(r.agents, NewSupplierAgent(id, world, b, log, rng("supplier:"+id), cfg.Intervals.Supplier))
	}
	r.agents = append(r.agents, NewCityAgent(world, b, log, cfg.Intervals.City))

	return r
}

// Agents возвращает срез зарегистрированных агентов (для тестов и статуса).
func (r *Registry) Agents() []Agent { return r.agents }

// Start логирует инициализацию агентов и запускает расписание.
func (r *Registry) Start() error {
	for _, a := range r.agents {
		r.world.Lock()
		a.Start()
		r.world.Unlock()
	}

	for _, a := range r.agents {
		agent := a
		spec := fmt.Sprintf("@every %s", agent.Interval())
		if _, err := r.cron.AddFunc(spec, func() { r.runTick(agent) }); err != nil {
			return fmt.Errorf("schedule agent %s: %w", agent.Name(), err)
		}
	}

	r.cron.Start()
	logger.Log.WithField("agents", len(r.agents)).Info("Agent registry started")
	return nil
}

// Stop останавливает расписание и дожидается завершения текущих тиков.
func (r *Registry) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.Log.Info("Agent registry stopped")
}

// runTick - обертка одного тика: мьютекс мира плюс защита от паники,
// чтобы сбой одного агента не валил планировщик.
func (r *Registry) runTick(a Agent) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.WithFields(logrus.Fields{
				"agent": a.Name(),
				"panic": rec,
			}).Error("Agent tick panicked")
		}
	}()

	r.world.Lock()
	defer r.world.Unlock()

	start := time.Now()
	a.Tick()

	if elapsed := time.Since(start); elapsed > time.Second {
		logger.Log.WithFields(logrus.Fields{
			"agent":   a.Name(),
			"elapsed": elapsed,
		}).Warn("Slow agent tick")
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
