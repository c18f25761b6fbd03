// Package server - тонкая HTTP/WebSocket-обертка над симуляцией:
// снапшот мира, журнал активности, ручной триггер сценариев и стрим логов.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
	"github.com/aditya-debugs/Heal-Sync/internal/version"
	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
)

type Server struct {
	World    *domain.WorldState
	Bus      *bus.Bus
	Activity *activity.Log
	Port     int
}

func New(world *domain.WorldState, b *bus.Bus, log *activity.Log, port int) *Server {
	return &Server{
		World:    world,
		Bus:      b,
		Activity: log,
		Port:     port,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/api/state", enableCORS(s.handleState))
	mux.HandleFunc("/api/logs", enableCORS(s.handleLogs))
	mux.HandleFunc("/api/scenario", enableCORS(s.handleScenario))

	logger.Log.Infof("🏥 HealSync Server running on :%d", s.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", s.Port), mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// handleState отдает полный снапшот мира. Сериализация идет под мьютексом
// мира: снапшот атомарен относительно тиков агентов.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	s.World.Lock()
	defer s.World.Unlock()

	if err := json.NewEncoder(w).Encode(s.World); err != nil {
		logger.Log.WithError(err).Error("Failed to encode world snapshot")
	}
}

// handleLogs отдает журнал активности, свежие записи первыми.
func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Activity.Snapshot()); err != nil {
		logger.Log.WithError(err).Error("Failed to encode activity log")
	}
}

// scenarioRequest - ручной триггер события для демо и отладки.
type scenarioRequest struct {
	Disease string  `json:"disease"`
	Zone    string  `json:"zone"`
	Today   int     `json:"today"`
	Avg     float64 `json:"avg"`
}

// handleScenario публикует искусственное событие вспышки в шину.
// Срабатывают те же подписчики, что и при органической детекции.
func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Disease == "" || req.Zone == "" {
		http.Error(w, "disease and zone are required", http.StatusBadRequest)
		return
	}

	today := req.Today
	if today == 0 {
		today = 50
	}
	avg := req.Avg
	if avg == 0 {
		avg = 20
	}
	growthRate := (float64(today) - avg) / avg

	s.World.Lock()
	s.Bus.Publish(domain.OutbreakEvent(req.Disease), &domain.OutbreakPrediction{
		LabID:          "SCENARIO",
		LabName:        "Scenario Trigger",
		Zone:           req.Zone,
		Disease:        req.Disease,
		Today:          today,
		Avg:            avg,
		GrowthRate:     growthRate,
		RiskLevel:      domain.ClassifyGrowth(growthRate),
		Confidence:     0.99,
		PredictedCases: today * 2,
	})
	s.World.Unlock()

	logger.Log.WithField("disease", req.Disease).Info("Scenario triggered manually")
	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(`{"status":"triggered"}`))
}

// handleWS апгрейдит соединение и стримит записи журнала активности.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Activity.Hub(), conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
