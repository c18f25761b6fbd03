package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aditya-debugs/Heal-Sync/internal/activity"
	"github.com/aditya-debugs/Heal-Sync/internal/bus"
	"github.com/aditya-debugs/Heal-Sync/internal/domain"
	"github.com/aditya-debugs/Heal-Sync/pkg/logger"
	"github.com/aditya-debugs/Heal-Sync/pkg/worldgen"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer() *Server {
	return New(worldgen.Generate(), bus.New(), activity.New(50), 0)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHandleState_FullSnapshot(t *testing.T) {
	s := newTestServer()
	rec := httptest.NewRecorder()

	s.handleState(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var snap struct {
		Hospitals map[string]json.RawMessage `json:"hospitals"`
		Labs      map[string]json.RawMessage `json:"labs"`
		City      struct {
			Name string `json:"name"`
		} `json:"city"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Len(t, snap.Hospitals, 4)
	assert.Len(t, snap.Labs, 2)
	assert.Equal(t, "Mumbai", snap.City.Name)
}

func TestHandleLogs(t *testing.T) {
	s := newTestServer()
	s.Activity.Send("hello from test", activity.Meta{"agent": "Test"})

	rec := httptest.NewRecorder()
	s.handleLogs(rec, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []*activity.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "hello from test", entries[0].Message)
}

func TestHandleScenario_PublishesOutbreak(t *testing.T) {
	s := newTestServer()

	var got *domain.OutbreakPrediction
	s.Bus.Subscribe(domain.OutbreakEvent("dengue"), func(p any) {
		if ev, ok := p.(*domain.OutbreakPrediction); ok {
			got = ev
		}
	})

	body := strings.NewReader(`{"disease":"dengue","zone":"Zone-2","today":60,"avg":20}`)
	rec := httptest.NewRecorder()
	s.handleScenario(rec, httptest.NewRequest(http.MethodPost, "/api/scenario", body))

	require.Equal(t, http.StatusAccepted, rec.Code)
	require.NotNil(t, got, "scenario did not publish an outbreak event")
	assert.Equal(t, "Zone-2", got.Zone)
	assert.Equal(t, 60, got.Today)
	// growth = (60-20)/20 = 2.0 -> critical.
	assert.Equal(t, domain.RiskCritical, got.RiskLevel)
}

func TestHandleScenario_Validation(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.handleScenario(rec, httptest.NewRequest(http.MethodGet, "/api/scenario", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	s.handleScenario(rec, httptest.NewRequest(http.MethodPost, "/api/scenario", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	s.handleScenario(rec, httptest.NewRequest(http.MethodPost, "/api/scenario", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEnableCORS(t *testing.T) {
	called := false
	h := enableCORS(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	// Preflight не доходит до хендлера.
	called = false
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
