package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"vfp/workout-tracker/internal/repository/sqlite"
	"vfp/workout-tracker/internal/service"
)

const testJWTSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	stateService := service.NewStateService(nil, store)
	workoutService := service.NewWorkoutService(stateService)
	authService := service.NewUnavailableAuthService(testJWTSecret)

	router := gin.New()
	SetupRoutes(router, testJWTSecret, authService, stateService, workoutService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, deviceID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set(DeviceIDHeader, deviceID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestAnonymousSessionFlow(t *testing.T) {
	router := newTestRouter(t)
	const device = "test-device"

	// Start Tuesday's session.
	w := doJSON(t, router, http.MethodPost, "/api/v1/session/start", device, gin.H{"day": "Tuesday"})
	if w.Code != http.StatusCreated {
		t.Fatalf("start: status %d, body %s", w.Code, w.Body.String())
	}
	var snapshot service.SessionSnapshot
	decodeBody(t, w, &snapshot)
	if snapshot.Day != "Tuesday" || snapshot.Progress.TotalSets != 11 {
		t.Fatalf("unexpected snapshot: day %q, total sets %d", snapshot.Day, snapshot.Progress.TotalSets)
	}

	// Record and complete one set.
	one := 0
	w = doJSON(t, router, http.MethodPatch, "/api/v1/session/sets", device, SetFieldRequest{
		ExerciseID: "tue_r1", SetIndex: &one, Field: "weight", Value: "22.5",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set field: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/session/sets/toggle", device, ToggleSetRequest{
		ExerciseID: "tue_r1", SetIndex: &one,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status %d, body %s", w.Code, w.Body.String())
	}
	var progress struct {
		CompletedSets int `json:"completedSets"`
		Percent       int `json:"progressPercent"`
	}
	decodeBody(t, w, &progress)
	if progress.CompletedSets != 1 || progress.Percent != 9 {
		t.Errorf("progress after one set: %+v", progress)
	}

	// The session is retrievable and reflects the edit.
	w = doJSON(t, router, http.MethodGet, "/api/v1/session", device, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("current: status %d", w.Code)
	}
	decodeBody(t, w, &snapshot)
	if got := snapshot.Logs["tue_r1"][0].Weight; got != "22.5" {
		t.Errorf("stored weight = %q, want 22.5", got)
	}

	// Finish: summary plus scoring result.
	w = doJSON(t, router, http.MethodPost, "/api/v1/session/finish", device, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("finish: status %d, body %s", w.Code, w.Body.String())
	}
	var result service.FinishResult
	decodeBody(t, w, &result)
	if result.Summary.CompletedSets != 1 {
		t.Errorf("summary completed sets = %d, want 1", result.Summary.CompletedSets)
	}
	if result.Gamification.XPEarned == 0 || result.Gamification.Streak != 1 {
		t.Errorf("gamification result: %+v", result.Gamification)
	}

	// The session is gone, history and stats survived.
	w = doJSON(t, router, http.MethodGet, "/api/v1/session", device, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("session after finish: status %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/history", device, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("history: status %d", w.Code)
	}
	var history []json.RawMessage
	decodeBody(t, w, &history)
	if len(history) != 1 {
		t.Errorf("history length = %d, want 1", len(history))
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/stats", device, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status %d", w.Code)
	}
	var stats service.Stats
	decodeBody(t, w, &stats)
	if stats.TotalWorkouts != 1 || stats.XP != result.Gamification.XP {
		t.Errorf("stats: %+v", stats)
	}

	// Starting again pre-fills resistance fields from the completed set.
	w = doJSON(t, router, http.MethodPost, "/api/v1/session/start", device, gin.H{"day": "Tuesday"})
	if w.Code != http.StatusCreated {
		t.Fatalf("restart: status %d", w.Code)
	}
	decodeBody(t, w, &snapshot)
	if got := snapshot.Logs["tue_r1"][0].Weight; got != "22.5" {
		t.Errorf("prefilled weight = %q, want 22.5", got)
	}
}

func TestStartRestDay(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/v1/session/start", "d", gin.H{"day": "Monday"})
	if w.Code != http.StatusNotFound {
		t.Errorf("rest day start: status %d, want 404", w.Code)
	}
}

func TestSessionValidationErrors(t *testing.T) {
	router := newTestRouter(t)
	const device = "d"

	// No active session yet.
	w := doJSON(t, router, http.MethodGet, "/api/v1/session/progress", device, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("progress without session: status %d, want 404", w.Code)
	}

	if w := doJSON(t, router, http.MethodPost, "/api/v1/session/start", device, gin.H{"day": "Tuesday"}); w.Code != http.StatusCreated {
		t.Fatalf("start: status %d", w.Code)
	}

	zero := 0
	w = doJSON(t, router, http.MethodPatch, "/api/v1/session/sets", device, SetFieldRequest{
		ExerciseID: "nope", SetIndex: &zero, Field: "weight", Value: "10",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown exercise: status %d, want 400", w.Code)
	}

	big := 99
	w = doJSON(t, router, http.MethodPost, "/api/v1/session/sets/toggle", device, ToggleSetRequest{
		ExerciseID: "tue_r1", SetIndex: &big,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("out-of-range index: status %d, want 400", w.Code)
	}

	// Cardio fields are rejected on resistance entries.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/session/sets", device, SetFieldRequest{
		ExerciseID: "tue_r1", SetIndex: &zero, Field: "distance", Value: "5",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong field kind: status %d, want 400", w.Code)
	}

	// Missing required body fields.
	w = doJSON(t, router, http.MethodPatch, "/api/v1/session/sets", device, gin.H{"exerciseId": "tue_r1"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status %d, want 400", w.Code)
	}
}

func TestAbandonSession(t *testing.T) {
	router := newTestRouter(t)
	const device = "d"

	if w := doJSON(t, router, http.MethodPost, "/api/v1/session/start", device, gin.H{"day": "Saturday"}); w.Code != http.StatusCreated {
		t.Fatalf("start: status %d", w.Code)
	}

	w := doJSON(t, router, http.MethodDelete, "/api/v1/session", device, nil)
	if w.Code != http.StatusNoContent {
		t.Errorf("abandon: status %d, want 204", w.Code)
	}

	// Nothing was persisted.
	w = doJSON(t, router, http.MethodGet, "/api/v1/history", device, nil)
	var history []json.RawMessage
	decodeBody(t, w, &history)
	if len(history) != 0 {
		t.Errorf("history after abandon: %d entries, want 0", len(history))
	}
}

func TestDeviceIDIssuedWhenMissing(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/me", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: status %d", w.Code)
	}
	if w.Header().Get(DeviceIDHeader) == "" {
		t.Error("no device id issued to anonymous client")
	}
	var me struct {
		Authenticated bool   `json:"authenticated"`
		Key           string `json:"key"`
	}
	decodeBody(t, w, &me)
	if me.Authenticated {
		t.Error("anonymous request reported as authenticated")
	}
}

func signTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"uid": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestMeAuthenticatedWithoutDatabase(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "64b000000000000000000001"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// The test router runs local-only; the profile lookup needs the user
	// database.
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("me with token but no database: status %d, want 503", w.Code)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("invalid token: status %d, want 401", w.Code)
	}
}

func TestAuthUnavailable(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name": "Test", "email": "test@example.com", "password": "secret123",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("register without database: status %d, want 503", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email": "test@example.com", "password": "secret123",
	})
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("login without database: status %d, want 503", w.Code)
	}
}

func TestProgramEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/programs", "d", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("programs: status %d", w.Code)
	}
	var programs []struct {
		Day       string `json:"day"`
		Exercises []struct {
			ID string `json:"id"`
		} `json:"exercises"`
	}
	decodeBody(t, w, &programs)
	if len(programs) != 4 {
		t.Fatalf("program count = %d, want 4", len(programs))
	}
	for _, p := range programs {
		if len(p.Exercises) == 0 {
			t.Errorf("program %s has no exercises", p.Day)
		}
	}
}
