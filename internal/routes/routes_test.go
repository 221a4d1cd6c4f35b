package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"openride/internal/cache"
	"openride/internal/config"
	"openride/internal/controllers"
	"openride/internal/models"
	"openride/internal/routes"
	"openride/internal/seeder"
	"openride/internal/testhelpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type loginData struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expires_in"`
}

func setup(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.NewTestDB(t)
	if _, err := seeder.New(db, nil).Run(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		controllers.SetRouteCache(nil)
	})

	return routes.SetupRouter()
}

func call(t *testing.T, r http.Handler, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s: %v (%s)", method, path, err, w.Body.String())
	}
	return w.Code, env
}

func login(t *testing.T, r http.Handler, email string) loginData {
	t.Helper()
	code, env := call(t, r, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": "demo123"})
	if code != http.StatusOK {
		t.Fatalf("login %s: status = %d, error = %s", email, code, env.Error)
	}
	var data loginData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return data
}

func TestLogin(t *testing.T) {
	r := setup(t)

	data := login(t, r, "driver@demo.com")
	if data.Token == "" {
		t.Error("expected token")
	}
	if data.User.Role != models.RoleDriver {
		t.Errorf("role = %s, want DRIVER", data.User.Role)
	}
	if data.User.Password != "" {
		t.Error("password hash must not be serialized")
	}
	if data.ExpiresIn != 72*3600 {
		t.Errorf("expires_in = %d", data.ExpiresIn)
	}
}

func TestLoginFailures(t *testing.T) {
	r := setup(t)

	tests := []struct {
		name string
		body map[string]string
		want int
	}{
		{"wrong password", map[string]string{"email": "rider@demo.com", "password": "demo124"}, http.StatusUnauthorized},
		{"unknown email", map[string]string{"email": "nobody@demo.com", "password": "demo123"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"email": "rider@demo.com"}, http.StatusBadRequest},
		{"bad email", map[string]string{"email": "rider", "password": "demo123"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := call(t, r, http.MethodPost, "/auth/login", "", tt.body)
			if code != tt.want {
				t.Errorf("status = %d, want %d", code, tt.want)
			}
			if env.Success || env.Error == "" {
				t.Errorf("expected failure envelope, got %+v", env)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	r := setup(t)
	data := login(t, r, "rider@demo.com")

	code, env := call(t, r, http.MethodGet, "/auth/me", data.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %s", code, env.Error)
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if user.Email != "rider@demo.com" || user.Role != models.RoleRider {
		t.Errorf("got %s/%s", user.Email, user.Role)
	}

	if code, _ := call(t, r, http.MethodGet, "/auth/me", "", nil); code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", code)
	}
}

func searchRoutes(t *testing.T, r http.Handler, query string) []models.Route {
	t.Helper()
	code, env := call(t, r, http.MethodGet, "/routes/search"+query, "", nil)
	if code != http.StatusOK {
		t.Fatalf("search %s: status = %d, error = %s", query, code, env.Error)
	}
	var routes []models.Route
	if err := json.Unmarshal(env.Data, &routes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return routes
}

func TestSearchRoutes(t *testing.T) {
	r := setup(t)

	got := searchRoutes(t, r, "?from=ikeja")
	if len(got) != 1 {
		t.Fatalf("routes from Ikeja = %d, want 1", len(got))
	}
	route := got[0]
	if route.EndLocation != "Victoria Island" || route.PricePerSeat != 566.00 || route.AvailableSeats != 12 {
		t.Errorf("unexpected route %+v", route)
	}
	if route.Driver == nil || route.Driver.Email != "driver@demo.com" {
		t.Errorf("driver not preloaded: %+v", route.Driver)
	}
	if route.Vehicle == nil || route.Vehicle.PlateNumber != "LAG-123-XY" {
		t.Errorf("vehicle not preloaded: %+v", route.Vehicle)
	}

	if all := searchRoutes(t, r, ""); len(all) != 15 {
		t.Errorf("all routes = %d, want 15", len(all))
	}
	// Only the Hiace routes have more than four free seats.
	if big := searchRoutes(t, r, "?seats=5"); len(big) != 6 {
		t.Errorf("routes with 5 seats = %d, want 6", len(big))
	}
	if none := searchRoutes(t, r, "?from=Ikeja&to=Kano"); len(none) != 0 {
		t.Errorf("Ikeja → Kano = %d, want 0", len(none))
	}

	if code, _ := call(t, r, http.MethodGet, "/routes/search?seats=zero", "", nil); code != http.StatusBadRequest {
		t.Errorf("bad seats: status = %d, want 400", code)
	}
}

func TestSearchRoutesCached(t *testing.T) {
	r := setup(t)
	mr := miniredis.RunT(t)
	rc := cache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { _ = rc.Close() })
	controllers.SetRouteCache(rc)

	first := searchRoutes(t, r, "?from=Lekki")
	if len(first) != 1 {
		t.Fatalf("routes from Lekki = %d, want 1", len(first))
	}
	key := cache.SearchKey("Lekki", "", 1)
	if !mr.Exists(key) {
		t.Fatalf("expected %s to be cached", key)
	}

	// Served from the cache even after the row is gone.
	if err := config.DB.Unscoped().Where("start_location = ?", "Lekki").Delete(&models.Route{}).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	if again := searchRoutes(t, r, "?from=Lekki"); len(again) != 1 {
		t.Errorf("cached routes = %d, want 1", len(again))
	}

	if _, err := rc.Invalidate(context.Background()); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if after := searchRoutes(t, r, "?from=Lekki"); len(after) != 0 {
		t.Errorf("routes after invalidation = %d, want 0", len(after))
	}
}

func TestGetRoute(t *testing.T) {
	r := setup(t)
	route := searchRoutes(t, r, "?from=Enugu")[0]

	code, env := call(t, r, http.MethodGet, fmt.Sprintf("/routes/%d", route.ID), "", nil)
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %s", code, env.Error)
	}
	var got models.Route
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.EndLocation != "New Haven" || got.DepartureTime != "15:00" {
		t.Errorf("got %s at %s", got.EndLocation, got.DepartureTime)
	}

	if code, _ := call(t, r, http.MethodGet, "/routes/999999", "", nil); code != http.StatusNotFound {
		t.Errorf("missing route: status = %d, want 404", code)
	}
	if code, _ := call(t, r, http.MethodGet, "/routes/abc", "", nil); code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", code)
	}
}

func TestDriverEndpoints(t *testing.T) {
	r := setup(t)
	driver := login(t, r, "ada@driver.com")

	code, env := call(t, r, http.MethodGet, "/routes/my-routes", driver.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("my-routes: status = %d, error = %s", code, env.Error)
	}
	var mine []models.Route
	if err := json.Unmarshal(env.Data, &mine); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(mine) != 4 {
		t.Errorf("Ada's routes = %d, want 4", len(mine))
	}
	for _, rt := range mine {
		if rt.DriverID != driver.User.ID {
			t.Errorf("route %d belongs to %d", rt.ID, rt.DriverID)
		}
	}

	code, env = call(t, r, http.MethodGet, "/vehicles/mine", driver.Token, nil)
	if code != http.StatusOK {
		t.Fatalf("vehicles: status = %d, error = %s", code, env.Error)
	}
	var vehicles []models.Vehicle
	if err := json.Unmarshal(env.Data, &vehicles); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].PlateNumber != "LAG-789-AB" {
		t.Errorf("vehicles = %+v", vehicles)
	}

	rider := login(t, r, "john@test.com")
	if code, _ := call(t, r, http.MethodGet, "/routes/my-routes", rider.Token, nil); code != http.StatusForbidden {
		t.Errorf("rider my-routes: status = %d, want 403", code)
	}
	if code, _ := call(t, r, http.MethodGet, "/vehicles/mine", rider.Token, nil); code != http.StatusForbidden {
		t.Errorf("rider vehicles: status = %d, want 403", code)
	}
}
