package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reserva-eva/config"
	"reserva-eva/models"
	"reserva-eva/services"
	"reserva-eva/store"
)

func newTestRouter() (*gin.Engine, *config.Config, *store.Store) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GeminiBaseURL:   "http://127.0.0.1:1",
		GeminiModel:     "gemini-2.0-flash",
		AdminUsername:   "Admin",
		AdminPassword:   "eva1997",
		JWTSecret:       "test-secret",
		DefaultDayLimit: 50,
		WhatsAppNumber:  "5516981394818",
	}
	s := store.New(cfg.DefaultDayLimit, models.DefaultAgeTiers())
	services.Init(cfg, s)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/properties", GetProperties)
		api.GET("/tiers", GetTiers)
		api.GET("/calendar", GetCalendar)
		api.GET("/days/:date", GetDay)
		api.GET("/days/:date/bookings/:id/share-link", GetShareLink)
		api.POST("/bookings", CreateBooking)
		api.GET("/bookings/lookup", LookupGuest)
		api.POST("/ai/chat", ChatWithConcierge)
		api.POST("/admin/login", Login)

		admin := api.Group("/admin", AdminAuth())
		{
			admin.GET("/config", GetSiteConfig)
			admin.POST("/days/status", SetDayStatus)
			admin.POST("/days/limit", SetDayLimit)
			admin.PUT("/tiers/:id", UpdateTier)
			admin.POST("/bookings/:date/:id/payment", SetPayment)
			admin.GET("/export/:date/csv", ExportDayCSV)
			admin.GET("/export/:date/xlsx", ExportDayXLSX)
		}
	}
	return router, cfg, s
}

func doJSON(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bookingBody(date string) map[string]interface{} {
	return map[string]interface{}{
		"date":            date,
		"name":            "João Pereira",
		"cpf":             "111.222.333-44",
		"phone":           "16999990000",
		"email":           "joao@example.com",
		"birth_date":      "1985-03-12",
		"total_guests":    6,
		"guest_breakdown": map[string]int{"t1": 2, "t2": 1, "t3": 3},
	}
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "Admin",
		"password": "eva1997",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestTiersEndpoint(t *testing.T) {
	router, _, s := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/tiers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var tiers []models.AgeTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	require.Len(t, tiers, 3)
	assert.Equal(t, "t1", tiers[0].ID)

	// The endpoint reads the live tier list, not a startup copy
	minAge := 11
	price := 20.0
	_, err := s.UpdateTier("t3", models.TierUpdateRequest{
		Label:  "Acima de 11 anos",
		MinAge: &minAge,
		Price:  &price,
	})
	require.NoError(t, err)

	w = doJSON(router, http.MethodGet, "/api/tiers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tiers))
	assert.Equal(t, 20.0, tiers[2].Price)
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-13"), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 53.0, resp.TotalPrice)
	require.NotNil(t, resp.Booking)
	assert.Len(t, resp.Booking.ID, 9)
	assert.Contains(t, resp.ShareLink, "https://wa.me/5516981394818?text=")
}

func TestCreateBookingEndpointBlockedDay(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-16"), "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingEndpointMissingFields(t *testing.T) {
	router, _, _ := newTestRouter()

	body := bookingBody("2024-07-13")
	delete(body, "name")
	w := doJSON(router, http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalendarEndpoint(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/calendar?month=2024-07", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var days []models.DayAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 31)
	assert.False(t, days[15].Available, "Tuesday stays blocked")
	assert.True(t, days[12].Available, "Saturday with occupancy 0 and limit 50 is open")

	w = doJSON(router, http.MethodGet, "/api/calendar", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLookupEndpoint(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-13"), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/bookings/lookup?cpf=11122233344&date=2024-07-13", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LookupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Len(t, resp.SameDay, 1)

	w = doJSON(router, http.MethodGet, "/api/bookings/lookup", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareLinkEndpoint(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-13"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var created models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/days/2024-07-13/bookings/%s/share-link", created.Booking.ID)
	w = doJSON(router, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wa.me")

	w = doJSON(router, http.MethodGet, "/api/days/2024-07-13/bookings/NOPE/share-link", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatEndpointFallsBack(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/ai/chat", map[string]string{"message": "Oi"}, "")
	require.Equal(t, http.StatusOK, w.Code, "remote failure never surfaces as an HTTP error")

	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, services.FallbackMessage, resp.Message)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "Admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, _ := newTestRouter()

	w := doJSON(router, http.MethodGet, "/api/admin/config", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/config", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := adminToken(t, router)
	w = doJSON(router, http.MethodGet, "/api/admin/config", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPaymentToggleEndpoint(t *testing.T) {
	router, _, s := newTestRouter()
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-13"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var created models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	path := fmt.Sprintf("/api/admin/bookings/2024-07-13/%s/payment", created.Booking.ID)
	w = doJSON(router, http.MethodPost, path, map[string]bool{"paid": true}, token)
	require.Equal(t, http.StatusOK, w.Code)

	day := s.EffectiveDay("2024-07-13")
	require.Len(t, day.Bookings, 1)
	assert.True(t, day.Bookings[0].Paid)
	assert.Equal(t, 6, day.CurrentBookings, "occupancy unaffected by the toggle")

	w = doJSON(router, http.MethodPost, "/api/admin/bookings/2024-07-13/NOPE/payment", map[string]bool{"paid": true}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDayStatusAndLimitEndpoints(t *testing.T) {
	router, _, s := newTestRouter()
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPost, "/api/admin/days/status", map[string]interface{}{
		"dates":   []string{"2024-07-16"},
		"blocked": false,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, s.EffectiveDay("2024-07-16").IsBlocked)

	// Global change: no dates selected
	w = doJSON(router, http.MethodPost, "/api/admin/days/limit", map[string]interface{}{
		"dates": []string{},
		"limit": 20,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 20, s.GlobalLimit())
	assert.Equal(t, 20, s.EffectiveDay("2024-07-16").Limit)

	// Targeted change: only the selected date moves
	w = doJSON(router, http.MethodPost, "/api/admin/days/limit", map[string]interface{}{
		"dates": []string{"2024-07-20"},
		"limit": 5,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, s.EffectiveDay("2024-07-20").Limit)
	assert.Equal(t, 20, s.GlobalLimit())

	w = doJSON(router, http.MethodPost, "/api/admin/days/status", map[string]interface{}{
		"dates":   []string{"16/07/2024"},
		"blocked": true,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTierEndpoint(t *testing.T) {
	router, _, s := newTestRouter()
	token := adminToken(t, router)

	w := doJSON(router, http.MethodPut, "/api/admin/tiers/t3", map[string]interface{}{
		"label":   "Acima de 11 anos",
		"min_age": 11,
		"price":   18.0,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	tiers := s.Tiers()
	assert.Equal(t, 18.0, tiers[2].Price)
	assert.Nil(t, tiers[2].MaxAge)

	w = doJSON(router, http.MethodPut, "/api/admin/tiers/ghost", map[string]interface{}{
		"label":   "x",
		"min_age": 0,
		"price":   1.0,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportEndpoints(t *testing.T) {
	router, _, _ := newTestRouter()
	token := adminToken(t, router)

	w := doJSON(router, http.MethodGet, "/api/admin/export/2024-07-13/csv", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code, "empty day has nothing to export")

	doJSON(router, http.MethodPost, "/api/bookings", bookingBody("2024-07-13"), "")

	w = doJSON(router, http.MethodGet, "/api/admin/export/2024-07-13/csv", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reservas-vista-alegre-2024-07-13.csv")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	w = doJSON(router, http.MethodGet, "/api/admin/export/2024-07-13/xlsx", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}
