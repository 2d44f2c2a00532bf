package services

import (
	"reserva-eva/config"
	"reserva-eva/models"
	"reserva-eva/store"
)

// newTestEnv wires the services to a fresh store and a fixed config
func newTestEnv() *store.Store {
	s := store.New(50, models.DefaultAgeTiers())
	Init(&config.Config{
		GeminiBaseURL:   "http://127.0.0.1:0",
		GeminiModel:     "gemini-2.0-flash",
		AdminUsername:   "Admin",
		AdminPassword:   "eva1997",
		JWTSecret:       "test-secret",
		DefaultDayLimit: 50,
		WhatsAppNumber:  "5516981394818",
	}, s)
	return s
}
