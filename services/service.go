package services

import (
	"reserva-eva/config"
	"reserva-eva/store"
)

var (
	cfg       *config.Config
	siteStore *store.Store
)

// Init wires the services to the loaded configuration and the site store
func Init(config *config.Config, s *store.Store) {
	cfg = config
	siteStore = s
}
