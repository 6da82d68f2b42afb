package camper

import (
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/global/logger"
	"camp-signup-system/internal/store"
	"log/slog"
)

var (
	log  *slog.Logger
	repo *store.Store
)

type ModuleCamper struct{}

func (p *ModuleCamper) GetName() string {
	return "Camper"
}

func (p *ModuleCamper) Init() {
	log = logger.New("Camper")
	repo = store.New(database.DB)
}
