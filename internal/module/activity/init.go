package activity

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

type ModuleActivity struct{}

func (p *ModuleActivity) GetName() string {
	return "Activity"
}

func (p *ModuleActivity) Init() {
	log = logger.New("Activity")
	repo = store.New(database.DB)
}
