package signup

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

type ModuleSignup struct{}

func (p *ModuleSignup) GetName() string {
	return "Signup"
}

func (p *ModuleSignup) Init() {
	log = logger.New("Signup")
	repo = store.New(database.DB)
}
