package home

import (
	"camp-signup-system/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleHome struct{}

func (p *ModuleHome) GetName() string {
	return "Home"
}

func (p *ModuleHome) Init() {
	log = logger.New("Home")
}
