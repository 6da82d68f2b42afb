package module

import (
	"camp-signup-system/internal/module/activity"
	"camp-signup-system/internal/module/camper"
	"camp-signup-system/internal/module/home"
	"camp-signup-system/internal/module/signup"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&home.ModuleHome{},
		&camper.ModuleCamper{},
		&activity.ModuleActivity{},
		&signup.ModuleSignup{},
	})
}
