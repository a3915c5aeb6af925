package dig_container

import (
	"log"
	"os"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/dig"

	echoapi "github.com/trezcool/tutorai/apps/api/echo"
	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/core/school"
	logsvc "github.com/trezcool/tutorai/services/logger"
	inmemdb "github.com/trezcool/tutorai/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	stdLogger := log.New(os.Stdout, "API : ", log.LstdFlags)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newStore() school.Store {
	return inmemdb.Open()
}

func newDeps(
	conf *core.Config,
	logger core.Logger,
	svc school.ServiceInterface,
	validate *validator.Validate,
	translator ut.Translator,
) *echoapi.Deps {
	return &echoapi.Deps{
		Conf:       conf,
		Logger:     logger,
		SchoolSvc:  svc,
		Validate:   validate,
		Translator: translator,
	}
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(newStore))
	must(c.Provide(school.NewService, dig.As(new(school.ServiceInterface), new(school.FixtureLoader))))
	must(c.Provide(validator.New))
	must(c.Provide(core.NewTranslator))
	must(c.Provide(newDeps))
	must(c.Provide(echoapi.NewServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
