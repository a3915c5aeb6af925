package testutil

import (
	"io/ioutil"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/trezcool/tutorai/apps/api/echo"
	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/core/school"
	logsvc "github.com/trezcool/tutorai/services/logger"
	inmemdb "github.com/trezcool/tutorai/storage/database/inmem"
)

// Config returns the configuration used by tests.
func Config() *core.Config {
	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "TutorAI", Build: "test"}
	conf.Server.APIPrefix = "/api"
	conf.Server.CORSOrigins = []string{"*"}
	conf.Server.DisableRequestLogs = true
	return conf
}

// Logger returns a logger that discards everything.
func Logger() core.Logger {
	return logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), Config())
}

// StartAPI serves the API over a fresh store holding the fixtures.
// The returned base URL includes the API prefix.
func StartAPI(t *testing.T) (baseURL string, svc *school.Service) {
	svc = school.NewService(inmemdb.Open())
	if err := svc.LoadFixtures(); err != nil {
		t.Fatalf("LoadFixtures() failed: %v", err)
	}

	conf := Config()
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	srv := echoapi.NewServer(&echoapi.Deps{
		Conf:       conf,
		Logger:     Logger(),
		SchoolSvc:  svc,
		Validate:   validate,
		Translator: translator,
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	return ts.URL + conf.Server.APIPrefix, svc
}

func CreateStudent(t *testing.T, svc school.ServiceInterface, name, email string) school.Student {
	student, err := svc.CreateStudent(school.NewStudent{Name: name, Email: email})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return student
}

func CreateCourse(t *testing.T, svc school.ServiceInterface, title, description string) school.Course {
	course, err := svc.CreateCourse(school.NewCourse{Title: title, Description: description})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return course
}
