package echoapi

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/core/school"
	logsvc "github.com/trezcool/tutorai/services/logger"
	inmemdb "github.com/trezcool/tutorai/storage/database/inmem"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func testConfig() *core.Config {
	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "TutorAI", Build: "test"}
	conf.Server.APIPrefix = "/api"
	conf.Server.CORSOrigins = []string{"*"}
	conf.Server.DisableRequestLogs = true
	return conf
}

// setup returns a server over a fresh store holding the fixtures (ids 1).
func setup(t *testing.T) (*Server, *school.Service) {
	svc := school.NewService(inmemdb.Open())
	require.NoError(t, svc.LoadFixtures())

	conf := testConfig()
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	srv := NewServer(&Deps{
		Conf:       conf,
		Logger:     logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf),
		SchoolSvc:  svc,
		Validate:   validate,
		Translator: translator,
	})
	return srv, svc
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func do(srv *Server, method, path string, data ...[]byte) *httptest.ResponseRecorder {
	req, rec := newRequest(method, path, data...)
	srv.ServeHTTP(rec, req)
	return rec
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		if rec.Body.Len() != 0 {
			t.Errorf("failed! data = %v; want empty body", rec.Body.String())
		}
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), obj), rec.Body.String())
}
