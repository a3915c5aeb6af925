package logsvc

import (
	"bytes"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tutorai/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "TEST : ", 0), &core.Config{Env: "TEST", Build: "test"})
	logger.Enable(true) // no token: stays disabled

	req := httptest.NewRequest("DELETE", "/api/courses/1", nil)
	logger.Error("deleting course", errors.New("boom"), map[string]interface{}{"id": 1}, req, req)
	logger.Info("started")

	out := buf.String()
	assert.Contains(t, out, "TEST : ERROR: deleting course")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "map[id:1]")
	assert.Contains(t, out, "DELETE /api/courses/1")
	assert.Contains(t, out, "TEST : INFO: started")
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{}
	req := httptest.NewRequest("GET", "/", nil)
	err := errors.New("boom")

	args := logger.prepare("msg", []interface{}{err, req, req})
	assert.Equal(t, []interface{}{"msg", err, req}, args)
}
