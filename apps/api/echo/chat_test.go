package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutorai/core/chat"
)

func TestChatAPI_Reply(t *testing.T) {
	srv, _ := setup(t)

	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: []byte(`{"message":"this field is required"}`),
	}, do(srv, http.MethodPost, "/api/chat", []byte(`{"context":{"page":"tasks"}}`)))

	rec := do(srv, http.MethodPost, "/api/chat", []byte(`{"message":"What about my grade?"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var reply chat.Reply
	decode(t, rec, &reply)
	assert.Equal(t, chat.Answer("grade"), reply.Response)
	assert.Contains(t, reply.Response, "grading systems")

	ts, err := time.Parse(chat.TimestampFormat, reply.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}
