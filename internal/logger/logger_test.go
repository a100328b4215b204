package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		l := WithContext(context.Background())
		assert.Equal(t, "unknown", l.Data["user"])
		_, hasRequestID := l.Data["request_id"]
		assert.False(t, hasRequestID)
	})

	t.Run("user and request id", func(t *testing.T) {
		ctx := WithUser(context.Background(), "7b0c5bd2-5c6e-4a8b-8f9d-1f1f2b3c4d5e")
		ctx = WithRequestID(ctx, "req-1")
		l := WithContext(ctx)
		assert.Equal(t, "7b0c5bd2-5c6e-4a8b-8f9d-1f1f2b3c4d5e", l.Data["user"])
		assert.Equal(t, "req-1", l.Data["request_id"])
	})
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.JSONFormatter{})

	l := &Logger{Entry: logrus.NewEntry(base)}
	l.WithFields(map[string]interface{}{"entity": "team"}).WithField("op", "create").Info("created")

	out := buf.String()
	assert.Contains(t, out, `"entity":"team"`)
	assert.Contains(t, out, `"op":"create"`)
	assert.Contains(t, out, `"msg":"created"`)
}
