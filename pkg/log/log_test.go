package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buffer := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	logrus.SetOutput(buffer)
	t.Cleanup(func() { logrus.SetOutput(original) })

	return buffer
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "Nível válido", level: "debug", expected: logrus.DebugLevel},
		{name: "Nível com espaços", level: " warn ", expected: logrus.WarnLevel},
		{name: "Nível inválido cai para info", level: "verboso", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetupLogger(tt.level)
			assert.Equal(t, tt.expected, logrus.GetLevel())
		})
	}
}

func TestWithFieldsEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	SetupTestLogger()
	buffer := captureOutput(t)

	L.WithFields(Fields{
		"source":      "meta",
		"ads_fetched": 3,
		"page_token":  "segredo",
	}).Info("busca concluída")

	out := buffer.String()
	assert.Contains(t, out, "source=meta")
	assert.Contains(t, out, "ads_fetched=3")
	assert.NotContains(t, out, "page_token")
}

func TestWithFieldsEmProducao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	SetupTestLogger()
	buffer := captureOutput(t)

	L.WithField("page_token", "abc").Info("busca concluída")

	assert.Contains(t, buffer.String(), "page_token=abc")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
