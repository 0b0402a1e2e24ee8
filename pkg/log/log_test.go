package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.SetLevel(logrus.InfoLevel)
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
	})

	return buf
}

func TestWithFields_DesenvolvimentoMantemOsCamposDoPipeline(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"run_id":     "abc123",
		"mode":       "weekly",
		"page_bytes": 4096,
	}).Info("execução iniciada")

	out := buf.String()
	assert.Contains(t, out, "run_id")
	assert.Contains(t, out, "mode")
	assert.NotContains(t, out, "page_bytes")
}

func TestWithField_DesenvolvimentoDescartaCamposForaDaLista(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithField("page_bytes", 4096).Info("página recebida")
	L.WithField("period", "2025-W30").Info("período planejado")

	out := buf.String()
	assert.NotContains(t, out, "page_bytes")
	assert.Contains(t, out, "period")
}

func TestWithFields_ProducaoMantemTodosOsCampos(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"run_id":     "abc123",
		"page_bytes": 4096,
	}).Info("execução iniciada")

	out := buf.String()
	assert.Contains(t, out, "run_id")
	assert.Contains(t, out, "page_bytes")
}
