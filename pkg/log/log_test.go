package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	previous := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = previous })

	return buf
}

func TestForContext_CamposDeCorrelacaoEOrganizacao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureLogger(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithOrgID(ctx, 42)

	ForContext(ctx).Info("lookup concluído")

	out := buf.String()
	assert.Contains(t, out, "correlation_id="+correlationID)
	assert.Contains(t, out, "org_id=42")
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestWithFields_FiltraCamposEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	buf := captureLogger(t)

	L.WithFields(Fields{"tier": "database", "irrelevante": "x"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "tier=database")
	assert.NotContains(t, out, "irrelevante")
}
