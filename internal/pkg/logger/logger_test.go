package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := FromZap(zap.New(core))

	log.Info("Venda criada.", map[string]interface{}{"sale_id": "s1", "quantity": 3})
	log.Warn("Estoque baixo.", nil)
	log.Error("Falha no DB.", errors.New("timeout"))

	entries := logs.All()
	assert.Len(t, entries, 3)

	assert.Equal(t, "Venda criada.", entries[0].Message)
	assert.Equal(t, "s1", entries[0].ContextMap()["sale_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "timeout", entries[2].ContextMap()["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("qualquer"))
}
