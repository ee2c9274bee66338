package observability

import (
	"context"
	"testing"

	"service_documents/internal/config"
	"service_documents/internal/infrastructure/logger"

	"github.com/stretchr/testify/assert"
)

func TestParseHeaders(t *testing.T) {
	assert.Nil(t, ParseHeaders(""))
	assert.Nil(t, ParseHeaders("broken, =x,y="))
	assert.Equal(t, map[string]string{"api-key": "abc", "x-team": "docs=1"}, ParseHeaders(" api-key=abc ,x-team=docs=1"))
}

func TestClampRatio(t *testing.T) {
	assert.Equal(t, 0.0, clampRatio(-1))
	assert.Equal(t, 1.0, clampRatio(3))
	assert.Equal(t, 0.25, clampRatio(0.25))
}

func TestInitOTel_Disabled(t *testing.T) {
	shutdown := InitOTel(context.Background(), config.OTelConfig{}, logger.NewNop())
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitOTel_StdoutExporter(t *testing.T) {
	cfg := config.OTelConfig{Enabled: true, ServiceName: "service-documents", SampleRatio: 1}
	shutdown := InitOTel(context.Background(), cfg, logger.NewNop())
	assert.NoError(t, shutdown(context.Background()))
}
