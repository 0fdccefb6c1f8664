package tracing

import (
	"io"

	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/bills-bot/internal/logger"
)

type config interface {
	AgentHostPort() string
	SampleRate() float64
}

// Init installs the global opentracing tracer. Without an agent address the
// tracer is a no-op.
func Init(service string, config config) (io.Closer, error) {
	sampler := &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}
	if rate := config.SampleRate(); rate < 1 {
		sampler = &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeProbabilistic,
			Param: rate,
		}
	}

	cfg := jaegercfg.Configuration{
		ServiceName: service,
		Disabled:    config.AgentHostPort() == "",
		Sampler:     sampler,
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: config.AgentHostPort(),
		},
	}

	closer, err := cfg.InitGlobalTracer(service)
	if err != nil {
		return nil, errors.Wrap(err, "init tracer")
	}
	logger.Info("tracer initialized",
		zap.String("service", service),
		zap.Bool("disabled", cfg.Disabled),
		zap.String("sampler", sampler.Type))
	return closer, nil
}
