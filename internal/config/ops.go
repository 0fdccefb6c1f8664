package config

const (
	defaultAcceptorAddr = "127.0.0.1:8080"
	defaultDigestCron   = "0 9 * * *"
	defaultOpsAddr      = ":9090"
	defaultSampleRate   = 1.0
)

type GRPCConfig struct {
	Addr string `yaml:"acceptor-addr"`
}

func (s *GRPCConfig) AcceptorAddr() string {
	return s.Addr
}

type SchedulerConfig struct {
	Spec string `yaml:"digest-cron"`
}

func (s *SchedulerConfig) DigestSpec() string {
	return s.Spec
}

type OpsConfig struct {
	Addr string `yaml:"listen-addr"`
}

func (s *OpsConfig) ListenAddr() string {
	return s.Addr
}

type JaegerConfig struct {
	Agent string  `yaml:"agent-host-port"`
	Rate  float64 `yaml:"sample-rate"`
}

func (s *JaegerConfig) AgentHostPort() string {
	return s.Agent
}

func (s *JaegerConfig) SampleRate() float64 {
	return s.Rate
}
