package config

const (
	defaultConsumerGroup = "bills-reporter"
	defaultDigestTopic   = "digest-requests"
)

type KafkaConfig struct {
	BrokerList []string `yaml:"brokers"`
	Consumer   string   `yaml:"consumer-group"`
	Topic      string   `yaml:"digest-topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) ConsumerGroup() string {
	return s.Consumer
}

func (s *KafkaConfig) DigestTopic() string {
	return s.Topic
}
