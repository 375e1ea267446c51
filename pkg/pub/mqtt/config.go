package mqtt

import "flag"

// Config defines the configurations for the publisher.
type Config struct {
	BrokerURL string
}

var defaultConfig = Config{
	BrokerURL: "mqtt://127.0.0.1:1883/joyd",
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.BrokerURL, "broker", defaultConfig.BrokerURL, "MQTT broker URL.")
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewPublisher creates a publisher using the config.
func (c *Config) NewPublisher(clientID string) (*Publisher, error) {
	return NewPublisher(c.BrokerURL, clientID)
}
