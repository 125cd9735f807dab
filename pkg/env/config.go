package env

import (
	"flag"
	"os"
	"strconv"
)

// Config provides the common link options shared by roverd and the
// console. Exactly one link is used at a time: a rover identified by
// ID over MQTT, or a direct serial connection.
type Config struct {
	// ID is the rover identity, used as the MQTT topic prefix segment.
	ID string

	// MQTTBrokerURL specifies the MQTT broker to use,
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	// SerialDevice is the serial port of a directly attached rover.
	// When set it takes precedence over MQTT.
	SerialDevice string
	SerialBaud   int
}

var defaultConfig = Config{
	SerialBaud: 9600,
}

func init() {
	defaultConfig.MQTTBrokerURL = os.Getenv("ROVER_MQTT_URL")
	defaultConfig.SerialDevice = os.Getenv("ROVER_SERIAL")
	if val := os.Getenv("ROVER_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.SerialBaud = baud
		}
	}
	if val := os.Getenv("ROVER_ID"); val != "" {
		defaultConfig.ID = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Rover ID (defaults to the machine ID)")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.SerialDevice, "serial", defaultConfig.SerialDevice, "Serial device of the rover link")
	flag.IntVar(&defaultConfig.SerialBaud, "baud", defaultConfig.SerialBaud, "Serial baud rate")
}

// NewConfig creates a Config from defaults, flags applied.
func NewConfig() *Config {
	conf := defaultConfig
	if conf.ID == "" {
		conf.ID = MachineID()
	}
	return &conf
}

// Topic returns the rover's topic prefix segment.
func (c *Config) Topic() string {
	return "rover/" + c.ID
}
