// Package mqtt optionally publishes sensor readings to an MQTT broker as
// retained per-sensor state messages.
package mqtt

import (
	"encoding/json"
	"fmt"
	"os"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"

	"dht-sheets-logger/sensor"
)

const TopicPrefix = "dht"

type Config struct {
	Broker   string `json:"broker"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoadConfig reads the broker configuration from a JSON file.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	config := &Config{}
	if err := json.NewDecoder(f).Decode(config); err != nil {
		return nil, err
	}

	if config.Broker == "" {
		return nil, fmt.Errorf("%s: missing 'broker' URL", filename)
	}

	return config, nil
}

func (c *Config) ClientOptions() *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(c.Broker).
		SetUsername(c.Username).
		SetPassword(c.Password).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(client mqtt.Client, err error) {
			logrus.WithError(err).Warn("MQTT connection lost")
		}).
		SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
			logrus.Info("MQTT reconnecting")
		})
}

// Publisher publishes readings to a broker connection held open for the
// process lifetime (paho reconnects on its own).
type Publisher struct {
	client mqtt.Client
}

func Connect(cfg *Config) (*Publisher, error) {
	client := mqtt.NewClient(cfg.ClientOptions())
	if t := client.Connect(); t.Wait() && t.Error() != nil {
		return nil, fmt.Errorf("MQTT connection error (%w)", t.Error())
	}

	return &Publisher{
		client: client,
	}, nil
}

type state struct {
	Timestamp    string  `json:"timestamp"`
	TemperatureC float64 `json:"temperature_c"`
	TemperatureF float64 `json:"temperature_f"`
	Humidity     float64 `json:"humidity"`
	Pin          int     `json:"pin"`
}

// Publish sends the retained state message for a sensor.
func (p *Publisher) Publish(name string, r sensor.Reading) error {
	payload, err := json.Marshal(state{
		Timestamp:    r.Timestamp.Format("2006-01-02 15:04:05"),
		TemperatureC: sensor.Round1(r.Temperature),
		TemperatureF: sensor.Round1(r.Fahrenheit()),
		Humidity:     sensor.Round1(r.Humidity),
		Pin:          r.Pin,
	})
	if err != nil {
		return err
	}

	if t := p.client.Publish(StateTopic(name), 0, true, payload); t.Wait() && t.Error() != nil {
		return fmt.Errorf("MQTT publishing failed (%w)", t.Error())
	}

	return nil
}

// StateTopic returns the state topic for a sensor name.
func StateTopic(name string) string {
	return fmt.Sprintf("%v/%v/state", TopicPrefix, name)
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
