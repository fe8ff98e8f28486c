package mqtt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStateTopic(t *testing.T) {
	expected := "dht/home_livingroom/state"

	if topic := StateTopic("home_livingroom"); topic != expected {
		t.Errorf("Incorrect state topic - expected:%v, got:%v", expected, topic)
	}
}

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mqtt.json")

	if err := os.WriteFile(file, []byte(`{"broker":"tcp://192.168.1.100:1883","username":"dht","password":"qwerty"}`), 0644); err != nil {
		t.Fatalf("Error creating MQTT configuration file (%v)", err)
	}

	config, err := LoadConfig(file)
	if err != nil {
		t.Fatalf("Unexpected error returned from LoadConfig (%v)", err)
	}

	if config.Broker != "tcp://192.168.1.100:1883" || config.Username != "dht" || config.Password != "qwerty" {
		t.Errorf("Incorrect configuration %+v", config)
	}
}

func TestLoadConfigWithoutBroker(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mqtt.json")

	if err := os.WriteFile(file, []byte(`{"username":"dht"}`), 0644); err != nil {
		t.Fatalf("Error creating MQTT configuration file (%v)", err)
	}

	if _, err := LoadConfig(file); err == nil {
		t.Errorf("Expected error for configuration without a broker URL, got:%v", err)
	}
}
