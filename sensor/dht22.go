package sensor

import (
	"fmt"
	"sync"

	dht "github.com/MichaelS11/go-dht"
)

// Number of read attempts handed to the driver before it gives up on a
// sample. The DHT22 misreads routinely, so a generous retry count is normal.
const readRetries = 11

var hostInit sync.Once
var hostInitErr error

// DHT22 reads a DHT22 device on a single GPIO data line.
type DHT22 struct {
	pin    int
	device *dht.DHT
}

// NewDHT22 initialises the GPIO host (once per process) and binds the sensor
// on the given BCM pin number.
func NewDHT22(pin int) (*DHT22, error) {
	hostInit.Do(func() {
		hostInitErr = dht.HostInit()
	})

	if hostInitErr != nil {
		return nil, fmt.Errorf("GPIO host initialisation failed (%w)", hostInitErr)
	}

	device, err := dht.NewDHT(fmt.Sprintf("GPIO%d", pin), dht.Celsius, "dht22")
	if err != nil {
		return nil, fmt.Errorf("unable to initialise DHT22 on GPIO%d (%w)", pin, err)
	}

	return &DHT22{
		pin:    pin,
		device: device,
	}, nil
}

// Read blocks until the driver returns a humidity/temperature pair or its
// retries are exhausted.
func (d *DHT22) Read() (float64, float64, error) {
	humidity, temperature, err := d.device.ReadRetry(readRetries)
	if err != nil {
		return 0, 0, fmt.Errorf("no reading from DHT22 on GPIO%d (%w)", d.pin, err)
	}

	return humidity, temperature, nil
}
