package commands

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dht-sheets-logger/config"
	"dht-sheets-logger/datalog"
	"dht-sheets-logger/mqtt"
	"dht-sheets-logger/poller"
	"dht-sheets-logger/sensor"
	"dht-sheets-logger/sheets"
)

var RunCmd = Run{
	command: command{
		credentials: DEFAULT_CREDENTIALS,
		debug:       false,
	},

	configDir: DEFAULT_CONFIG_DIR,
	sensors:   "home_livingroom,home_outside",
	output:    DEFAULT_OUTPUT,
	interval:  poller.DefaultInterval,
}

type Run struct {
	command
	configDir string
	sensors   string
	output    string
	broker    string
	interval  time.Duration
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Polls the configured DHT22 sensors and records each reading locally and to Google Sheets"
}

func (cmd *Run) Usage() string {
	return "--config-dir <dir> --sensors <names> --output <file> --credentials <file>"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run [options]\n", APP)
	fmt.Println()
	fmt.Println("  Polls every configured DHT22 sensor once per interval and appends each reading to the")
	fmt.Println("  local data log and to the first worksheet of the sensor's Google Sheets spreadsheet.")
	fmt.Println("  Runs until interrupted.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    dht-sheets-logger run --sensors "home_livingroom,home_outside"`)
	fmt.Println(`    dht-sheets-logger --debug run --config-dir "./url" \`)
	fmt.Println(`                                  --credentials "service_account.json" \`)
	fmt.Println(`                                  --output "./output/sensor_output.csv" \`)
	fmt.Println(`                                  --mqtt "mqtt.json"`)
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("run")

	flagset.StringVar(&cmd.configDir, "config-dir", cmd.configDir, "Directory with the per-sensor definition files")
	flagset.StringVar(&cmd.sensors, "sensors", cmd.sensors, "Comma-separated sensor names (substring matched against definition file names)")
	flagset.StringVar(&cmd.output, "output", cmd.output, "Data log file")
	flagset.StringVar(&cmd.broker, "mqtt", cmd.broker, "MQTT broker configuration file (publishing is disabled if not set)")
	flagset.DurationVar(&cmd.interval, "interval", cmd.interval, "Polling interval")

	return flagset
}

func (cmd *Run) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if strings.TrimSpace(cmd.configDir) == "" {
		return fmt.Errorf("--config-dir is a required option")
	}

	if strings.TrimSpace(cmd.output) == "" {
		return fmt.Errorf("--output is a required option")
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if cmd.interval < 2*time.Second {
		return fmt.Errorf("invalid polling interval '%v'", cmd.interval)
	}

	include := []string{}
	for _, s := range strings.Split(cmd.sensors, ",") {
		if s = strings.TrimSpace(s); s != "" {
			include = append(include, s)
		}
	}

	if len(include) == 0 {
		return fmt.Errorf("--sensors is a required option")
	}

	// ... load sensor definitions
	definitions, err := config.Load(cmd.configDir, include)
	if err != nil {
		return err
	}

	if len(definitions) == 0 {
		return fmt.Errorf("no sensor definitions in %s matched %v", cmd.configDir, include)
	}

	debugf("loaded %d sensor definition(s) from %s", len(definitions), cmd.configDir)

	sensors := []poller.Sensor{}
	for _, d := range definitions {
		driver, err := sensor.NewDHT22(d.Pin)
		if err != nil {
			return err
		}

		infof("polling sensor %s on GPIO%d (spreadsheet %s)", d.Name, d.Pin, d.SpreadsheetID)

		sensors = append(sensors, poller.Sensor{
			Sensor: d,
			Driver: driver,
		})
	}

	// ... open the data log
	l, err := datalog.Open(cmd.output)
	if err != nil {
		return fmt.Errorf("unable to open data log %s (%w)", cmd.output, err)
	}

	defer l.Close()

	p := poller.Poller{
		Sensors:  sensors,
		DataLog:  l,
		Uploader: sheets.NewUploader(cmd.credentials),
		Interval: cmd.interval,
	}

	// ... optional MQTT publishing
	if cmd.broker != "" {
		cfg, err := mqtt.LoadConfig(cmd.broker)
		if err != nil {
			return err
		}

		if publisher, err := mqtt.Connect(cfg); err != nil {
			warnf("MQTT publishing disabled (%v)", err)
		} else {
			defer publisher.Close()
			p.Publisher = publisher
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	infof("%s %s polling %d sensor(s) every %v", APP, VERSION, len(sensors), cmd.interval)

	if err := p.Run(ctx); err != nil {
		return err
	}

	infof("interrupted - exiting")

	return nil
}
