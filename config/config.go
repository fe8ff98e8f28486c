// Package config loads the per-sensor definition files. Each sensor has one
// plain text file of key/value pairs, one pair per line, separated by
// whitespace. Required keys are 'id' (the Google Sheets spreadsheet ID),
// 'pin' (the BCM GPIO pin number) and 'name' (the sensor display name), e.g.
//
//	id    1DGjbXkpqrkglqMmGkD95zWBSfHBzGcjPj48pBIQ8Isa
//	pin   4
//	name  example_sensor
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sensor is one sensor definition, loaded once at startup and immutable for
// the lifetime of the process.
type Sensor struct {
	Name          string
	SpreadsheetID string
	Pin           int
}

// Load scans dir for sensor definition files and returns the parsed
// definitions for every file whose base name (extension stripped) contains
// any of the include strings as a substring. The substring match is
// deliberately loose so that date-suffixed or otherwise variant file names
// still select the sensor.
//
// The returned slice is ordered by file name so that the poll loop visits
// sensors in a stable order.
func Load(dir string, include []string) ([]Sensor, error) {
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("unable to read sensor definitions directory %s (%w)", dir, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}

	sensors := []Sensor{}
	for _, file := range files {
		if info, err := os.Stat(file); err != nil || info.IsDir() {
			continue
		}

		base := filepath.Base(file)
		base = strings.TrimSuffix(base, filepath.Ext(base))

		if !matches(base, include) {
			logrus.Debugf("%s: no match", file)
			continue
		}

		logrus.Debugf("%s: matched", file)

		sensor, err := parse(file)
		if err != nil {
			return nil, err
		}

		sensors = append(sensors, sensor)
	}

	return sensors, nil
}

func matches(base string, include []string) bool {
	for _, s := range include {
		if strings.Contains(base, s) {
			return true
		}
	}

	return false
}

func parse(file string) (Sensor, error) {
	f, err := os.Open(file)
	if err != nil {
		return Sensor{}, err
	}

	defer f.Close()

	kv := map[string]string{}
	lineno := 0
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		lineno++

		tokens := strings.Fields(scanner.Text())
		if len(tokens) != 2 {
			return Sensor{}, fmt.Errorf("%s: malformed definition at line %d - expected 'key value'", file, lineno)
		}

		kv[tokens[0]] = tokens[1]
	}

	if err := scanner.Err(); err != nil {
		return Sensor{}, err
	}

	for _, key := range []string{"id", "pin", "name"} {
		if _, ok := kv[key]; !ok {
			return Sensor{}, fmt.Errorf("%s: missing required key '%s'", file, key)
		}
	}

	pin, err := strconv.Atoi(kv["pin"])
	if err != nil {
		return Sensor{}, fmt.Errorf("%s: invalid GPIO pin '%s'", file, kv["pin"])
	}

	return Sensor{
		Name:          kv["name"],
		SpreadsheetID: kv["id"],
		Pin:           pin,
	}, nil
}
