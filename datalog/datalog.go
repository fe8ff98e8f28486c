// Package datalog appends sensor readings to a local tab-separated log file.
// The file is opened in append mode so that a process restart never
// truncates the recorded history, and every row is flushed to disk as it is
// written.
package datalog

import (
	"fmt"
	"os"
	"path/filepath"

	"dht-sheets-logger/sensor"
)

const header = "date\ttime\ttemp_c\ttemp_f\thumidity\tpin\r\n"

// DataLog is an append-only log of sensor readings, shared by all sensors in
// a process.
type DataLog struct {
	file *os.File
}

// Open opens (creating if necessary) the log file at path and writes the
// header row if the file is new or empty.
func Open(path string) (*DataLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	if info.Size() == 0 {
		if _, err := f.WriteString(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("unable to write log file header (%w)", err)
		}
	}

	return &DataLog{
		file: f,
	}, nil
}

// Append writes one reading as a CRLF-terminated row and flushes it.
func (l *DataLog) Append(r sensor.Reading) error {
	row := fmt.Sprintf("%s\t%s\t%.1f\t%.1f\t%.1f\t%d\r\n",
		r.Timestamp.Format("2006-01-02"),
		r.Timestamp.Format("15:04:05"),
		r.Temperature,
		r.Fahrenheit(),
		r.Humidity,
		r.Pin)

	if _, err := l.file.WriteString(row); err != nil {
		return err
	}

	return l.file.Sync()
}

// Close closes the underlying log file.
func (l *DataLog) Close() error {
	return l.file.Close()
}
