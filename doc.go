/*
Package logger polls DHT22 temperature/humidity sensors attached to the GPIO
pins of a Raspberry Pi class board and records each reading to a local
tab-separated log file and to a per-sensor Google Sheets spreadsheet.

dht-sheets-logger is a daemon rather than an interactive tool - it is intended
to be started at boot and left running. It supports the following commands:

  - run, to poll the configured sensors on a fixed cadence and record every
    reading locally, to Google Sheets and (optionally) to an MQTT broker
  - version, to display the version information

Each sensor is described by one definition file in the configuration
directory, holding the spreadsheet ID, the GPIO pin and the sensor name.
Authentication with the Google Sheets API uses a service account credential
stored locally.
*/
package logger
