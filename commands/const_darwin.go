package commands

const (
	_etc = "/usr/local/etc/com.github.dht-sheets-logger"
	_var = "/usr/local/var/com.github.dht-sheets-logger"

	DEFAULT_CONFIG_DIR  = _etc + "/url"
	DEFAULT_CREDENTIALS = _etc + "/service_account.json"
	DEFAULT_OUTPUT      = _var + "/sensor_output.csv"
)
