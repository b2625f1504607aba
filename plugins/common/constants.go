package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogDeviceTypeToken describes device type log entry.
	LogDeviceTypeToken = "device_type"
	// LogDeviceNameToken describes device name log entry.
	LogDeviceNameToken = "device_name"
	// LogSerialToken describes device serial log entry.
	LogSerialToken = "serial"
	// LogDeviceCommandToken describes device command log entry.
	LogDeviceCommandToken = "device_cmd"
	// LogEndpointToken describes vendor endpoint log entry.
	LogEndpointToken = "endpoint"
	// LogProductNameToken describes vendor product name log entry.
	LogProductNameToken = "product_name"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
)

const (
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
	// LogSecretToken describes secret log entry.
	LogSecretToken = "secret"
)
