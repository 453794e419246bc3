// Package config loads runtime configuration for the IqraNow CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), prefix IQRANOW_.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The assembled configuration is validated before use.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-i int      online status check interval (seconds)
//	-d string   path to the local state database
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8000",
//	  "request_timeout": "15s",
//	  "online_check_interval": "30s",
//	  "database_path": "iqranow.db",
//	  "log_level": "info"
//	}
//
// Environment variables
//
//	IQRANOW_SERVER_URL, IQRANOW_REQUEST_TIMEOUT, IQRANOW_ONLINE_CHECK_INTERVAL,
//	IQRANOW_DB_PATH, IQRANOW_LOG_LEVEL
package config
