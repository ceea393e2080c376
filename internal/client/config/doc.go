// Package config loads runtime configuration for the usuarios CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config.
//  3. Optional .env file (-e/-env, else ./.env) and USUARIOS_* environment
//     variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the REST API
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-r string   reference encoding (object | id)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_base_url": "https://localhost:7299/api",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "reference_encoding": "object",
//	  "insecure_tls": true,
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// # Environment
//
//	USUARIOS_SERVER_BASE_URL, USUARIOS_REQUEST_TIMEOUT (e.g. "5s"),
//	USUARIOS_ONLINE_CHECK_INTERVAL, USUARIOS_REFERENCE_ENCODING,
//	USUARIOS_INSECURE_TLS, USUARIOS_LOG_LEVEL, USUARIOS_LOG_FORMAT
package config
