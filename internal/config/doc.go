// Package config loads runtime configuration for FounderStack.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//  4. The suggestion API key, read from GEMINI_API_KEY (or API_KEY) in the
//     environment or a .env file in the working directory.
//
// Supported flags
//
//	-s string   storage backend: sqlite, file or memory
//	-d string   data path: SQLite file, or directory for file storage
//	-w int      save debounce (milliseconds)
//	-m string   suggestion model
//	-t int      suggestion timeout (seconds)
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations accept strings like "300ms" or integer nanoseconds:
//
//	{
//	  "storage": "sqlite",
//	  "data_path": "founderstack.db",
//	  "save_debounce": "300ms",
//	  "model": "gemini-2.0-flash",
//	  "smart_model": "gemini-2.5-pro",
//	  "suggest_timeout": "30s",
//	  "log_level": "warn",
//	  "log_file": "founderstack.log"
//	}
package config
