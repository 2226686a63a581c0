package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/flagx"
)

// Duration unmarshals from "300ms"-style strings or integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", s, err)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or integer: %w", err)
	}
	*d = Duration(n)
	return nil
}

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero".
type JsonConfig struct {
	Storage        *string   `json:"storage"`
	DataPath       *string   `json:"data_path"`
	SaveDebounce   *Duration `json:"save_debounce"`
	Model          *string   `json:"model"`
	SmartModel     *string   `json:"smart_model"`
	SuggestTimeout *Duration `json:"suggest_timeout"`
	LogLevel       *string   `json:"log_level"`
	LogFile        *string   `json:"log_file"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Fields missing from the file keep their current values. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.Storage, jc.Storage)
	setString(&cfg.DataPath, jc.DataPath)
	setString(&cfg.Model, jc.Model)
	setString(&cfg.SmartModel, jc.SmartModel)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	if jc.SaveDebounce != nil {
		cfg.SaveDebounce = time.Duration(*jc.SaveDebounce)
	}
	if jc.SuggestTimeout != nil {
		cfg.SuggestTimeout = time.Duration(*jc.SuggestTimeout)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
