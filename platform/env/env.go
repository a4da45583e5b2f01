package env

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// Must return the value of an env var, stopping the process when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatalw("config", "ERROR", "missing required env var", "env", env)
	}
	return v
}

// DurationDefault return the result of searching an env var as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	d, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
		d, _ = time.ParseDuration(def)
	}
	return d
}

// BoolDefault return the result of searching an env var as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	b, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
		b, _ = strconv.ParseBool(def)
	}
	return b
}
