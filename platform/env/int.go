package env

import (
	"go.uber.org/zap"
	"strconv"
)

// IntDefault return the result of searching an env var as int, falling back to the default when it is empty or invalid
func IntDefault(log *zap.SugaredLogger, env, def string) int {
	orDefault := OrDefault(log, env, def)
	i, err := strconv.Atoi(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as int: ", err)
		i, _ = strconv.Atoi(def)
	}
	return i
}
