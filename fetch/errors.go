package fetch

import (
	"errors"
)

var (
	ErrUptime = errors.New("uptime query failed")
)
