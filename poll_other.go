//go:build !unix

package mpctui

import (
	"errors"
	"time"
)

func pollInput(int, time.Duration) (bool, error) {
	return false, errors.New("key polling is not supported on this platform")
}
