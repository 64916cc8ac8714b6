package utils

import "time"

// now is swapped in tests to pin export timestamps.
var now = time.Now

// GetCurrentTimestamp returns the current Unix timestamp in seconds
func GetCurrentTimestamp() int64 {
	return now().Unix()
}

func currentRFC3339() string {
	return now().Format(time.RFC3339)
}
