// Package format holds small formatting helpers for status output.
package format

import "fmt"

// Uptime formats an uptime in seconds in a readable format.
func Uptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60
	if days > 0 {
		return fmt.Sprintf("%dd%dh", days, hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// Bytes formats a byte count in a readable format.
func Bytes(bytes uint64) string {
	gb := float64(bytes) / 1024 / 1024 / 1024
	if gb >= 1000 {
		return fmt.Sprintf("%.0fT", gb/1024)
	}
	if gb >= 1 {
		return fmt.Sprintf("%.1fG", gb)
	}
	return fmt.Sprintf("%.0fM", gb*1024)
}
