package utils

import "time"

// DaysUntil retorna os dias inteiros até target, truncando frações.
func DaysUntil(target, now time.Time) int {
	return int(target.Sub(now) / (24 * time.Hour))
}
