package domain

import (
	"strings"
	"time"

	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

const (
	newAdsWindow     = 7 * 24 * time.Hour
	updatedAdsWindow = 3 * 24 * time.Hour
)

// AdsOverview resume os cards do painel.
type AdsOverview struct {
	Total           int     `json:"total"`
	Active          int     `json:"active"`
	NewLast7Days    int     `json:"newLast7Days"`
	UpdatedRecently int     `json:"updatedRecently"`
	ActiveShare     float64 `json:"activeShare"`
}

func SummarizeAds(ads []Ad, now time.Time) *AdsOverview {
	overview := &AdsOverview{Total: len(ads)}

	for _, ad := range ads {
		if ad.IsActive() {
			overview.Active++
		}

		if startDate, ok := ParseAdTimestamp(ad.StartDate); ok && now.Sub(startDate) <= newAdsWindow {
			overview.NewLast7Days++
		}

		if lastSeen, ok := ParseAdTimestamp(ad.LastSeen); ok && now.Sub(lastSeen) <= updatedAdsWindow {
			overview.UpdatedRecently++
		}
	}

	if overview.Total > 0 {
		overview.ActiveShare = utils.RoundWithTwoDecimalPlace(float64(overview.Active) / float64(overview.Total) * 100)
	}

	return overview
}

var adTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000Z",
	time.DateTime,
	time.DateOnly,
}

// ParseAdTimestamp aceita os formatos de data usados pelas origens de anúncios.
func ParseAdTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range adTimestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
