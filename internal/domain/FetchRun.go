package domain

import "time"

// FetchRun registra uma execução de busca. Os anúncios em si nunca são gravados.
type FetchRun struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Status     string    `json:"status_filter"`
	DateFrom   string    `json:"date_from,omitempty"`
	DateTo     string    `json:"date_to,omitempty"`
	Search     string    `json:"search,omitempty"`
	AdsCount   int       `json:"ads_count"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	DurationMs int64     `json:"duration_ms"`
	StartedAt  time.Time `json:"started_at"`
}

func (r *FetchRun) Succeeded() bool {
	return r.ErrorKind == ""
}
