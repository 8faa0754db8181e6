package domain

import (
	"fmt"
	"strings"
	"time"
)

type StatusFilter string

const (
	StatusFilterAll      StatusFilter = "all"
	StatusFilterActive   StatusFilter = "active"
	StatusFilterInactive StatusFilter = "inactive"
)

// AdFilters representa os filtros aceitos na busca de anúncios.
// DateFrom/DateTo só valem como janela quando ambos estão presentes.
type AdFilters struct {
	Status   StatusFilter
	DateFrom string
	DateTo   string
	Search   string
}

func ParseStatusFilter(value string) (StatusFilter, error) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(value))) {
	case "", StatusFilterAll:
		return StatusFilterAll, nil
	case StatusFilterActive:
		return StatusFilterActive, nil
	case StatusFilterInactive:
		return StatusFilterInactive, nil
	}

	return "", &FetchError{
		Kind:    KindInvalidRequest,
		Code:    CodeInvalidStatus,
		Message: "status must be one of: all, active, inactive.",
		Details: value,
	}
}

// NewAdFilters valida os parâmetros de entrada antes de qualquer chamada à origem.
func NewAdFilters(status, dateFrom, dateTo, search string) (*AdFilters, error) {
	statusFilter, err := ParseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	if err := validateDate("dateFrom", dateFrom); err != nil {
		return nil, err
	}

	if err := validateDate("dateTo", dateTo); err != nil {
		return nil, err
	}

	return &AdFilters{
		Status:   statusFilter,
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Search:   strings.TrimSpace(search),
	}, nil
}

func (f *AdFilters) HasDateWindow() bool {
	return f != nil && f.DateFrom != "" && f.DateTo != ""
}

func (f *AdFilters) StatusOrAll() StatusFilter {
	if f == nil || f.Status == "" {
		return StatusFilterAll
	}
	return f.Status
}

// Matches confere o status e aplica a busca textual sobre título e corpo,
// sem diferenciar maiúsculas.
func (f *AdFilters) Matches(ad Ad) bool {
	switch f.StatusOrAll() {
	case StatusFilterActive:
		if !ad.IsActive() {
			return false
		}
	case StatusFilterInactive:
		if ad.IsActive() {
			return false
		}
	}

	if f == nil || f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(ad.Headline), term) ||
		strings.Contains(strings.ToLower(ad.Body), term)
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}

	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return &FetchError{
			Kind:    KindInvalidRequest,
			Code:    CodeInvalidDateFormat,
			Message: fmt.Sprintf("%s must be in YYYY-MM-DD format.", field),
			Details: value,
			Err:     err,
		}
	}

	return nil
}
