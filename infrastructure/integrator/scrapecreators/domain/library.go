package scdomain

import (
	jsoniter "github.com/json-iterator/go"
)

const CompanyAdsPath = "/v1/facebook/adLibrary/company/ads"

// LibraryQuery são os parâmetros da consulta à biblioteca de anúncios de uma página.
type LibraryQuery struct {
	PageID       string
	Country      string
	ActiveStatus string
	Cursor       string
	APIKey       string
}

// Valid indica se os três parâmetros obrigatórios estão presentes.
func (q LibraryQuery) Valid() bool {
	return q.PageID != "" && q.Country != "" && q.ActiveStatus != ""
}

type LibraryPage struct {
	Results []any  `json:"results"`
	Cursor  string `json:"cursor"`
}

// CompanyAdsResponse guarda o corpo da origem sem interpretá-lo.
type CompanyAdsResponse struct {
	Body jsoniter.RawMessage
}
