package metadomain

import "strings"

const (
	// Campos do criativo pedidos junto com cada anúncio
	CreativeFields = "creative{id,name,title,body,image_url,video_id,thumbnail_url,object_url,link_url,call_to_action_type}"
	// Campos agregados dentro da janela de insights
	InsightMetricFields = "{impressions,clicks,reach,spend,ctr,actions,cost_per_action_type,account_currency}"
	AdBaseFields        = "id,name,status,effective_status,created_time,updated_time"

	DefaultDatePreset = "last_30d"
)

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

// AdsPage é uma página de /{ad_account_id}/ads. Data fica sem tipagem para o
// normalizador aplicar as regras de extração.
type AdsPage struct {
	Data   []any  `json:"data"`
	Paging Paging `json:"paging"`
}

type FilterClause struct {
	Field    string   `json:"field"`
	Operator string   `json:"operator"`
	Value    []string `json:"value"`
}

func EffectiveStatusFilter(values ...string) []FilterClause {
	return []FilterClause{
		{
			Field:    "effective_status",
			Operator: "IN",
			Value:    values,
		},
	}
}

// NormalizeAccountID garante o prefixo act_ exigido pela Graph API.
func NormalizeAccountID(accountID string) string {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" || strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}
