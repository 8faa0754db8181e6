package normalizing

import (
	"math"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/vfg2006/ads-monitor-api/internal/domain"
	"github.com/vfg2006/ads-monitor-api/pkg/log"
	"github.com/vfg2006/ads-monitor-api/pkg/utils"
)

// LeadActionTypes são os tipos de ação contados como lead.
var LeadActionTypes = []string{
	"lead",
	"onsite_conversion.lead_grouped",
	"leadgen_grouped",
	"offsite_conversion.fb_pixel_lead",
}

type Action struct {
	ActionType string `mapstructure:"action_type"`
	Value      string `mapstructure:"value"`
}

func IsLeadAction(actionType string) bool {
	for _, leadType := range LeadActionTypes {
		if actionType == leadType {
			return true
		}
	}
	return false
}

// ParseActions converte a lista bruta de ações; valores numéricos viram texto.
func ParseActions(value any) []Action {
	if value == nil {
		return nil
	}

	var actions []Action
	if err := mapstructure.WeakDecode(value, &actions); err != nil {
		log.L.WithError(err).Debug("normalizing: lista de ações ignorada")
		return nil
	}
	return actions
}

// FindLeadAction devolve a primeira ação, na ordem da origem, cujo tipo é de lead.
// Uma única entrada é usada; tipos equivalentes nunca são somados.
func FindLeadAction(actions []Action) (Action, bool) {
	for _, action := range actions {
		if IsLeadAction(action.ActionType) {
			return action, true
		}
	}
	return Action{}, false
}

// ParseCount converte contadores em inteiros não negativos.
func ParseCount(value any) int {
	if value == nil {
		return 0
	}

	number, ok := utils.ParseNumber(value)
	if !ok || number < 0 || number >= math.MaxInt {
		log.L.WithField("value", value).Debug("normalizing: contador inválido tratado como zero")
		return 0
	}
	return int(number)
}

// ParseAmount converte valores monetários, sem arredondar.
func ParseAmount(value any) float64 {
	if value == nil {
		return 0
	}

	number, ok := utils.ParseNumber(value)
	if !ok || number < 0 {
		log.L.WithField("value", value).Debug("normalizing: valor monetário inválido tratado como zero")
		return 0
	}
	return number
}

func ComputeCTR(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(clicks) / float64(impressions) * 100)
}

// ComputeCostPerLead prioriza o custo por lead informado pela origem.
func ComputeCostPerLead(spend float64, leads int, upstreamCost *float64) float64 {
	if upstreamCost != nil {
		return utils.RoundWithTwoDecimalPlace(*upstreamCost)
	}
	if leads > 0 {
		return utils.RoundWithTwoDecimalPlace(spend / float64(leads))
	}
	return 0
}

// NormalizeMetrics monta as métricas a partir da linha de insights do item.
// Devolve nil quando a origem não tem métricas ou a linha não existe.
func NormalizeMetrics(item RawItem, rule *MetricsRule) *domain.AdMetrics {
	if rule == nil {
		return nil
	}

	insight, ok := item.Item(rule.InsightPath)
	if !ok {
		return nil
	}

	impressions := ParseCount(insight["impressions"])
	clicks := ParseCount(insight["clicks"])
	spend := ParseAmount(insight["spend"])

	leads := 0
	leadAction, hasLead := FindLeadAction(ParseActions(insight[rule.ActionsField]))
	if hasLead {
		leads = ParseCount(leadAction.Value)
	}

	upstreamCost := findLeadCost(ParseActions(insight[rule.CostPerActionField]), leadAction.ActionType)

	currency, found := insight.String(rule.CurrencyField)
	if !found {
		currency = domain.DefaultCurrency
	}

	return &domain.AdMetrics{
		Impressions: impressions,
		Clicks:      clicks,
		Reach:       ParseCount(insight["reach"]),
		CTR:         ComputeCTR(clicks, impressions),
		Spend:       utils.RoundWithTwoDecimalPlace(spend),
		Leads:       leads,
		CostPerLead: ComputeCostPerLead(spend, leads, upstreamCost),
		Currency:    currency,
	}
}

// findLeadCost procura o custo do mesmo tipo do lead encontrado e, na falta,
// o primeiro custo de qualquer tipo de lead.
func findLeadCost(costs []Action, leadType string) *float64 {
	if len(costs) == 0 {
		return nil
	}

	match, ok := Action{}, false
	if leadType != "" {
		for _, cost := range costs {
			if cost.ActionType == leadType {
				match, ok = cost, true
				break
			}
		}
	}
	if !ok {
		match, ok = FindLeadAction(costs)
	}
	if !ok {
		return nil
	}

	value, parsed := utils.ParseNumber(match.Value)
	if !parsed || value < 0 {
		return nil
	}
	return &value
}

// ResolveStatus classifica o anúncio como ativo ou inativo.
func ResolveStatus(item RawItem, rule StatusRule, now time.Time) domain.AdStatus {
	if rule.EffectiveStatusPath != "" {
		status, _ := item.String(rule.EffectiveStatusPath)
		if strings.EqualFold(strings.TrimSpace(status), rule.ActiveToken) {
			return domain.AdStatusActive
		}
		return domain.AdStatusInactive
	}

	if rule.ActiveFlagPath != "" {
		if active, ok := item.Bool(rule.ActiveFlagPath); ok {
			if active {
				return domain.AdStatusActive
			}
			return domain.AdStatusInactive
		}
	}

	if rule.StopTimePath != "" {
		if stopTime, ok := stopTimeOf(item, rule.StopTimePath); ok && !stopTime.After(now) {
			return domain.AdStatusInactive
		}
	}

	return domain.AdStatusActive
}

func stopTimeOf(item RawItem, path string) (time.Time, bool) {
	value, ok := item.Lookup(path)
	if !ok {
		return time.Time{}, false
	}

	if text, isText := value.(string); isText {
		return domain.ParseAdTimestamp(text)
	}

	if seconds, isNumber := utils.ParseNumber(value); isNumber && seconds > 0 {
		return time.Unix(int64(seconds), 0), true
	}
	return time.Time{}, false
}
