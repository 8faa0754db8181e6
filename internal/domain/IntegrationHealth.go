package domain

const (
	TokenExpiryWarningDays = 7
	NeverExpires           = "Nunca (System User Token)"
	ExpiryWarningMessage   = "Token expira em menos de 7 dias! Considere renovar."
	HealthyMessage         = "Integração Meta API funcionando corretamente"
)

type TokenHealth struct {
	Valid             bool     `json:"valid"`
	Type              string   `json:"type,omitempty"`
	ExpiresIn         string   `json:"expiresIn"`
	DaysUntilExpiry   *int     `json:"daysUntilExpiry"`
	ExpirationWarning *string  `json:"expirationWarning"`
	Scopes            []string `json:"scopes"`
	AppID             string   `json:"appId,omitempty"`
}

type AccountHealth struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Currency string `json:"currency"`
	Timezone string `json:"timezone"`
}

// IntegrationHealth é o retorno da verificação de saúde da integração com a Meta.
type IntegrationHealth struct {
	Status    string        `json:"status"`
	Message   string        `json:"message"`
	Token     TokenHealth   `json:"token"`
	Account   AccountHealth `json:"account"`
	Timestamp string        `json:"timestamp"`
}

func (h *IntegrationHealth) ExpiresSoon() bool {
	return h.Token.DaysUntilExpiry != nil && *h.Token.DaysUntilExpiry < TokenExpiryWarningDays
}
