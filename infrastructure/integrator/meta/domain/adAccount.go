package metadomain

const AccountStatusActive = 1

type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

func (a *AdAccount) StatusLabel() string {
	if a.AccountStatus == AccountStatusActive {
		return "ACTIVE"
	}
	return "INACTIVE"
}

type DebugTokenResponse struct {
	Data DebugTokenData `json:"data"`
}

type DebugTokenData struct {
	AppID     string   `json:"app_id"`
	Type      string   `json:"type"`
	IsValid   bool     `json:"is_valid"`
	ExpiresAt int64    `json:"expires_at"`
	Scopes    []string `json:"scopes"`
	Error     any      `json:"error,omitempty"`
}
