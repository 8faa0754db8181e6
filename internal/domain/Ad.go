package domain

type AdStatus string

const (
	AdStatusActive   AdStatus = "active"
	AdStatusInactive AdStatus = "inactive"
)

type Platform string

const (
	PlatformFacebook  Platform = "Facebook"
	PlatformInstagram Platform = "Instagram"
)

const DefaultCurrency = "BRL"

// AdMetrics só existe quando a origem entrega dados de desempenho (Meta).
type AdMetrics struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
	CTR         float64 `json:"ctr"`
	Spend       float64 `json:"spend"`
	Leads       int     `json:"leads"`
	CostPerLead float64 `json:"costPerLead"`
	Currency    string  `json:"currency"`
}

// Ad é o registro canônico entregue ao painel, independente da origem.
type Ad struct {
	ID                 string   `json:"id"`
	IDSynthetic        bool     `json:"idSynthetic,omitempty"`
	AdID               string   `json:"adId"`
	Headline           string   `json:"headline"`
	Body               string   `json:"body"`
	CTAText            string   `json:"ctaText"`
	DestinationURL     string   `json:"destinationUrl"`
	Thumbnail          string   `json:"thumbnail"`
	Status             AdStatus `json:"status"`
	Platform           Platform `json:"platform"`
	StartDate          string   `json:"startDate"`
	StartDateEstimated bool     `json:"startDateEstimated,omitempty"`
	LastSeen           string   `json:"lastSeen"`
	LastSeenEstimated  bool     `json:"lastSeenEstimated,omitempty"`
	PageName           string   `json:"pageName"`
	Tags               []string `json:"tags"`
	Notes              string   `json:"notes"`
	*AdMetrics
}

func (a Ad) IsActive() bool {
	return a.Status == AdStatusActive
}

type AdsResponse struct {
	Ads    []Ad `json:"ads"`
	Total  int  `json:"total"`
	Paging any  `json:"paging"`
}

func NewAdsResponse(ads []Ad) *AdsResponse {
	if ads == nil {
		ads = []Ad{}
	}

	return &AdsResponse{
		Ads:   ads,
		Total: len(ads),
	}
}
