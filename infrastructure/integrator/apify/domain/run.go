package apifydomain

type RunStatus string

const (
	RunReady     RunStatus = "READY"
	RunRunning   RunStatus = "RUNNING"
	RunSucceeded RunStatus = "SUCCEEDED"
	RunFailed    RunStatus = "FAILED"
	RunAborted   RunStatus = "ABORTED"
	RunTimedOut  RunStatus = "TIMED-OUT"
)

// Pending indica que a execução ainda não terminou; inclui estados de
// transição como ABORTING e TIMING-OUT.
func (s RunStatus) Pending() bool {
	return s != RunSucceeded && !s.Failed()
}

func (s RunStatus) Failed() bool {
	return s == RunFailed || s == RunAborted || s == RunTimedOut
}

type Run struct {
	ID               string    `json:"id"`
	Status           RunStatus `json:"status"`
	DefaultDatasetID string    `json:"defaultDatasetId"`
}

type RunResponse struct {
	Data Run `json:"data"`
}

// RunInput é a entrada do actor Facebook Ads Scraper.
type RunInput struct {
	ActiveStatus string   `json:"activeStatus"`
	Advertisers  []string `json:"advertisers,omitempty"`
	Category     string   `json:"category"`
	Country      string   `json:"country"`
	MediaType    string   `json:"mediaType"`
	PageID       string   `json:"pageId,omitempty"`
	Query        string   `json:"query,omitempty"`
	SortBy       string   `json:"sortBy"`
	MaxItems     int      `json:"maxItems"`
}

func NewRunInput(pageID, country, query, activeStatus string, maxItems int) RunInput {
	input := RunInput{
		ActiveStatus: activeStatus,
		Category:     "all",
		Country:      country,
		MediaType:    "all",
		PageID:       pageID,
		Query:        query,
		SortBy:       "mostRecent",
		MaxItems:     maxItems,
	}
	if pageID != "" {
		input.Advertisers = []string{pageID}
	}
	return input
}
