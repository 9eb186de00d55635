package types

// QueryReq is a raw chat message forwarded by the bot adapter.
type QueryReq struct {
	Prompt string `json:"prompt"`
}

// QueryResp carries either a reply or an in-band error, never both.
type QueryResp struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// HealthResp reports service liveness.
type HealthResp struct {
	Status string `json:"status"`
}
