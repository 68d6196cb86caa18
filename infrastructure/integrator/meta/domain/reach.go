package domain

// Graph API response shapes. Numeric fields arrive as strings and are converted
// at the integrator boundary.

type ReachInsight struct {
	Reach     string `json:"reach"`
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`
}

type ReachInsightResponse struct {
	Data []ReachInsight `json:"data"`
}

type AdsetCampaign struct {
	Name string `json:"name"`
}

type Adset struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Campaign AdsetCampaign `json:"campaign"`
}

type AdsetListResponse struct {
	Data   []Adset `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type APIError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
