package govdata

// APIResponse is one page of a jurisdiction's tenement register.
type APIResponse struct {
	PageInfo PageInfo  `json:"pageInfo"`
	Content  []Content `json:"content"`
}

type PageInfo struct {
	Page       int `json:"page"`
	NumPages   int `json:"numPages"`
	PageSize   int `json:"pageSize"`
	NumEntries int `json:"numEntries"`
}

type Content struct {
	ID           string      `json:"id"`
	Jurisdiction string      `json:"jurisdiction"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	AreaHectares *float64    `json:"areaHa"`
	GrantDate    *string     `json:"grantDate"`
	ExpiryDate   *string     `json:"expiryDate"`
	Holders      []APIHolder `json:"holders"`
	LastModified string      `json:"lastModified"`
}

type APIHolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
