package domain

// Country is the top of the address hierarchy.
type Country struct {
	Code        int64  `json:"code"`
	Name        string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	PhonePrefix string `json:"phonePrefix"` // DDI
	AuditFields
}

// State belongs to a country and is identified to users by its UF.
type State struct {
	Code        int64  `json:"code"`
	Name        string `json:"name"`
	UF          string `json:"uf"`
	CountryCode int64  `json:"countryCode"`
	AuditFields
}

// City belongs to a state.
type City struct {
	Code      int64  `json:"code"`
	Name      string `json:"name"`
	AreaCode  string `json:"areaCode"` // DDD
	StateCode int64  `json:"stateCode"`
	AuditFields
}
