package models

// Country is the row shape of the paises table.
type Country struct {
	Code         int64
	Name         string
	Abbreviation string
	PhonePrefix  string
	AuditFields
}

// State is the row shape of the estados table.
type State struct {
	Code        int64
	Name        string
	UF          string
	CountryCode int64
	AuditFields
}

// City is the row shape of the cidades table.
type City struct {
	Code      int64
	Name      string
	AreaCode  string
	StateCode int64
	AuditFields
}
