package domain

// ReferenceKind names a reference-data collection.
type ReferenceKind string

const (
	RefCompany  ReferenceKind = "company"
	RefAccount  ReferenceKind = "account"
	RefCategory ReferenceKind = "category"
)

// ReferenceItem is a company, account or category looked up by id.
// CompanyID is empty for companies themselves.
type ReferenceItem struct {
	Kind      ReferenceKind `json:"kind"`
	ID        string        `json:"id"`
	CompanyID string        `json:"companyID,omitempty"`
	Name      string        `json:"name"`
}
