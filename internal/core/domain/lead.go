package domain

// Lead is an upstream lending lead. The gateway treats it as an opaque DTO:
// shapes exist for compile-time checking, the upstream owns every invariant.
type Lead struct {
	ID           string  `json:"_id"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	City         string  `json:"city"`
	LoanType     string  `json:"loanType"`
	LoanAmount   float64 `json:"loanAmount"`
	Status       string  `json:"status"`
	Source       string  `json:"source"`
	UTMSource    string  `json:"utmSource,omitempty"`
	UTMMedium    string  `json:"utmMedium,omitempty"`
	UTMCampaign  string  `json:"utmCampaign,omitempty"`
	AssignedTo   string  `json:"assignedTo,omitempty"`
	Remarks      string  `json:"remarks,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// LoanRequest is a submitted loan application attached to a lead.
type LoanRequest struct {
	ID            string  `json:"_id"`
	LeadID        string  `json:"leadId"`
	ApplicantName string  `json:"applicantName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	LoanType      string  `json:"loanType"`
	Amount        float64 `json:"amount"`
	TenureMonths  int     `json:"tenureMonths"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// Business is a business-loan enquiry managed on its own screen upstream.
type Business struct {
	ID           string  `json:"_id"`
	CompanyName  string  `json:"companyName"`
	ContactName  string  `json:"contactName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Turnover     float64 `json:"turnover"`
	LoanAmount   float64 `json:"loanAmount"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}
