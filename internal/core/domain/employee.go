package domain

// Employee is a staff account managed from the roles-permissions screens.
type Employee struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone,omitempty"`
	AccessLevel string        `json:"accessLevel"`
	Permissions PermissionMap `json:"permissions,omitempty"`
	Active      bool          `json:"active"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// ActivityLog is one row of the upstream admin activity log viewer.
type ActivityLog struct {
	ID        string `json:"_id"`
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	Target    string `json:"target,omitempty"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// DashboardStats is the aggregate card data shown on the landing page.
type DashboardStats struct {
	TotalLeads     int `json:"totalLeads"`
	NewLeadsToday  int `json:"newLeadsToday"`
	TotalLoans     int `json:"totalLoans"`
	PendingLoans   int `json:"pendingLoans"`
	TotalEmployees int `json:"totalEmployees"`
	TotalBusiness  int `json:"totalBusiness"`
}
