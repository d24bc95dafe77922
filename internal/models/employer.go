package models

// EmployerProfile belongs to exactly one employer-role user and shares its id.
type EmployerProfile struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	Location    Location `json:"location"`
	Description string   `json:"description,omitempty"`
	CompanyLogo string   `json:"companyLogo,omitempty"`
	CompanySize string   `json:"companySize,omitempty"`
	Industry    string   `json:"industry"`
	Website     string   `json:"website,omitempty"`
	JoinDate    string   `json:"joinDate"`
}
