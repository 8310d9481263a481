package models

// SubContractor is an external tradesperson or company assignable to
// punch items. CompletedJobs is maintained by hand, never incremented
// automatically.
type SubContractor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Company         string  `json:"company"`
	Trade           Trade   `json:"trade"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Rate            float64 `json:"rate"`   // dollars per hour
	Rating          float64 `json:"rating"` // 0-5, one decimal by convention
	CompletedJobs   int     `json:"completedJobs"`
	AvgResponseTime string  `json:"avgResponseTime"`
	Notes           string  `json:"notes"`
}
