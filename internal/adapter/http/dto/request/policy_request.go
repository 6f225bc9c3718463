package request

import (
	"policy_pricing/internal/domain/entities"
)

// PolicyRequest carries the holder attributes for quote, create and update.
//
// Values are taken as-is: any age, any smoking status string, zero height.
type PolicyRequest struct {
	PolicyNumber  string `json:"policy_number"`
	ProviderName  string `json:"provider_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Age           int    `json:"age"`
	SmokingStatus string `json:"smoking_status"`
	Height        int    `json:"height"`
	Weight        int    `json:"weight"`
}

func (r PolicyRequest) ToPolicy() entities.Policy {
	return entities.NewPolicy(r.PolicyNumber, r.ProviderName, r.FirstName, r.LastName, r.Age, r.SmokingStatus, r.Height, r.Weight)
}
