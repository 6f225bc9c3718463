package entities

import "time"

// Pricing constants.
//
// All surcharges are additive and independent of each other.
const (
	BaseFee               = 600.0
	AgeSurchargeThreshold = 50
	AgeSurcharge          = 75.0
	SmokerStatus          = "smoker"
	SmokerSurcharge       = 100.0
	BMISurchargeThreshold = 35.0
	BMISurchargeRate      = 20.0

	// BMIConversionFactor converts lb/in² to kg/m².
	BMIConversionFactor = 703.0
)

// Policy is one insurance contract tied to one policy holder.
//
// The zero value is a valid, empty policy. No field is validated: age may be
// negative, smoking status is free text and height may be zero.
//
// Height is in inches and weight in pounds.
type Policy struct {
	PolicyNumber  string `json:"policy_number"`
	ProviderName  string `json:"provider_name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Age           int    `json:"age"`
	SmokingStatus string `json:"smoking_status"`
	Height        int    `json:"height"`
	Weight        int    `json:"weight"`
}

// NewPolicy builds a fully populated Policy.
func NewPolicy(policyNumber, providerName, firstName, lastName string, age int, smokingStatus string, height, weight int) Policy {
	return Policy{
		PolicyNumber:  policyNumber,
		ProviderName:  providerName,
		FirstName:     firstName,
		LastName:      lastName,
		Age:           age,
		SmokingStatus: smokingStatus,
		Height:        height,
		Weight:        weight,
	}
}

// CalculateBMI returns the holder's body mass index.
//
// A zero height yields +Inf (or NaN when weight is also zero).
func (p Policy) CalculateBMI() float64 {
	return (float64(p.Weight) * BMIConversionFactor) / (float64(p.Height) * float64(p.Height))
}

// CalculatePolicyPrice returns the base fee plus every applicable surcharge.
func (p Policy) CalculatePolicyPrice() float64 {
	return p.PriceBreakdown().Total
}

// PriceBreakdown itemises the policy price.
type PriceBreakdown struct {
	BaseFee         float64
	AgeSurcharge    float64
	SmokerSurcharge float64
	BMISurcharge    float64
	BMI             float64
	Total           float64
}

// PriceBreakdown computes each surcharge and the total.
//
// Smoking status must equal SmokerStatus exactly; "Smoker" does not count.
func (p Policy) PriceBreakdown() PriceBreakdown {
	b := PriceBreakdown{BaseFee: BaseFee}
	additional := 0.0

	if p.Age > AgeSurchargeThreshold {
		b.AgeSurcharge = AgeSurcharge
		additional += b.AgeSurcharge
	}

	if p.SmokingStatus == SmokerStatus {
		b.SmokerSurcharge = SmokerSurcharge
		additional += b.SmokerSurcharge
	}

	b.BMI = p.CalculateBMI()
	if b.BMI > BMISurchargeThreshold {
		b.BMISurcharge = (b.BMI - BMISurchargeThreshold) * BMISurchargeRate
		additional += b.BMISurcharge
	}

	b.Total = b.BaseFee + additional
	return b
}

// PolicyRecord is the stored form of a Policy.
//
// Storage model (DynamoDB):
//   - PK: policy_number
//   - GSI1 (provider_name-index): provider_name
//
// BMI and Price are derived from the holder fields at write time.
type PolicyRecord struct {
	Policy
	BMI       float64   `json:"bmi"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPolicyRecord derives BMI and price from p.
func NewPolicyRecord(p Policy, createdAt, updatedAt time.Time) PolicyRecord {
	b := p.PriceBreakdown()
	return PolicyRecord{
		Policy:    p,
		BMI:       b.BMI,
		Price:     b.Total,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
