package response

import (
	"math"
	"policy_pricing/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// Non-finite BMI or price values are rendered as null since JSON has no
// Inf/NaN.

type PolicyResponse struct {
	PolicyNumber  string    `json:"policy_number"`
	ProviderName  string    `json:"provider_name"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Age           int       `json:"age"`
	SmokingStatus string    `json:"smoking_status"`
	Height        int       `json:"height"`
	Weight        int       `json:"weight"`
	BMI           *float64  `json:"bmi"`
	Price         *float64  `json:"price"`
	PriceDisplay  string    `json:"price_display"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type QuoteResponse struct {
	BaseFee         float64  `json:"base_fee"`
	AgeSurcharge    float64  `json:"age_surcharge"`
	SmokerSurcharge float64  `json:"smoker_surcharge"`
	BMISurcharge    *float64 `json:"bmi_surcharge"`
	BMI             *float64 `json:"bmi"`
	Price           *float64 `json:"price"`
	PriceDisplay    string   `json:"price_display"`
}

func FromPolicyRecord(r entities.PolicyRecord) PolicyResponse {
	return PolicyResponse{
		PolicyNumber:  r.PolicyNumber,
		ProviderName:  r.ProviderName,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Age:           r.Age,
		SmokingStatus: r.SmokingStatus,
		Height:        r.Height,
		Weight:        r.Weight,
		BMI:           finite(r.BMI),
		Price:         finite(r.Price),
		PriceDisplay:  FormatPrice(r.Price),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromPolicyRecords(rs []entities.PolicyRecord) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromPolicyRecord(r))
	}
	return out
}

func FromPriceBreakdown(b entities.PriceBreakdown) QuoteResponse {
	return QuoteResponse{
		BaseFee:         b.BaseFee,
		AgeSurcharge:    b.AgeSurcharge,
		SmokerSurcharge: b.SmokerSurcharge,
		BMISurcharge:    finite(b.BMISurcharge),
		BMI:             finite(b.BMI),
		Price:           finite(b.Total),
		PriceDisplay:    FormatPrice(b.Total),
	}
}

// FormatPrice renders v with two decimals, or "" when v is not finite.
func FormatPrice(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ""
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
