package request

import (
	"encoding/json"
	"testing"

	"policy_pricing/internal/domain/entities"
)

func TestPolicyRequest_ToPolicy(t *testing.T) {
	var r PolicyRequest
	body := `{"policy_number":"pol-1","provider_name":"Acme","first_name":"Ada","last_name":"Lovelace","age":-3,"smoking_status":"Smoker","height":0,"weight":150}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entities.NewPolicy("pol-1", "Acme", "Ada", "Lovelace", -3, "Smoker", 0, 150)
	if got := r.ToPolicy(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
