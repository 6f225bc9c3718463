package interfaces

import (
	"context"
	"errors"
	"policy_pricing/internal/domain/entities"
)

// ErrDuplicatePolicyNumber is returned by Create when the number is already stored.
var ErrDuplicatePolicyNumber = errors.New("duplicate policy number")

//go:generate mockgen -source=policy_repository_interface.go -destination=mocks/mock_policy_repository_interface.go -package=mock_interfaces

// IPolicyRepository abstracts DynamoDB persistence for PolicyRecord.
//
// Lookups that find nothing return a zero PolicyRecord and a nil error.

type IPolicyRepository interface {
	Create(ctx context.Context, r entities.PolicyRecord) (entities.PolicyRecord, error)
	GetByPolicyNumber(ctx context.Context, policyNumber string) (entities.PolicyRecord, error)
	Update(ctx context.Context, r entities.PolicyRecord) (entities.PolicyRecord, error)
	Delete(ctx context.Context, policyNumber string) (entities.PolicyRecord, error)
	ListByProvider(ctx context.Context, providerName string) ([]entities.PolicyRecord, error)
}
