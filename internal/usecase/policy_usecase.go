package usecase

import (
	"context"
	"errors"
	"policy_pricing/internal/domain/entities"
	"policy_pricing/internal/infrastructure/logging"
	"policy_pricing/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPolicyNotFound      = errors.New("policy not found")
	ErrPolicyAlreadyExists = errors.New("policy already exists")
	ErrInvalidPolicyNumber = errors.New("invalid policy number")
	ErrInvalidProviderName = errors.New("invalid provider name")
)

//go:generate mockgen -source=policy_usecase.go -destination=../adapter/http/handlers/mocks/mock_policy_usecase.go -package=mocks

// IPolicyUseCase exposes pricing and storage of insurance policies.
//
// Holder fields are never validated; only the policy number, which keys
// storage, has to be non-blank.

type IPolicyUseCase interface {
	QuotePolicy(ctx context.Context, p entities.Policy) entities.PriceBreakdown
	CreatePolicy(ctx context.Context, p entities.Policy) (entities.PolicyRecord, error)
	GetByPolicyNumber(ctx context.Context, policyNumber string) (entities.PolicyRecord, error)
	UpdatePolicy(ctx context.Context, policyNumber string, p entities.Policy) (entities.PolicyRecord, error)
	DeletePolicy(ctx context.Context, policyNumber string) error
	ListByProvider(ctx context.Context, providerName string) ([]entities.PolicyRecord, error)
}

type PolicyUseCase struct {
	repo interfaces.IPolicyRepository
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository) *PolicyUseCase {
	return &PolicyUseCase{repo: repo}
}

// QuotePolicy prices p without storing it.
func (u *PolicyUseCase) QuotePolicy(_ context.Context, p entities.Policy) entities.PriceBreakdown {
	b := p.PriceBreakdown()
	logging.Logger.Debug("policy quoted",
		zap.String("policy_number", p.PolicyNumber),
		zap.Float64("bmi", b.BMI),
		zap.Float64("price", b.Total),
	)
	return b
}

// CreatePolicy stores p with its derived BMI and price. A blank policy number
// is replaced by a generated one.
func (u *PolicyUseCase) CreatePolicy(ctx context.Context, p entities.Policy) (entities.PolicyRecord, error) {
	p.PolicyNumber = strings.TrimSpace(p.PolicyNumber)
	if p.PolicyNumber == "" {
		p.PolicyNumber = uuid.NewString()
	}
	log := logging.Logger.With(zap.String("policy_number", p.PolicyNumber))

	if existing, err := u.repo.GetByPolicyNumber(ctx, p.PolicyNumber); err != nil {
		log.Error("policy lookup failed", zap.Error(err))
		return entities.PolicyRecord{}, err
	} else if existing.PolicyNumber != "" {
		return entities.PolicyRecord{}, ErrPolicyAlreadyExists
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.NewPolicyRecord(p, now, now))
	if errors.Is(err, interfaces.ErrDuplicatePolicyNumber) {
		// Written by a concurrent create after the lookup above.
		return entities.PolicyRecord{}, ErrPolicyAlreadyExists
	}
	if err != nil {
		log.Error("policy create failed", zap.Error(err))
		return entities.PolicyRecord{}, err
	}
	log.Info("policy created", zap.String("provider_name", created.ProviderName), zap.Float64("price", created.Price))
	return created, nil
}

func (u *PolicyUseCase) GetByPolicyNumber(ctx context.Context, policyNumber string) (entities.PolicyRecord, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return entities.PolicyRecord{}, ErrInvalidPolicyNumber
	}

	r, err := u.repo.GetByPolicyNumber(ctx, policyNumber)
	if err != nil {
		return entities.PolicyRecord{}, err
	}
	if r.PolicyNumber == "" {
		return entities.PolicyRecord{}, ErrPolicyNotFound
	}
	return r, nil
}

// UpdatePolicy replaces every holder field of an existing policy and
// recomputes its price. The number in p is ignored.
func (u *PolicyUseCase) UpdatePolicy(ctx context.Context, policyNumber string, p entities.Policy) (entities.PolicyRecord, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return entities.PolicyRecord{}, ErrInvalidPolicyNumber
	}
	p.PolicyNumber = policyNumber

	updated, err := u.repo.Update(ctx, entities.NewPolicyRecord(p, time.Time{}, time.Now().UTC()))
	if err != nil {
		logging.Logger.Error("policy update failed", zap.String("policy_number", policyNumber), zap.Error(err))
		return entities.PolicyRecord{}, err
	}
	if updated.PolicyNumber == "" {
		return entities.PolicyRecord{}, ErrPolicyNotFound
	}
	logging.Logger.Info("policy updated", zap.String("policy_number", policyNumber), zap.Float64("price", updated.Price))
	return updated, nil
}

func (u *PolicyUseCase) DeletePolicy(ctx context.Context, policyNumber string) error {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return ErrInvalidPolicyNumber
	}

	deleted, err := u.repo.Delete(ctx, policyNumber)
	if err != nil {
		return err
	}
	if deleted.PolicyNumber == "" {
		return ErrPolicyNotFound
	}
	logging.Logger.Info("policy deleted", zap.String("policy_number", policyNumber))
	return nil
}

func (u *PolicyUseCase) ListByProvider(ctx context.Context, providerName string) ([]entities.PolicyRecord, error) {
	providerName = strings.TrimSpace(providerName)
	if providerName == "" {
		return nil, ErrInvalidProviderName
	}
	return u.repo.ListByProvider(ctx, providerName)
}
