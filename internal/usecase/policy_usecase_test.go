package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"policy_pricing/internal/domain/entities"
	"policy_pricing/internal/usecase/interfaces"
	mock_interfaces "policy_pricing/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestPolicyUseCase_QuotePolicy(t *testing.T) {
	uc := NewPolicyUseCase(nil)
	b := uc.QuotePolicy(context.Background(), entities.NewPolicy("", "", "", "", 55, "smoker", 70, 150))
	if b.Total != 775.0 || b.AgeSurcharge != 75.0 || b.SmokerSurcharge != 100.0 || b.BMISurcharge != 0 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
}

func TestPolicyUseCase_CreatePolicy(t *testing.T) {
	holder := entities.NewPolicy(" pol-1 ", "Acme", "Ada", "Lovelace", 40, "non-smoker", 60, 300)

	t.Run("repo lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, errors.New("db"))

		_, err := uc.CreatePolicy(context.Background(), holder)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		existing := entities.PolicyRecord{Policy: entities.Policy{PolicyNumber: "pol-1"}}
		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(existing, nil)

		_, err := uc.CreatePolicy(context.Background(), holder)
		if !errors.Is(err, ErrPolicyAlreadyExists) {
			t.Fatalf("expected ErrPolicyAlreadyExists, got %v", err)
		}
	})

	t.Run("create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PolicyRecord{}, errors.New("db"))

		_, err := uc.CreatePolicy(context.Background(), holder)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("concurrent create of same number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PolicyRecord{}, interfaces.ErrDuplicatePolicyNumber)

		_, err := uc.CreatePolicy(context.Background(), holder)
		if !errors.Is(err, ErrPolicyAlreadyExists) {
			t.Fatalf("expected ErrPolicyAlreadyExists, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PolicyRecord{})).DoAndReturn(
			func(_ context.Context, r entities.PolicyRecord) (entities.PolicyRecord, error) {
				if r.PolicyNumber != "pol-1" || r.ProviderName != "Acme" || r.Age != 40 {
					t.Fatalf("unexpected record: %+v", r)
				}
				if r.BMI != (300*703.0)/3600 || r.Price != r.Policy.CalculatePolicyPrice() {
					t.Fatalf("unexpected derived values: %+v", r)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.CreatePolicy(context.Background(), holder)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PolicyNumber != "pol-1" {
			t.Fatalf("unexpected policy number %q", res.PolicyNumber)
		}
	})

	t.Run("blank number is generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)

		repo.EXPECT().GetByPolicyNumber(gomock.Any(), gomock.Any()).Return(entities.PolicyRecord{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PolicyRecord) (entities.PolicyRecord, error) { return r, nil },
		)

		res, err := uc.CreatePolicy(context.Background(), entities.Policy{Height: 70, Weight: 150})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(res.PolicyNumber); err != nil {
			t.Fatalf("expected generated uuid, got %q", res.PolicyNumber)
		}
	})
}

func TestPolicyUseCase_GetByPolicyNumber(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc := NewPolicyUseCase(nil)
		_, err := uc.GetByPolicyNumber(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPolicyNumber) {
			t.Fatalf("expected ErrInvalidPolicyNumber, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, errors.New("db"))

		_, err := uc.GetByPolicyNumber(context.Background(), "pol-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, nil)

		_, err := uc.GetByPolicyNumber(context.Background(), "pol-1")
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		expected := entities.PolicyRecord{Policy: entities.Policy{PolicyNumber: "pol-1"}, Price: 600}
		repo.EXPECT().GetByPolicyNumber(gomock.Any(), "pol-1").Return(expected, nil)

		res, err := uc.GetByPolicyNumber(context.Background(), " pol-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Price != 600 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPolicyUseCase_UpdatePolicy(t *testing.T) {
	changed := entities.NewPolicy("ignored", "Acme", "Ada", "Lovelace", 51, "smoker", 70, 150)

	t.Run("invalid number", func(t *testing.T) {
		uc := NewPolicyUseCase(nil)
		_, err := uc.UpdatePolicy(context.Background(), "", changed)
		if !errors.Is(err, ErrInvalidPolicyNumber) {
			t.Fatalf("expected ErrInvalidPolicyNumber, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PolicyRecord{}, errors.New("db"))

		_, err := uc.UpdatePolicy(context.Background(), "pol-1", changed)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.PolicyRecord{}, nil)

		_, err := uc.UpdatePolicy(context.Background(), "pol-1", changed)
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("success recomputes price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PolicyRecord) (entities.PolicyRecord, error) {
				if r.PolicyNumber != "pol-1" {
					t.Fatalf("expected path number to win, got %q", r.PolicyNumber)
				}
				if r.Price != 775.0 || r.UpdatedAt.IsZero() {
					t.Fatalf("unexpected record: %+v", r)
				}
				r.CreatedAt = created
				return r, nil
			},
		)

		res, err := uc.UpdatePolicy(context.Background(), " pol-1 ", changed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CreatedAt.Equal(created) || res.Price != 775.0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestPolicyUseCase_DeletePolicy(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc := NewPolicyUseCase(nil)
		if err := uc.DeletePolicy(context.Background(), " "); !errors.Is(err, ErrInvalidPolicyNumber) {
			t.Fatalf("expected ErrInvalidPolicyNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, nil)

		if err := uc.DeletePolicy(context.Background(), "pol-1"); !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "pol-1").Return(entities.PolicyRecord{}, errors.New("db"))

		if err := uc.DeletePolicy(context.Background(), "pol-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "pol-1").Return(entities.PolicyRecord{Policy: entities.Policy{PolicyNumber: "pol-1"}}, nil)

		if err := uc.DeletePolicy(context.Background(), " pol-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPolicyUseCase_ListByProvider(t *testing.T) {
	t.Run("invalid provider", func(t *testing.T) {
		uc := NewPolicyUseCase(nil)
		_, err := uc.ListByProvider(context.Background(), "")
		if !errors.Is(err, ErrInvalidProviderName) {
			t.Fatalf("expected ErrInvalidProviderName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := NewPolicyUseCase(repo)
		expected := []entities.PolicyRecord{
			{Policy: entities.Policy{PolicyNumber: "pol-1", ProviderName: "Acme"}},
			{Policy: entities.Policy{PolicyNumber: "pol-2", ProviderName: "Acme"}},
		}
		repo.EXPECT().ListByProvider(gomock.Any(), "Acme").Return(expected, nil)

		res, err := uc.ListByProvider(context.Background(), " Acme ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 policies, got %d", len(res))
		}
	})
}
