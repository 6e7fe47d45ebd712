package application

import (
	"sort"
	"time"

	"github.com/gesteasy/GestEasy/internal/finance/domain"
	financeErrors "github.com/gesteasy/GestEasy/internal/finance/errors"
)

// systemClock is the production Clock. All period defaulting runs in UTC so
// "the current month" does not depend on where the server happens to run.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

func NewSystemClock() domain.Clock { return systemClock{} }

type BudgetService struct {
	repo            domain.BudgetRepository
	categoryService CategoryServiceInterface
	clock           domain.Clock
}

func NewBudgetService(repo domain.BudgetRepository, categoryService CategoryServiceInterface, clock domain.Clock) *BudgetService {
	return &BudgetService{repo: repo, categoryService: categoryService, clock: clock}
}

// defaultPeriod substitutes the current month/year for an omitted period.
func (s *BudgetService) defaultPeriod(month, year int) (int, int) {
	if month == 0 || year == 0 {
		now := s.clock.Now()
		return int(now.Month()), now.Year()
	}
	return month, year
}

// ListBudgets returns the budgets of a period with derived status, highest
// consumption first.
func (s *BudgetService) ListBudgets(userID string, month, year int) ([]domain.BudgetStatus, error) {
	month, year = s.defaultPeriod(month, year)
	if month < 1 || month > 12 {
		return nil, financeErrors.NewValidationError("Month must be between 1 and 12")
	}
	if year < domain.MinBudgetYear {
		return nil, financeErrors.NewValidationError("Year must be 2000 or later")
	}

	statuses, err := s.repo.FindByPeriod(userID, month, year)
	if err != nil {
		return nil, err
	}
	for i := range statuses {
		statuses[i].Derive()
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].PercentUsed.GreaterThan(statuses[j].PercentUsed)
	})
	if statuses == nil {
		return []domain.BudgetStatus{}, nil
	}
	return statuses, nil
}

func (s *BudgetService) GetBudget(userID string, budgetID int) (*domain.BudgetStatus, error) {
	status, err := s.repo.FindByID(userID, budgetID)
	if err != nil {
		return nil, err
	}
	status.Derive()
	return status, nil
}

func (s *BudgetService) CreateBudget(budget *domain.Budget) error {
	if err := budget.Validate(); err != nil {
		return err
	}

	exists, err := s.categoryService.DoesCategoryExist(budget.CategoryID, budget.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return financeErrors.ErrInvalidCategory
	}

	duplicate, err := s.repo.ExistsForPeriod(budget.UserID, budget.CategoryID, budget.Month, budget.Year, 0)
	if err != nil {
		return err
	}
	if duplicate {
		return financeErrors.ErrDuplicateBudgetPeriod
	}
	// A concurrent create of the same period loses against the unique index
	// and comes back from the repository as the same conflict.
	return s.repo.Save(budget)
}

func (s *BudgetService) UpdateBudget(userID string, budgetID int, patch domain.BudgetPatch) (*domain.BudgetStatus, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.FindByID(userID, budgetID)
	if err != nil {
		return nil, err
	}

	if patch.Month != nil || patch.Year != nil {
		month, year := current.Month, current.Year
		if patch.Month != nil {
			month = *patch.Month
		}
		if patch.Year != nil {
			year = *patch.Year
		}
		duplicate, err := s.repo.ExistsForPeriod(userID, current.CategoryID, month, year, budgetID)
		if err != nil {
			return nil, err
		}
		if duplicate {
			return nil, financeErrors.ErrDuplicateBudgetPeriod
		}
	}

	if err := s.repo.Update(userID, budgetID, patch); err != nil {
		return nil, err
	}
	return s.GetBudget(userID, budgetID)
}

func (s *BudgetService) DeleteBudget(userID string, budgetID int) error {
	return s.repo.Delete(userID, budgetID)
}
