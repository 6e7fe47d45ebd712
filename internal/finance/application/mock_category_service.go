package application

// MockCategoryService stands in for the category service in transaction and
// budget service tests. ExistingCategories maps category id to owner user id.
type MockCategoryService struct {
	ExistingCategories map[int]string
	Err                error
}

func (m *MockCategoryService) DoesCategoryExist(categoryID int, userID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	owner, ok := m.ExistingCategories[categoryID]
	return ok && owner == userID, nil
}
