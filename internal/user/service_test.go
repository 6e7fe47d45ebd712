package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	users []User
	err   error
}

func (m *mockRepository) createUser(user *User) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return ErrEmailAlreadyExists
		}
	}
	user.IsActive = true
	m.users = append(m.users, *user)
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

type mockSeeder struct {
	seededFor []string
	err       error
}

func (m *mockSeeder) CreateDefaultCategories(userID string) error {
	if m.err != nil {
		return m.err
	}
	m.seededFor = append(m.seededFor, userID)
	return nil
}

func TestRegister_CreatesUserAndSeedsCategories(t *testing.T) {
	repo := &mockRepository{}
	seeder := &mockSeeder{}
	service := NewUserService(repo, seeder)

	registered, err := service.Register("Maria", "maria@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "maria@example.com", registered.Email)
	assert.NotEqual(t, "secret123", registered.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(registered.PasswordHash), []byte("secret123")))

	assert.Equal(t, []string{registered.ID}, seeder.seededFor)
}

func TestRegister_Validation(t *testing.T) {
	service := NewUserService(&mockRepository{}, &mockSeeder{})

	_, err := service.Register("", "maria@example.com", "secret123")
	assert.Equal(t, ErrNameRequired, err)

	_, err = service.Register("Maria", "not-an-email", "secret123")
	assert.Equal(t, ErrInvalidEmail, err)

	_, err = service.Register("Maria", "maria@example.com", "short")
	assert.Equal(t, ErrPasswordTooShort, err)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo, &mockSeeder{})

	_, err := service.Register("Maria", "maria@example.com", "secret123")
	assert.NoError(t, err)

	_, err = service.Register("Other Maria", "maria@example.com", "secret456")
	assert.Equal(t, ErrEmailAlreadyExists, err)
}

func TestRegister_SeederFailureDoesNotFailRegistration(t *testing.T) {
	repo := &mockRepository{}
	seeder := &mockSeeder{err: assert.AnError}
	service := NewUserService(repo, seeder)

	_, err := service.Register("Maria", "maria@example.com", "secret123")
	assert.NoError(t, err)
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo, &mockSeeder{})

	registered, err := service.Register("Maria", "maria@example.com", "secret123")
	assert.NoError(t, err)

	loggedIn, err := service.Login("maria@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)

	// Unknown email and wrong password are indistinguishable.
	_, unknownErr := service.Login("nobody@example.com", "secret123")
	assert.Equal(t, ErrInvalidCredentials, unknownErr)

	_, wrongErr := service.Login("maria@example.com", "wrongpass")
	assert.Equal(t, ErrInvalidCredentials, wrongErr)
	assert.Equal(t, unknownErr, wrongErr)
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo, &mockSeeder{})

	_, err := service.Register("Maria", "maria@example.com", "secret123")
	assert.NoError(t, err)
	repo.users[0].IsActive = false

	_, err = service.Login("maria@example.com", "secret123")
	assert.Equal(t, ErrUserInactive, err)
}
