package user

import (
	"errors"
	"fmt"
	"log"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxNameLength     = 100
	minPasswordLength = 6
	bcryptCost        = 10
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = fmt.Errorf("name is too long, max length: %d", maxNameLength)
	ErrPasswordTooShort   = fmt.Errorf("password is too short, min length: %d", minPasswordLength)
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrInternalError      = errors.New("internal Server Error")
)

// CategorySeeder creates the starter categories for a new user. It keeps the
// user package decoupled from the finance packages.
type CategorySeeder interface {
	CreateDefaultCategories(userID string) error
}

type Service interface {
	Register(name, email, password string) (*User, error)
	Login(email, password string) (*User, error)
	GetUserByID(userID string) (*User, error)
}

type service struct {
	repo   Repository
	seeder CategorySeeder
}

func NewUserService(repo Repository, seeder CategorySeeder) Service {
	return &service{
		repo:   repo,
		seeder: seeder,
	}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func (s *service) Register(name, email, password string) (*User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		log.Printf("Error during hashing the password: %v", err)
		return nil, ErrInternalError
	}

	user := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.repo.createUser(user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		log.Printf("Error creating user: %v", err)
		return nil, ErrInternalError
	}

	// A failed seeding must not roll back a registration that already
	// committed, so it is only logged.
	if s.seeder != nil {
		if err := s.seeder.CreateDefaultCategories(user.ID); err != nil {
			log.Printf("Error creating default categories for user %s: %v", user.ID, err)
		}
	}

	return user, nil
}

func (s *service) Login(email, password string) (*User, error) {
	user, err := s.repo.getUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email: %v", err)
		return nil, ErrInternalError
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}
