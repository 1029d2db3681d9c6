package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
}

type AuthService struct {
	DB        *gorm.DB
	Employees *Repository[models.Employee]
	TokenKey  []byte
	TokenTTL  time.Duration
}

func NewAuthService(db *gorm.DB, tokenKey []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		Employees: NewRepository[models.Employee](db, "employee"),
		TokenKey:  tokenKey,
		TokenTTL:  ttl,
	}
}

func (s *AuthService) issue(e *models.Employee) (string, error) {
	return utils.GenerateToken(e.ID, e.PhoneNumber, e.Role, s.TokenKey, s.TokenTTL)
}

// Register creates an employee and returns it with a fresh access token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Employee, string, error) {
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	employee := models.Employee{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Password:    in.Password,
		Role:        in.Role,
		IsAvailable: available,
	}
	if err := s.Employees.InsertOne(ctx, &employee); err != nil {
		return nil, "", err
	}
	log.Printf("✅ employee registered id=%d role=%s", employee.ID, employee.Role)

	token, err := s.issue(&employee)
	if err != nil {
		return nil, "", err
	}
	return &employee, token, nil
}

// Login checks the phone number and password pair.
func (s *AuthService) Login(ctx context.Context, phoneNumber, password string) (*models.Employee, string, error) {
	if _, err := utils.IsDefined(phoneNumber, "phoneNumber", true); err != nil {
		return nil, "", err
	}
	if _, err := utils.IsDefined(password, "password", true); err != nil {
		return nil, "", err
	}

	invalid := utils.IncorrectData("invalid credentials", "the phone number or password is incorrect. check them and try again.")

	var employee models.Employee
	err := s.DB.WithContext(ctx).Where("phone_number = ?", strings.TrimSpace(phoneNumber)).Take(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", invalid
	}
	if err != nil {
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, employee.Password) {
		log.Printf("⚠️ failed login for employee id=%d", employee.ID)
		return nil, "", invalid
	}

	token, err := s.issue(&employee)
	if err != nil {
		return nil, "", err
	}
	return &employee, token, nil
}

func (s *AuthService) Me(ctx context.Context, id uint) (*models.Employee, error) {
	return s.Employees.GetOneByID(ctx, id)
}

// Verify decodes a token signed by this service.
func (s *AuthService) Verify(token string) (*utils.Claims, error) {
	return utils.ParseToken(token, s.TokenKey)
}
