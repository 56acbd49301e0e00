package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/DhyanMarasinghe/Fitnesstrackerpro/models"
	"github.com/DhyanMarasinghe/Fitnesstrackerpro/utils"
)

type AuthService struct {
	db     *gorm.DB
	secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{db: db, secret: secret}
}

type RegisterInput struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Age      *int     `json:"age"`
	Gender   *string  `json:"gender"`
}

// Register validates input, enforces email uniqueness and creates the account
// with default goals. Returns the stored user and a signed token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || email == "" || in.Password == "" {
		return nil, "", invalid("Name, email, and password are required")
	}
	if err := validateName(name); err != nil {
		return nil, "", err
	}
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, "", err
	}
	if in.Weight != nil {
		if err := weightRange.check(*in.Weight); err != nil {
			return nil, "", err
		}
	}
	if in.Height != nil {
		if err := heightRange.check(*in.Height); err != nil {
			return nil, "", err
		}
	}
	if in.Age != nil {
		if err := ageRange.check(*in.Age); err != nil {
			return nil, "", err
		}
	}
	var gender *string
	if in.Gender != nil {
		g := strings.ToLower(*in.Gender)
		if err := validateGender(g); err != nil {
			return nil, "", err
		}
		gender = &g
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Name:           name,
		Email:          email,
		Password:       hashed,
		Weight:         in.Weight,
		Height:         in.Height,
		Age:            in.Age,
		Gender:         gender,
		DailySteps:     models.DefaultDailySteps,
		DailyCalories:  models.DefaultDailyCalories,
		WeeklyWorkouts: models.DefaultWeeklyWorkouts,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index is the real guard and gets the same generic message.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", err
	}

	token, err := utils.GenerateJWT(s.secret, user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user. Unknown email and wrong password produce the
// identical ErrBadCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, "", invalid("Email and password are required")
	}
	if err := validateEmail(email); err != nil {
		return nil, "", err
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrBadCredentials
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(in.Password, user.Password) {
		return nil, "", ErrBadCredentials
	}

	token, err := utils.GenerateJWT(s.secret, user.ID, user.Email, user.Name)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
