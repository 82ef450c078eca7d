package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/entity"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/repository"
	"github.com/Hike-12/BitNBuild25-TeamPony-sub000/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles login/registration for the three account kinds.
// Each kind gets tokens of its own audience.
type AuthService struct {
	userRepo   *repository.UserRepository
	vendorRepo *repository.VendorRepository
	adminRepo  *repository.AdminRepository
	jwtSecret  string
	jwtTTL     time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	vendorRepo *repository.VendorRepository,
	adminRepo *repository.AdminRepository,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		adminRepo:  adminRepo,
		jwtSecret:  secret,
		jwtTTL:     ttl,
	}
}

type RegisterUserInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type RegisterVendorInput struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	BusinessName  string `json:"business_name"`
	Address       string `json:"address"`
	PhoneNumber   string `json:"phone_number"`
	LicenseNumber string `json:"license_number"`
	Password      string `json:"password"`
}

const minPasswordLen = 6

var errInvalidCredentials = Unauthorized("Invalid credentials")

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("hash password failed")
	}
	return string(hashed), nil
}

func (s *AuthService) issue(id uint, audience string) (string, error) {
	token, err := utils.GenerateToken(id, audience, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", errors.New("cannot generate token")
	}
	return token, nil
}

// ----- Consumers -----

func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (string, *UserProfile, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", nil, Validation("Username, email and password are required")
	}
	if len(in.Password) < minPasswordLen {
		return "", nil, Validation("Password must be at least 6 characters")
	}

	count, err := s.userRepo.CountByUsernameOrEmail(ctx, in.Username, in.Email)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, Duplicate("Username or email already exists")
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}
	user := &entity.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  hashed,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Phone:     strings.TrimSpace(in.Phone),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return "", nil, Duplicate("Username or email already exists")
		}
		return "", nil, err
	}

	token, err := s.issue(user.ID, utils.AudienceCustomer)
	if err != nil {
		return "", nil, err
	}
	profile := NewUserProfile(user)
	return token, &profile, nil
}

func (s *AuthService) LoginUser(ctx context.Context, identifier, password string) (string, *UserProfile, error) {
	user, err := s.userRepo.FindByLogin(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	token, err := s.issue(user.ID, utils.AudienceCustomer)
	if err != nil {
		return "", nil, err
	}
	profile := NewUserProfile(user)
	return token, &profile, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uint) (*UserProfile, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "User not found")
	}
	profile := NewUserProfile(user)
	return &profile, nil
}

// ----- Vendors -----

// RegisterVendor creates an unverified vendor; an admin must verify it
// before consumers can order.
func (s *AuthService) RegisterVendor(ctx context.Context, in RegisterVendorInput) (string, *VendorProfile, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	if in.Username == "" || in.Email == "" || in.BusinessName == "" || in.Address == "" ||
		in.PhoneNumber == "" || in.LicenseNumber == "" || in.Password == "" {
		return "", nil, Validation("All fields required")
	}
	if len(in.Password) < minPasswordLen {
		return "", nil, Validation("Password must be at least 6 characters")
	}

	count, err := s.vendorRepo.CountDuplicates(ctx, in.Username, in.Email, in.LicenseNumber)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, Duplicate("Username, email, or license already exists")
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}
	vendor := &entity.Vendor{
		Username:      in.Username,
		Email:         in.Email,
		Password:      hashed,
		BusinessName:  strings.TrimSpace(in.BusinessName),
		Address:       strings.TrimSpace(in.Address),
		PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
		LicenseNumber: in.LicenseNumber,
		IsVerified:    false,
		IsActive:      true,
	}
	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		if isDuplicateKey(err) {
			return "", nil, Duplicate("Username, email, or license already exists")
		}
		return "", nil, err
	}

	token, err := s.issue(vendor.ID, utils.AudienceVendor)
	if err != nil {
		return "", nil, err
	}
	profile := NewVendorProfile(vendor)
	return token, &profile, nil
}

// LoginVendor accepts username, email or license number as identifier.
func (s *AuthService) LoginVendor(ctx context.Context, identifier, password string) (string, *VendorProfile, error) {
	vendor, err := s.vendorRepo.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(password)); err != nil {
		return "", nil, errInvalidCredentials
	}

	token, err := s.issue(vendor.ID, utils.AudienceVendor)
	if err != nil {
		return "", nil, err
	}
	profile := NewVendorProfile(vendor)
	return token, &profile, nil
}

func (s *AuthService) GetVendor(ctx context.Context, id uint) (*VendorProfile, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Vendor not found")
	}
	profile := NewVendorProfile(vendor)
	return &profile, nil
}

// ----- Admin -----

func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", errInvalidCredentials
	}
	return s.issue(admin.ID, utils.AudienceAdmin)
}
