package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"voyagebj-service/internal/domain/entity"
	"voyagebj-service/internal/domain/repository"
	"voyagebj-service/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TravelerSignup is the registration form of a traveler
type TravelerSignup struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	NPI       string `json:"npi" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	AvatarURL string `json:"avatarUrl"`
}

func (f *TravelerSignup) trim() {
	trimFields(&f.Name, &f.Phone, &f.NPI, &f.Email, &f.AvatarURL)
}

// CompanySignup is the registration form of a transport company
type CompanySignup struct {
	CompanyName  string `json:"companyName" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	NPI          string `json:"npi" validate:"required"`
	IFU          string `json:"ifu" validate:"required"`
	RCCM         string `json:"rccm" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
	WhatsApp     string `json:"whatsapp" validate:"required"`
	Location     string `json:"location" validate:"required"`
	AnattURL     string `json:"anattUrl" validate:"required"`
	OtherDocsURL string `json:"otherDocsUrl"`
	AvatarURL    string `json:"avatarUrl"`
	BannerURL    string `json:"bannerUrl"`
	Description  string `json:"description"`
}

func (f *CompanySignup) trim() {
	trimFields(&f.CompanyName, &f.Name, &f.Phone, &f.NPI, &f.IFU, &f.RCCM, &f.Email,
		&f.WhatsApp, &f.Location, &f.AnattURL, &f.OtherDocsURL, &f.AvatarURL, &f.BannerURL)
}

// AuthService registers accounts and manages the current session
type AuthService struct {
	accounts      repository.AccountRepository
	session       repository.SessionRepository
	logger        logger.Logger
	adminPassword string
	newID         func() string
}

// NewAuthService creates a new auth service
func NewAuthService(
	accounts repository.AccountRepository,
	session repository.SessionRepository,
	adminPassword string,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		accounts:      accounts,
		session:       session,
		logger:        logger,
		adminPassword: adminPassword,
		newID:         uuid.NewString,
	}
}

// SignupTraveler creates a traveler account and signs it in
func (s *AuthService) SignupTraveler(ctx context.Context, form TravelerSignup) (*entity.Account, error) {
	form.trim()
	if err := validateStruct(form); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, form.Email, entity.RoleClient); err != nil {
		return nil, err
	}

	hash, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	account := entity.Account{
		ID:           s.newID(),
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
		Phone:        form.Phone,
		NPI:          form.NPI,
		Role:         entity.RoleClient,
		AvatarURL:    defaultAvatar(form.AvatarURL, form.Name),
	}

	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save traveler: %w", err)
	}
	if err := s.session.Set(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.logger.Info("Traveler registered", "accountId", account.ID)
	return &account, nil
}

// SignupCompany registers a company awaiting moderation. No session is opened.
func (s *AuthService) SignupCompany(ctx context.Context, form CompanySignup) (*entity.Account, error) {
	form.trim()
	if err := validateStruct(form); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, form.Email, entity.RoleCompany); err != nil {
		return nil, err
	}

	hash, err := hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	account := entity.Account{
		ID:           s.newID(),
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
		Phone:        form.Phone,
		NPI:          form.NPI,
		Role:         entity.RoleCompany,
		AvatarURL:    defaultAvatar(form.AvatarURL, form.CompanyName),
		CompanyName:  form.CompanyName,
		BannerURL:    defaultBanner(form.BannerURL, form.CompanyName),
		IFU:          form.IFU,
		RCCM:         form.RCCM,
		AnattURL:     form.AnattURL,
		OtherDocsURL: form.OtherDocsURL,
		WhatsApp:     form.WhatsApp,
		Address:      form.Location,
		Description:  form.Description,
		Status:       entity.CompanyPending,
	}

	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	if err := s.session.Clear(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Company registered, awaiting approval", "accountId", account.ID)
	return &account, nil
}

// LoginTraveler signs a traveler in
func (s *AuthService) LoginTraveler(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := s.authenticate(ctx, email, password, entity.RoleClient)
	if err != nil {
		return nil, err
	}
	return account, s.open(ctx, *account)
}

// LoginCompany signs a company in. Only approved companies may sign in.
func (s *AuthService) LoginCompany(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := s.authenticate(ctx, email, password, entity.RoleCompany)
	if err != nil {
		return nil, err
	}

	switch account.Status {
	case entity.CompanyApproved:
	case entity.CompanyRejected:
		return nil, entity.ErrAccountRejected
	default:
		return nil, entity.ErrAccountPending
	}

	return account, s.open(ctx, *account)
}

// LoginAdmin signs the administrator in with the shared password
func (s *AuthService) LoginAdmin(ctx context.Context, password string) (*entity.Account, error) {
	if s.adminPassword == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return nil, entity.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByID(ctx, entity.AdminID)
	if errors.Is(err, entity.ErrNotFound) {
		account = &entity.Account{
			ID:    entity.AdminID,
			Name:  "Administrateur",
			Email: "admin@voyagebj.com",
			Role:  entity.RoleAdmin,
		}
	} else if err != nil {
		return nil, err
	}

	return account, s.open(ctx, *account)
}

// Logout closes the current session
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// CurrentAccount returns the signed-in account, read from the directory so it
// reflects the latest profile. The stored session record is used when the
// account is no longer in the directory. Nil means nobody is signed in.
func (s *AuthService) CurrentAccount(ctx context.Context) (*entity.Account, error) {
	stored, err := s.session.Get(ctx)
	if err != nil || stored == nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, stored.ID)
	if errors.Is(err, entity.ErrNotFound) {
		return stored, nil
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateProfile saves account changes. The session mirror follows when the
// account is signed in. Role, status and password hash cannot be changed here.
func (s *AuthService) UpdateProfile(ctx context.Context, account entity.Account) (*entity.Account, error) {
	existing, err := s.accounts.FindByID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	account.Role = existing.Role
	account.Status = existing.Status
	account.PasswordHash = existing.PasswordHash

	if err := s.accounts.Upsert(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &account, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string, role entity.Role) (*entity.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, email, role)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// Seeded accounts carry no hash and accept any password.
	if account.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
			return nil, entity.ErrInvalidCredentials
		}
	}
	return account, nil
}

func (s *AuthService) open(ctx context.Context, account entity.Account) error {
	if err := s.session.Set(ctx, account); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	s.logger.Info("Signed in", "accountId", account.ID, "role", account.Role)
	return nil
}

func (s *AuthService) ensureEmailFree(ctx context.Context, email string, role entity.Role) error {
	_, err := s.accounts.FindByEmail(ctx, email, role)
	if err == nil {
		return entity.ErrEmailTaken
	}
	if errors.Is(err, entity.ErrNotFound) {
		return nil
	}
	return err
}

// bcrypt rejects longer passwords
const maxPasswordBytes = 72

func hashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", entity.NewValidationError("password", "must be at most 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func defaultAvatar(avatarURL, name string) string {
	if avatarURL != "" {
		return avatarURL
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}

func defaultBanner(bannerURL, companyName string) string {
	if bannerURL != "" {
		return bannerURL
	}
	return "https://picsum.photos/seed/" + url.PathEscape(companyName) + "/800/300"
}

func trimFields(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
