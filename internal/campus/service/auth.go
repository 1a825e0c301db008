package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/catalog"
	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/idx"
	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// RegisterInput carries the registration form. Role specific fields are
// only checked for the matching role.
type RegisterInput struct {
	Username   string `json:"username" validate:"notblank,max=64"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	Role       string `json:"role" validate:"required,oneof=student faculty admin"`
	Department string `json:"department" validate:"max=12"`

	StudentID   string `json:"studentId" validate:"required_if=Role student,max=64"`
	YearOfStudy int    `json:"yearOfStudy" validate:"required_if=Role student,gte=0,lte=6"`

	FacultyID string `json:"facultyId" validate:"required_if=Role faculty,max=64"`
	Position  string `json:"position" validate:"required_if=Role faculty,max=128"`

	AdminID    string `json:"adminId" validate:"required_if=Role admin,max=64"`
	AdminLevel string `json:"adminLevel" validate:"required_if=Role admin"`
}

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      domain.User
}

type AuthService struct {
	Store    store.Store
	Catalog  *catalog.Catalog
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Operator is the principal local tooling acts as. It has college-wide
// rights, including creating admins.
var Operator = domain.Principal{Role: domain.RoleAdmin, AdminLevel: domain.AdminLevelCollege}

// Register validates in, then creates the user and its role profile in one
// transaction. Admin accounts can only be created by a college admin; caller
// is the zero Principal for anonymous sign ups.
func (s *AuthService) Register(ctx context.Context, caller domain.Principal, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	in.AdminLevel = strings.ToLower(strings.TrimSpace(in.AdminLevel))
	if err := validateStruct(in); err != nil {
		return domain.User{}, err
	}

	role, _ := domain.ParseRole(in.Role)
	user := domain.User{
		ID:       idx.New().String(),
		Username: in.Username,
		Email:    in.Email,
		Role:     role,
	}
	profile := domain.Profile{
		StudentID:   strings.TrimSpace(in.StudentID),
		YearOfStudy: in.YearOfStudy,
		FacultyID:   strings.TrimSpace(in.FacultyID),
		Position:    strings.TrimSpace(in.Position),
		AdminID:     strings.TrimSpace(in.AdminID),
	}

	needsDept := true
	if role == domain.RoleAdmin {
		if !caller.CanCreateAdmins() {
			log.Warn("admin registration refused", slog.String("caller", caller.UserID))
			return domain.User{}, ErrAdminRequired
		}
		level, ok := domain.ParseAdminLevel(in.AdminLevel)
		if !ok {
			return domain.User{}, invalidField("adminLevel", "adminLevel must be one of [department college]")
		}
		profile.AdminLevel = level
		needsDept = level == domain.AdminLevelDepartment
	}
	if strings.TrimSpace(in.Department) == "" {
		if needsDept {
			return domain.User{}, invalidField("department", "Department is required")
		}
	} else {
		dept, err := s.Catalog.Lookup(in.Department)
		if err != nil {
			return domain.User{}, invalidField("department", "Invalid department")
		}
		user.Department = dept.Code
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}
	user.PasswordHash = hash

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUserExists
			}
			return err
		}
		return tx.Users().CreateProfile(ctx, user, profile)
	})
	if err != nil {
		if !errors.Is(err, ErrUserExists) {
			log.Error("failed to register user", slog.Any("error", err))
		}
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
		slog.String("department", user.Department),
	)
	return user, nil
}

// Bootstrap creates the first college admin. It returns
// ErrAlreadyBootstrapped once any admin account exists.
func (s *AuthService) Bootstrap(ctx context.Context, email, username, password string) (domain.User, error) {
	admins, err := s.Store.Users().ListUsers(ctx, store.UserFilter{Role: domain.RoleAdmin})
	if err != nil {
		return domain.User{}, err
	}
	if len(admins) > 0 {
		return domain.User{}, ErrAlreadyBootstrapped
	}
	if strings.TrimSpace(username) == "" {
		username = "Administrator"
	}
	return s.Register(ctx, Operator, RegisterInput{
		Username:   username,
		Email:      email,
		Password:   password,
		Role:       string(domain.RoleAdmin),
		AdminID:    "BOOTSTRAP",
		AdminLevel: string(domain.AdminLevelCollege),
	})
}

// Login checks the credentials and issues an access token. Unknown emails
// and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginResult{}, invalid("Email and password are required")
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return LoginResult{}, ErrInvalidCredentials
	}

	profile, err := s.Store.Users().GetProfile(ctx, user)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, err
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(
		user.ID, string(user.Role), user.Department, string(profile.AdminLevel), user.Username,
		user.Role.Scopes(), ttl, s.Issuer, time.Now(),
	)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return LoginResult{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return LoginResult{Token: token, ExpiresIn: ttl, User: user}, nil
}

// Me returns the caller and their role profile.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, domain.Profile{}, ErrUserNotFound
		}
		return domain.User{}, domain.Profile{}, err
	}
	profile, err := s.Store.Users().GetProfile(ctx, user)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.Profile{}, err
	}
	return user, profile, nil
}

func (s *AuthService) ListUsers(ctx context.Context, department, role string) ([]domain.User, error) {
	var f store.UserFilter
	if department != "" {
		dept, err := s.Catalog.Lookup(department)
		if err != nil {
			return nil, invalidField("department", "Invalid department")
		}
		f.Department = dept.Code
	}
	if role != "" {
		r, ok := domain.ParseRole(role)
		if !ok {
			return nil, invalidField("role", "role must be one of [student faculty admin]")
		}
		f.Role = r
	}
	return s.Store.Users().ListUsers(ctx, f)
}

// PrincipalFromClaims maps verified token claims onto a Principal.
func PrincipalFromClaims(c jwtx.Claims) domain.Principal {
	role, _ := domain.ParseRole(c.Role)
	level, _ := domain.ParseAdminLevel(c.AdminLevel)
	return domain.Principal{
		UserID:     c.Subject,
		Role:       role,
		Department: c.Department,
		AdminLevel: level,
	}
}
