package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tastings-with-tay/config"
	"tastings-with-tay/models"
	"tastings-with-tay/policy"
	"tastings-with-tay/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", models.ErrUnauthorized)

// Claims is the payload of a session token. The registered ID (jti) is the
// session row id.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

type AuthService interface {
	Register(req models.RegisterRequest, userAgent string) (*models.AuthResponse, error)
	Login(req models.LoginRequest, userAgent string) (*models.AuthResponse, error)
	SignInWithGoogle(identity GoogleIdentity, userAgent string) (*models.AuthResponse, error)
	Authenticate(token string) (*policy.Principal, error)
	GetSession(principal *policy.Principal) (*models.SessionResponse, error)
	Logout(principal *policy.Principal) error
	GetUsers(params models.ListParams) (*models.Page[models.User], error)
	UpdateRole(id uint, req models.UpdateRoleRequest) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	secret      []byte
	ttl         time.Duration
	adminEmails map[string]bool
	now         func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, cfg *config.Config) AuthService {
	admins := make(map[string]bool, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = true
		}
	}
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		secret:      []byte(cfg.AuthSecret),
		ttl:         cfg.SessionTTL,
		adminEmails: admins,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(req models.RegisterRequest, userAgent string) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("email %w", models.ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hash := string(hashedPassword)

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Password:     &hash,
		AuthProvider: models.ProviderCredentials,
		Role:         s.roleFor(email, models.RoleUser),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.issueSession(user, userAgent)
}

func (s *authService) Login(req models.LoginRequest, userAgent string) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	// Google-only accounts have no password
	if user.Password == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	if err := s.promote(user); err != nil {
		return nil, err
	}
	return s.issueSession(user, userAgent)
}

// SignInWithGoogle finds the user by Google subject, then by email (linking
// the account), and creates one otherwise.
func (s *authService) SignInWithGoogle(identity GoogleIdentity, userAgent string) (*models.AuthResponse, error) {
	if identity.Subject == "" || identity.Email == "" {
		return nil, fmt.Errorf("%w: google identity is incomplete", models.ErrUnauthorized)
	}
	email := normalizeEmail(identity.Email)
	sub := identity.Subject

	user, err := s.userRepo.GetByGoogleSub(sub)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.GetByEmail(email)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = &models.User{
				Name:         identity.Name,
				Email:        email,
				Image:        identity.Picture,
				GoogleSub:    &sub,
				AuthProvider: models.ProviderGoogle,
				Role:         s.roleFor(email, models.RoleUser),
			}
			if err := s.userRepo.Create(user); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		default:
			fields := map[string]interface{}{"google_sub": sub}
			if user.Image == "" && identity.Picture != "" {
				fields["image"] = identity.Picture
				user.Image = identity.Picture
			}
			if err := s.userRepo.Update(user.ID, fields); err != nil {
				return nil, err
			}
			user.GoogleSub = &sub
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.promote(user); err != nil {
		return nil, err
	}
	return s.issueSession(user, userAgent)
}

func (s *authService) roleFor(email string, current models.UserRole) models.UserRole {
	if s.adminEmails[email] {
		return models.RoleAdmin
	}
	return current
}

// promote applies the ADMIN_EMAILS bootstrap list at sign-in.
func (s *authService) promote(user *models.User) error {
	role := s.roleFor(user.Email, user.Role)
	if role == user.Role {
		return nil
	}
	if err := s.userRepo.Update(user.ID, map[string]interface{}{"role": role}); err != nil {
		return err
	}
	user.Role = role
	return nil
}

func (s *authService) issueSession(user *models.User, userAgent string) (*models.AuthResponse, error) {
	now := s.now()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserAgent: userAgent,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     signedToken,
		ExpiresAt: session.ExpiresAt,
		User:      *user,
	}, nil
}

// Authenticate verifies a session token and the session row behind it.
func (s *authService) Authenticate(tokenString string) (*policy.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", models.ErrUnauthorized)
	}
	if claims.ID == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("%w: token has no session", models.ErrUnauthorized)
	}

	session, err := s.sessionRepo.GetByID(claims.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: unknown session", models.ErrUnauthorized)
	}
	if err != nil {
		return nil, err
	}
	if session.UserID != claims.UserID || !session.Active(s.now()) {
		return nil, fmt.Errorf("%w: session expired or revoked", models.ErrUnauthorized)
	}

	// The stored role wins so role changes reach live sessions.
	role := models.UserRole(claims.Role)
	if session.User != nil {
		role = session.User.Role
	}

	return &policy.Principal{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      role,
		SessionID: session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) GetSession(principal *policy.Principal) (*models.SessionResponse, error) {
	user, err := found(s.userRepo.GetByID(principal.UserID))
	if err != nil {
		return nil, err
	}
	return &models.SessionResponse{
		User:      *user,
		Role:      principal.Role,
		ExpiresAt: principal.ExpiresAt,
	}, nil
}

func (s *authService) Logout(principal *policy.Principal) error {
	return s.sessionRepo.Revoke(principal.SessionID, s.now())
}

func (s *authService) GetUsers(params models.ListParams) (*models.Page[models.User], error) {
	params.Normalize()
	users, total, err := s.userRepo.GetList(params)
	if err != nil {
		return nil, err
	}
	return newPage(users, total, params), nil
}

// UpdateRole changes the stored role. Open sessions pick it up on their next
// request.
func (s *authService) UpdateRole(id uint, req models.UpdateRoleRequest) (*models.User, error) {
	if _, err := found(s.userRepo.GetByID(id)); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(id, map[string]interface{}{"role": req.Role}); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(id)
}
