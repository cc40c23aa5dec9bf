package service

import (
	"fmt"
	"time"

	"github.com/blog-cms-api/internal/config"
	"github.com/blog-cms-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// authService is the concrete implementation of AuthService. The credential
// store is a map seeded with the single admin account; it sits behind the
// interface so a real backend can replace it without touching handlers.
type authService struct {
	users  map[string]models.User
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// newAuthService creates an AuthService seeded with the admin account
func newAuthService(cfg *config.AuthConfig, log zerolog.Logger) *authService {
	admin := models.User{ID: "1", Username: "admin", Password: "admin"}

	return &authService{
		users:  map[string]models.User{admin.Username: admin},
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		log:    log.With().Str("service", "auth").Logger(),
		now:    time.Now,
	}
}

// ValidateUser checks the credential pair against the seeded account and
// returns the user without its password on a match.
func (s *authService) ValidateUser(username, password string) (models.AuthUser, bool) {
	user, ok := s.users[username]
	if !ok || user.Password != password {
		return models.AuthUser{}, false
	}
	return models.AuthUser{ID: user.ID, Username: user.Username}, true
}

// Login mints a signed bearer token for an already-validated user. The
// payload carries username and sub plus issued-at and expiry claims.
func (s *authService) Login(user models.AuthUser) (models.LoginResult, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"sub":      user.ID,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	s.log.Debug().Str("username", user.Username).Msg("token issued")
	return models.LoginResult{AccessToken: token, User: user}, nil
}

// ValidateToken verifies signature and expiry and returns the decoded
// claims. Malformed, expired and badly signed tokens all collapse into the
// same negative answer.
func (s *authService) ValidateToken(token string) (map[string]interface{}, bool) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}
	return claims, true
}
