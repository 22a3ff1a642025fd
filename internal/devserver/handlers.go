package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type pushTokenRequest struct {
	Token      string `json:"token" validate:"required"`
	DeviceID   string `json:"deviceId"`
	Platform   string `json:"platform"`
	AppVersion string `json:"appVersion"`
	AccountID  string `json:"accountId"`
}

// SeedAccount registers an account the stub will accept logins for and
// returns its generated id.
func (s *Server) SeedAccount(name, email, password, role string) (string, error) {
	cost := s.cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash seed password")
	}

	acc := &account{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        strings.ToLower(email),
		Role:         role,
		PasswordHash: string(hash),
	}

	s.mu.Lock()
	s.byEmail[acc.Email] = acc
	s.byID[acc.ID] = acc
	s.mu.Unlock()

	return acc.ID, nil
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid login input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	s.mu.RLock()
	acc, ok := s.byEmail[strings.ToLower(req.Email)]
	s.mu.RUnlock()
	if !ok || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid email or password"})
	}

	token, err := s.issueToken(acc)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token":   token,
		"account": accountPayload(acc),
	})
}

func (s *Server) me(c echo.Context) error {
	acc, err := s.authenticate(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or missing bearer token"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": accountPayload(acc),
	})
}

func (s *Server) pushToken(c echo.Context) error {
	acc, err := s.authenticate(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid or missing bearer token"})
	}

	var req pushTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid push-token input"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "push token is required"})
	}

	s.mu.Lock()
	s.pushTokens[acc.ID] = pushRegistration{
		Token:      req.Token,
		DeviceID:   req.DeviceID,
		Platform:   req.Platform,
		AppVersion: req.AppVersion,
	}
	s.mu.Unlock()

	return c.JSON(http.StatusOK, echo.Map{"message": "push token synced"})
}

// issueToken creates an HS256 token carrying the identity claims the client
// decodes: accountId and the standard sub.
func (s *Server) issueToken(acc *account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"accountId": acc.ID,
		"sub":       acc.ID,
		"role":      acc.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(s.tokenTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))

	return signed, errors.Wrap(err, "failed to sign token")
}

// authenticate validates the bearer token and resolves its account.
func (s *Server) authenticate(c echo.Context) (*account, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(err, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims shape")
	}
	id, _ := claims["accountId"].(string)

	s.mu.RLock()
	acc, found := s.byID[id]
	s.mu.RUnlock()
	if !found {
		return nil, errors.New("unknown account")
	}

	return acc, nil
}

func accountPayload(acc *account) echo.Map {
	return echo.Map{
		"_id":   acc.ID,
		"name":  acc.Name,
		"email": acc.Email,
		"role":  acc.Role,
	}
}
