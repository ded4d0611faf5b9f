package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/config"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Login validates credentials against the stored bcrypt hash and issues an
// access token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("Invalid username or password")
		}
		log.Error().Err(err).Msg("login lookup failed")
		return nil, apierror.Internal()
	}
	if user.Status != model.StatusActive {
		return nil, apierror.Unauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Invalid username or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		return nil, apierror.Internal()
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		User: dto.LoginUser{
			ID:        user.ID,
			Username:  user.Username,
			Hierarchy: user.Hierarchy,
			Nombre:    user.Nombre,
			DNI:       user.DNI,
			Telefono:  user.Telefono,
			Correo:    user.Correo,
		},
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
	}, nil
}

// Register creates a user with a bcrypt-hashed password. Optional fields,
// when present, must not be blank after trimming.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	for campo, valor := range map[string]*string{"DNI": req.DNI, "Telefono": req.Telefono, "Correo": req.Correo} {
		if valor != nil && strings.TrimSpace(*valor) == "" {
			return nil, apierror.Validation(campo + " cannot be empty if provided.")
		}
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Nombre) == "" {
		return nil, apierror.Validation("Hierarchy, Username, Nombre, and Password are required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apierror.Internal()
	}
	user := &model.Usuario{
		Hierarchy:    req.Hierarchy,
		Username:     req.Username,
		Nombre:       req.Nombre,
		DNI:          req.DNI,
		Telefono:     req.Telefono,
		Correo:       req.Correo,
		PasswordHash: string(hash),
		Status:       model.StatusActive,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("Username already exists")
		}
		log.Error().Err(err).Msg("user insert failed")
		return nil, apierror.Internal()
	}
	return &dto.RegisterResponse{Message: "User registered successfully", UserID: user.ID}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"username":  user.Username,
		"hierarchy": user.Hierarchy,
		"exp":       time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
