package service

import (
	"context"
	"errors"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UsuarioService covers the user-administration surface: listing and the
// targeted update operations. Registration and login live in AuthService.
type UsuarioService interface {
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error)
	ActualizarStatus(ctx context.Context, id uint, status string) error
	ActualizarPassword(ctx context.Context, id uint, password string) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("user list failed")
		return nil, apierror.Internal()
	}
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		resp[i] = toUsuarioResponse(&u)
	}
	return resp, nil
}

func (s *usuarioService) Actualizar(ctx context.Context, id uint, req dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("User not found")
		}
		return nil, apierror.Internal()
	}
	if req.Hierarchy != nil {
		user.Hierarchy = *req.Hierarchy
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.DNI != nil {
		user.DNI = req.DNI
	}
	if req.Telefono != nil {
		user.Telefono = req.Telefono
	}
	if req.Correo != nil {
		user.Correo = req.Correo
	}
	if err := s.repo.Update(ctx, user); err != nil {
		log.Error().Err(err).Uint("user_id", id).Msg("user update failed")
		return nil, apierror.Internal()
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) ActualizarStatus(ctx context.Context, id uint, status string) error {
	rows, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Uint("user_id", id).Msg("user status update failed")
		return apierror.Internal()
	}
	if rows == 0 {
		return apierror.NotFound("User not found")
	}
	return nil
}

func (s *usuarioService) ActualizarPassword(ctx context.Context, id uint, password string) error {
	if len(password) < 6 {
		return apierror.Validation("Password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return apierror.Internal()
	}
	rows, err := s.repo.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		log.Error().Err(err).Uint("user_id", id).Msg("password update failed")
		return apierror.Internal()
	}
	if rows == 0 {
		return apierror.NotFound("User not found")
	}
	return nil
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		UserID:      u.ID,
		Hierarchy:   u.Hierarchy,
		Username:    u.Username,
		Nombre:      u.Nombre,
		DNI:         u.DNI,
		Telefono:    u.Telefono,
		Correo:      u.Correo,
		Status:      u.Status,
		FechaStatus: u.FechaStatus.Format("2006-01-02 15:04:05"),
	}
}
