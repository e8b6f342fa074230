package service

import (
	"context"
	"errors"
	"time"

	"github.com/mo826440-cpu/sistema-kioscos/internal/config"
	"github.com/mo826440-cpu/sistema-kioscos/internal/dto"
	"github.com/mo826440-cpu/sistema-kioscos/internal/model"
	"github.com/mo826440-cpu/sistema-kioscos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")
	ErrUsuarioDuplicado      = errors.New("ya existe un usuario con ese nombre")
	// ErrUsuarioProtegido: user id 1 is the bootstrap admin and cannot be removed.
	ErrUsuarioProtegido = errors.New("el usuario administrador inicial no puede eliminarse")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id int64) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func mapUsuario(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		NombreUsuario: u.NombreUsuario,
		Cargo:         u.Cargo,
		Descripcion:   u.Descripcion,
		Activo:        u.Activo,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByNombre(ctx, req.NombreUsuario)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Activo {
		return nil, ErrCredencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.Contrasena)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUsuario(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.NombreUsuario,
		"cargo":    user.Cargo,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	dup, err := s.repo.ExistsNombre(ctx, req.NombreUsuario, 0)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrUsuarioDuplicado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.Usuario{
		NombreUsuario: req.NombreUsuario,
		Contrasena:    string(hash),
		Cargo:         req.Cargo,
		Descripcion:   req.Descripcion,
		Activo:        true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	resp := mapUsuario(u)
	return &resp, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.UsuarioResponse, 0, len(list))
	for i := range list {
		result = append(result, mapUsuario(&list[i]))
	}
	return result, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id int64, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNoEncontrado
		}
		return nil, err
	}

	if req.NombreUsuario != "" && req.NombreUsuario != u.NombreUsuario {
		dup, err := s.repo.ExistsNombre(ctx, req.NombreUsuario, id)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrUsuarioDuplicado
		}
		u.NombreUsuario = req.NombreUsuario
	}
	if req.Contrasena != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Contrasena = string(hash)
	}
	if req.Cargo != "" {
		u.Cargo = req.Cargo
	}
	if req.Descripcion != nil {
		u.Descripcion = req.Descripcion
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	resp := mapUsuario(u)
	return &resp, nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id int64) error {
	if id == 1 {
		return ErrUsuarioProtegido
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNoEncontrado
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
