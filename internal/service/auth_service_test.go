package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/enzofs112/roxfarma-sistema-gestion/internal/config"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/dto"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/model"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/repository"
	"github.com/enzofs112/roxfarma-sistema-gestion/internal/service"
)

type stubUsuarioRepo struct {
	usuarios map[int64]*model.Usuario
	seq      int64
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int64]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == 0 {
		r.seq++
		u.ID = r.seq
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int64) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func authTestConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, username, password string, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		Nombre:       "Cajero de Prueba",
		Username:     username,
		PasswordHash: string(hash),
		Rol:          model.RolTrabajador,
		Activo:       activo,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLogin_Exitoso(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "cajero1", "clave123", true)
	svc := service.NewAuthService(repo, authTestConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cajero1", Contrasena: "clave123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "cajero1", resp.Usuario.Usuario)

	// The token must verify with the configured secret and carry the claims
	// the auth middleware reads.
	tok, err := jwt.Parse(resp.Token, func(_ *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "cajero1", claims["username"])
	assert.Equal(t, model.RolTrabajador, claims["rol"])
}

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "cajero1", "clave123", true)
	svc := service.NewAuthService(repo, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cajero1", Contrasena: "otra"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Contrasena: "clave123"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "cajero1", "clave123", false)
	svc := service.NewAuthService(repo, authTestConfig())

	// Same error as a bad password — login must not reveal the account state
	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cajero1", Contrasena: "clave123"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestCrearUsuario_HashYActivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, authTestConfig())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Nombre:     "Ana Torres",
		Usuario:    "atorres",
		Contrasena: "clave123",
		Rol:        model.RolAdministrador,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)

	stored := repo.usuarios[resp.ID]
	assert.NotEqual(t, "clave123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave123")))
}

func TestDesactivarUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "cajero1", "clave123", true)
	svc := service.NewAuthService(repo, authTestConfig())

	require.NoError(t, svc.DesactivarUsuario(context.Background(), u.ID))
	assert.False(t, repo.usuarios[u.ID].Activo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cajero1", Contrasena: "clave123"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestActualizarUsuario_CambioParcial(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "cajero1", "clave123", true)
	svc := service.NewAuthService(repo, authTestConfig())

	resp, err := svc.ActualizarUsuario(context.Background(), u.ID, dto.ActualizarUsuarioRequest{
		Rol: model.RolAdministrador,
	})
	require.NoError(t, err)

	// Untouched fields survive a partial update
	assert.Equal(t, model.RolAdministrador, resp.Rol)
	assert.Equal(t, "Cajero de Prueba", resp.Nombre)
	assert.True(t, resp.Activo)
}

func TestActualizarUsuario_Inexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := service.NewAuthService(repo, authTestConfig())

	_, err := svc.ActualizarUsuario(context.Background(), 42, dto.ActualizarUsuarioRequest{Nombre: "X"})

	var notFound *service.NoEncontradoError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Usuario", notFound.Recurso)
}
