package service

import (
	"context"
	"testing"

	"magictravel/internal/config"
	"magictravel/internal/dto"
	"magictravel/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newFakeUsuarios() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errFakeNotFound
	}
	return u, nil
}

func (r *fakeUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeUsuarioRepo) List(_ context.Context, incluirInactivos bool) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if !incluirInactivos && !u.Activo {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "secreto-de-pruebas",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, username, password, rol string, activo bool) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.Usuario{
		ID:           uuid.New(),
		Username:     username,
		Nombre:       "Usuario de Prueba",
		PasswordHash: string(hash),
		Rol:          rol,
		Activo:       activo,
	}
	repo.usuarios[u.ID] = u
	return u
}

func TestLogin(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())
	seedUsuario(t, repo, "vendedor@magictravel.com", "clave123", "vendedor", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor@magictravel.com",
		Password: "clave123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "vendedor", resp.User.Rol)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())
	seedUsuario(t, repo, "vendedor@magictravel.com", "clave123", "vendedor", true)
	seedUsuario(t, repo, "inactivo@magictravel.com", "clave123", "vendedor", false)

	casos := []struct {
		nombre   string
		username string
		password string
	}{
		{"usuario inexistente", "nadie@magictravel.com", "clave123"},
		{"password incorrecta", "vendedor@magictravel.com", "otra"},
		{"usuario inactivo", "inactivo@magictravel.com", "clave123"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := svc.Login(context.Background(), dto.LoginRequest{Username: c.username, Password: c.password})
			assert.ErrorIs(t, err, ErrEntradaInvalida)
		})
	}
}

func TestRefresh(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())
	seedUsuario(t, repo, "vendedor@magictravel.com", "clave123", "vendedor", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor@magictravel.com",
		Password: "clave123",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, login.User.ID, renovado.User.ID)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc := NewAuthService(newFakeUsuarios(), testAuthConfig())

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.ErrorIs(t, err, ErrEntradaInvalida)
}

func TestRefresh_UsuarioDesactivado(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())
	user := seedUsuario(t, repo, "vendedor@magictravel.com", "clave123", "vendedor", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor@magictravel.com",
		Password: "clave123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), user.ID))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestCrearYListarUsuarios(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "supervisor@magictravel.com",
		Nombre:   "Supervisora",
		Password: "clave123",
		Rol:      "supervisor",
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo)

	// la password nunca viaja en claro
	guardado, err := repo.FindByUsername(context.Background(), "supervisor@magictravel.com")
	require.NoError(t, err)
	assert.NotEqual(t, "clave123", guardado.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("clave123")))

	require.NoError(t, svc.DesactivarUsuario(context.Background(), guardado.ID))

	activos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, activos)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 1)
}

func TestActualizarUsuario_CambiaRolYPassword(t *testing.T) {
	repo := newFakeUsuarios()
	svc := NewAuthService(repo, testAuthConfig())
	user := seedUsuario(t, repo, "vendedor@magictravel.com", "clave123", "vendedor", true)

	nuevoRol := "supervisor"
	nuevaClave := "clave456"
	resp, err := svc.ActualizarUsuario(context.Background(), user.ID, dto.ActualizarUsuarioRequest{
		Rol:      &nuevoRol,
		Password: &nuevaClave,
	})
	require.NoError(t, err)
	assert.Equal(t, "supervisor", resp.Rol)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Username: "vendedor@magictravel.com",
		Password: "clave456",
	})
	assert.NoError(t, err)
}
