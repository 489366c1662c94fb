package service_test

import (
	"context"
	"testing"

	"floristeria/internal/config"
	"floristeria/internal/dto"
	"floristeria/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (service.AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "secreto-de-prueba",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return service.NewAuthService(repo, cfg), repo
}

func crearUsuarioRequest() dto.CrearUsuarioRequest {
	telefono := "3001234567"
	return dto.CrearUsuarioRequest{
		Username:  "mgarcia",
		Documento: "1098765432",
		Nombre:    "Maria",
		Apellido:  "Garcia",
		Password:  "clave-segura-1",
		Rol:       "staff",
		Perfil:    dto.PerfilInput{Telefono: &telefono},
	}
}

func TestCrearUsuario_GuardaUsuarioYPerfilJuntos(t *testing.T) {
	svc, repo := newAuthFixture()

	resp, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)

	id := uuid.MustParse(resp.ID)
	assert.Contains(t, repo.usuarios, id)
	require.Contains(t, repo.perfiles, id)
	assert.Equal(t, id, repo.perfiles[id].UsuarioID)
	require.NotNil(t, resp.Perfil)
	assert.Equal(t, "3001234567", *resp.Perfil.Telefono)

	// The stored hash must not be the plaintext password.
	assert.NotEqual(t, "clave-segura-1", repo.usuarios[id].PasswordHash)
}

func TestLogin_CredencialesValidas(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "mgarcia", Password: "clave-segura-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "staff", resp.User.Rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "mgarcia", Password: "otra-clave"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, _ := newAuthFixture()

	creado, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)
	require.NoError(t, svc.DesactivarUsuario(context.Background(), uuid.MustParse(creado.ID)))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "mgarcia", Password: "clave-segura-1"})
	assert.Error(t, err)
}

func TestRefresh_EmiteNuevosTokens(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "mgarcia", Password: "clave-segura-1"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "mgarcia", refreshed.User.Username)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestActualizarUsuario_CambiaRolYPerfil(t *testing.T) {
	svc, repo := newAuthFixture()

	creado, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)
	id := uuid.MustParse(creado.ID)

	direccion := "Carrera 7 #1-10"
	resp, err := svc.ActualizarUsuario(context.Background(), id, dto.ActualizarUsuarioRequest{
		Rol:    "superadmin",
		Perfil: &dto.PerfilInput{Direccion: &direccion},
	})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.Rol)
	require.NotNil(t, resp.Perfil)
	assert.Equal(t, direccion, *resp.Perfil.Direccion)
	assert.Equal(t, direccion, *repo.perfiles[id].Direccion)
}

func TestListarUsuarios_FiltraInactivos(t *testing.T) {
	svc, _ := newAuthFixture()

	creado, err := svc.CrearUsuario(context.Background(), crearUsuarioRequest())
	require.NoError(t, err)

	otro := crearUsuarioRequest()
	otro.Username = "jperez"
	otro.Documento = "1012345678"
	_, err = svc.CrearUsuario(context.Background(), otro)
	require.NoError(t, err)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), uuid.MustParse(creado.ID)))

	activos, err := svc.ListarUsuarios(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	todos, err := svc.ListarUsuarios(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
