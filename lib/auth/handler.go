package authhandler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"grc-maturity-backend/config"
	"grc-maturity-backend/db"
	usuariostore "grc-maturity-backend/lib/usuario/store"
	authutils "grc-maturity-backend/lib/utils/auth-utils"
	authapimodels "grc-maturity-backend/models/api/auth"
	dbmodels "grc-maturity-backend/models/db"
)

type Provider interface {
	Login(data authapimodels.LoginData) (response authapimodels.TokenView, err error)
	Refresh(refreshToken string) (response authapimodels.TokenView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usuariostore.NewInstance(db.DB),
	}
}

type impl struct {
	store usuariostore.Provider
}

func (i impl) Login(data authapimodels.LoginData) (response authapimodels.TokenView, err error) {
	logger := log.WithField("email", data.Email)
	if err := data.Validate(); err != nil {
		return authapimodels.TokenView{}, err
	}
	usuario, err := i.store.GetByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("Error buscando el usuario por correo")
		return authapimodels.TokenView{}, err
	}
	if usuario == nil {
		logger.Debug("Usuario no encontrado")
		return authapimodels.TokenView{}, errors.New("credenciales inválidas")
	}
	if authutils.GetMD5Hash(data.Password) != usuario.PasswordHash {
		logger.Debug("Contraseña incorrecta")
		return authapimodels.TokenView{}, errors.New("credenciales inválidas")
	}
	return i.emitirTokens(*usuario)
}

// Refresh emite un nuevo par de tokens a partir del refresh token vigente
func (i impl) Refresh(refreshToken string) (response authapimodels.TokenView, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.TokenView{}, errors.New("refresh token inválido o expirado")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.TokenView{}, errors.New("refresh token inválido o expirado")
	}
	usuarioID, _ := claims["sub"].(string)
	usuario, err := i.store.GetByID(usuarioID)
	if err != nil {
		return authapimodels.TokenView{}, err
	}
	if usuario == nil {
		return authapimodels.TokenView{}, errors.New("usuario no encontrado")
	}
	return i.emitirTokens(*usuario)
}

func (i impl) emitirTokens(usuario dbmodels.Usuario) (response authapimodels.TokenView, err error) {
	logger := log.WithField("email", usuario.Email)
	empresaID := ""
	if usuario.EmpresaID != nil {
		empresaID = *usuario.EmpresaID
	}
	accessToken, err := authutils.GetToken(usuario.ID, usuario.NombreCompleto, empresaID, usuario.Rol)
	if err != nil {
		logger.WithError(err).Error("Error generando el JWT")
		return authapimodels.TokenView{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(usuario.ID, usuario.NombreCompleto)
	if err != nil {
		logger.WithError(err).Error("Error generando el refresh token")
		return authapimodels.TokenView{}, err
	}
	return authapimodels.TokenView{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
