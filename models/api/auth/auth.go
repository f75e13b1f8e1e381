package authapimodels

import "github.com/pkg/errors"

type LoginData struct {
	Email    string `json:"email"`    // correo del usuario
	Password string `json:"password"` // contraseña
}

func (l LoginData) Validate() error {
	if l.Email == "" {
		return errors.New("falta el correo electrónico")
	}
	if l.Password == "" {
		return errors.New("falta la contraseña")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}
