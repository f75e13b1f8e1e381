package notificacionapimodels

import (
	"time"

	apimodels "grc-maturity-backend/models/api"
	dbmodels "grc-maturity-backend/models/db"
)

type NotificacionView struct {
	ID             string `json:"id"`
	Tipo           string `json:"tipo"`
	Titulo         string `json:"titulo"`
	Mensaje        string `json:"mensaje"`
	Url            string `json:"url,omitempty"`
	Metadata       string `json:"metadata,omitempty"`
	RequiereAccion bool   `json:"requiere_accion"`
	Leida          bool   `json:"leida"`
	LeidaAt        string `json:"leida_at,omitempty"`
	CreadaAt       string `json:"creada_at"`
}

func NotificacionConvert(rec dbmodels.Notificacion) NotificacionView {
	view := NotificacionView{
		ID:             rec.ID,
		Tipo:           string(rec.Tipo),
		Titulo:         rec.Titulo,
		Mensaje:        rec.Mensaje,
		Url:            rec.Url,
		Metadata:       rec.Metadata,
		RequiereAccion: rec.RequiereAccion,
		Leida:          rec.Leida,
		CreadaAt:       rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.LeidaAt != nil {
		view.LeidaAt = rec.LeidaAt.Format(time.RFC3339)
	}
	return view
}

type NotificacionFilter struct {
	apimodels.Pagination
	SoloNoLeidas bool `json:"solo_no_leidas"`
}
