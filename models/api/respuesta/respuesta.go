package respuestaapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"grc-maturity-backend/models"
	dbmodels "grc-maturity-backend/models/db"
)

type RespuestaData struct {
	AsignacionID           string                 `json:"asignacion_id"`           // asignación a la que responde
	PreguntaID             string                 `json:"pregunta_id"`             // pregunta respondida
	Respuesta              models.OpcionRespuesta `json:"respuesta"`               // SI_CUMPLE | CUMPLE_PARCIAL | NO_CUMPLE | NO_APLICA
	Justificacion          string                 `json:"justificacion"`           // obligatoria al enviar (mínimo 10 caracteres)
	ComentariosAdicionales string                 `json:"comentarios_adicionales"` // comentarios libres
	Enviar                 bool                   `json:"enviar"`                  // true envía, false guarda borrador
}

func (r RespuestaData) Validate() error {
	if r.AsignacionID == "" {
		return errors.New("falta la referencia a la asignación")
	}
	if r.PreguntaID == "" {
		return errors.New("falta la referencia a la pregunta")
	}
	if err := r.Respuesta.Validate(); err != nil {
		return err
	}
	return nil
}

// JustificacionValida exige el mínimo de caracteres sin contar espacios extremos
func JustificacionValida(justificacion string) bool {
	return len(strings.TrimSpace(justificacion)) >= models.JustificacionMinLen
}

type RespuestaView struct {
	ID              string          `json:"id"`
	AsignacionID    string          `json:"asignacion_id"`
	PreguntaID      string          `json:"pregunta_id"`
	PreguntaCodigo  string          `json:"pregunta_codigo,omitempty"`
	Respuesta       string          `json:"respuesta"`
	RespuestaNombre string          `json:"respuesta_nombre"`
	Justificacion   string          `json:"justificacion"`
	Estado          string          `json:"estado"`
	Version         int             `json:"version"`
	Evidencias      []EvidenciaView `json:"evidencias,omitempty"`
	RespondidoAt    string          `json:"respondido_at"`
}

type EvidenciaView struct {
	ID              string `json:"id"`
	NombreArchivo   string `json:"nombre_archivo"`
	CodigoDocumento string `json:"codigo_documento,omitempty"`
	ContentType     string `json:"content_type"`
	TamanioBytes    int64  `json:"tamanio_bytes"`
}

func RespuestaConvert(rec dbmodels.Respuesta) RespuestaView {
	view := RespuestaView{
		ID:              rec.ID,
		AsignacionID:    rec.AsignacionID,
		PreguntaID:      rec.PreguntaID,
		Respuesta:       string(rec.Respuesta),
		RespuestaNombre: rec.Respuesta.ToHuman(),
		Justificacion:   rec.Justificacion,
		Estado:          string(rec.Estado),
		Version:         rec.Version,
		RespondidoAt:    rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.Pregunta != nil {
		view.PreguntaCodigo = rec.Pregunta.Codigo
	}
	for _, ev := range rec.Evidencias {
		view.Evidencias = append(view.Evidencias, EvidenciaConvert(ev))
	}
	return view
}

func EvidenciaConvert(rec dbmodels.Evidencia) EvidenciaView {
	return EvidenciaView{
		ID:              rec.ID,
		NombreArchivo:   rec.NombreArchivo,
		CodigoDocumento: rec.CodigoDocumento,
		ContentType:     rec.ContentType,
		TamanioBytes:    rec.TamanioBytes,
	}
}
