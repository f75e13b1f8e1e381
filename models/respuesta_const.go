package models

import "github.com/pkg/errors"

// OpcionRespuesta es la escala de cumplimiento de 4 valores (CMMI)
type OpcionRespuesta string

const (
	RespuestaSiCumple      OpcionRespuesta = "SI_CUMPLE"
	RespuestaCumpleParcial OpcionRespuesta = "CUMPLE_PARCIAL"
	RespuestaNoCumple      OpcionRespuesta = "NO_CUMPLE"
	RespuestaNoAplica      OpcionRespuesta = "NO_APLICA"
)

var opcionHumanName = map[OpcionRespuesta]string{
	RespuestaSiCumple:      "Sí Cumple",
	RespuestaCumpleParcial: "Cumple Parcialmente",
	RespuestaNoCumple:      "No Cumple",
	RespuestaNoAplica:      "No Aplica",
}

func (o OpcionRespuesta) ToHuman() string {
	if human, exist := opcionHumanName[o]; exist {
		return human
	}
	return string(o)
}

func (o OpcionRespuesta) Validate() error {
	switch o {
	case RespuestaSiCumple, RespuestaCumpleParcial, RespuestaNoCumple, RespuestaNoAplica:
		return nil
	}
	return errors.Errorf("opción de respuesta desconocida (%v)", string(o))
}

// Puntaje retorna el puntaje de madurez de la respuesta.
// NO_APLICA retorna (0, false) y se excluye del promedio.
func (o OpcionRespuesta) Puntaje() (float64, bool) {
	switch o {
	case RespuestaSiCumple:
		return 1.0, true
	case RespuestaCumpleParcial:
		return 0.5, true
	case RespuestaNoCumple:
		return 0.0, true
	}
	return 0, false
}

type RespuestaEstado string

const (
	RespuestaEstadoBorrador        RespuestaEstado = "borrador"
	RespuestaEstadoEnviado         RespuestaEstado = "enviado"
	RespuestaEstadoModificadoAdmin RespuestaEstado = "modificado_admin"
)

func (e RespuestaEstado) Validate() error {
	switch e {
	case RespuestaEstadoBorrador, RespuestaEstadoEnviado, RespuestaEstadoModificadoAdmin:
		return nil
	}
	return errors.Errorf("estado de respuesta desconocido (%v)", string(e))
}

// CuentaComoRespondida indica si la respuesta suma al avance de la asignación
func (e RespuestaEstado) CuentaComoRespondida() bool {
	return e == RespuestaEstadoEnviado || e == RespuestaEstadoModificadoAdmin
}

const (
	// JustificacionMinLen es el mínimo de caracteres exigido en la justificación
	JustificacionMinLen = 10
	// MaxEvidenciasPorRespuesta limita los archivos adjuntos por respuesta
	MaxEvidenciasPorRespuesta = 3
)
