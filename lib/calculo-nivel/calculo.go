package calculonivelhandler

import (
	"grc-maturity-backend/models"
)

// ResultadoCalculo es el agregado puro sobre las opciones respondidas
type ResultadoCalculo struct {
	NivelActual            float64
	TotalPreguntas         int
	SiCumple               int
	CumpleParcial          int
	NoCumple               int
	NoAplica               int
	PorcentajeCumplimiento float64
}

// CalcularNiveles promedia el puntaje por respuesta excluyendo NO_APLICA.
// Sin respuestas aplicables el nivel actual es 0.
func CalcularNiveles(opciones []models.OpcionRespuesta) ResultadoCalculo {
	resultado := ResultadoCalculo{
		TotalPreguntas: len(opciones),
	}
	suma := 0.0
	aplicables := 0
	for _, opcion := range opciones {
		switch opcion {
		case models.RespuestaSiCumple:
			resultado.SiCumple++
		case models.RespuestaCumpleParcial:
			resultado.CumpleParcial++
		case models.RespuestaNoCumple:
			resultado.NoCumple++
		case models.RespuestaNoAplica:
			resultado.NoAplica++
		}
		if puntaje, aplica := opcion.Puntaje(); aplica {
			suma += puntaje
			aplicables++
		}
	}
	if aplicables > 0 {
		resultado.NivelActual = redondear2(suma / float64(aplicables))
		resultado.PorcentajeCumplimiento = redondear2(float64(resultado.SiCumple+resultado.CumpleParcial) / float64(aplicables) * 100)
	}
	return resultado
}

func redondear2(valor float64) float64 {
	if valor < 0 {
		return float64(int(valor*100-0.5)) / 100
	}
	return float64(int(valor*100+0.5)) / 100
}
