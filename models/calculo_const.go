package models

// ClasificacionGap clasifica la brecha entre nivel deseado y nivel actual
type ClasificacionGap string

const (
	GapCumplido ClasificacionGap = "cumplido"
	GapSuperado ClasificacionGap = "superado"
	GapBajo     ClasificacionGap = "bajo"
	GapMedio    ClasificacionGap = "medio"
	GapAlto     ClasificacionGap = "alto"
	GapCritico  ClasificacionGap = "critico"
)

var clasificacionHumanName = map[ClasificacionGap]string{
	GapCumplido: "Cumplido",
	GapSuperado: "Superado",
	GapBajo:     "Bajo",
	GapMedio:    "Medio",
	GapAlto:     "Alto",
	GapCritico:  "Crítico",
}

func (c ClasificacionGap) ToHuman() string {
	if human, exist := clasificacionHumanName[c]; exist {
		return human
	}
	return string(c)
}

// NivelDeseadoDefault aplica cuando no hay configuración por evaluación ni por empresa
const NivelDeseadoDefault = 3.0

// ClasificarGap es la tabla canónica de umbrales, por magnitud decimal del gap
func ClasificarGap(gap float64) ClasificacionGap {
	switch {
	case gap >= 3:
		return GapCritico
	case gap >= 2:
		return GapAlto
	case gap >= 1:
		return GapMedio
	case gap > 0:
		return GapBajo
	case gap == 0:
		return GapCumplido
	}
	return GapSuperado
}

// PrioridadProyecto deriva la prioridad del proyecto de remediación
func (c ClasificacionGap) PrioridadProyecto() Prioridad {
	switch c {
	case GapCritico:
		return PrioridadCritica
	case GapAlto:
		return PrioridadAlta
	case GapMedio:
		return PrioridadMedia
	}
	return PrioridadBaja
}
