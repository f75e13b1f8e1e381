package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	gapapimodels "grc-maturity-backend/models/api/gap"
	proyectoapimodels "grc-maturity-backend/models/api/proyecto"
)

type Provider interface {
	ExportMatrizGaps(list []gapapimodels.CalculoNivelView) (*bytes.Buffer, error)
	ExportProyectos(list []proyectoapimodels.ProyectoView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var gapHeaders = []string{"Dimensión", "Nivel Deseado", "Nivel Actual", "GAP", "Clasificación", "Preguntas", "Sí Cumple", "Cumple Parcial", "No Cumple", "No Aplica", "% Cumplimiento"}

// ExportMatrizGaps arma la matriz de brechas por dimensión de la evaluación
func (i impl) ExportMatrizGaps(list []gapapimodels.CalculoNivelView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("Error cerrando el archivo xlsx")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, gapHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error armando el encabezado del xlsx")
	}
	if len(list) != 0 {
		row, err = writeGapData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error armando la matriz de brechas en xlsx")
		}
	}
	f.SetSheetName(sheet, "Matriz de GAPs")
	return f.WriteToBuffer()
}

func writeGapData(f *excelize.File, sheet string, list []gapapimodels.CalculoNivelView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(gapHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Dimensión"
		col := 1
		nombre := item.DimensionNombre
		if nombre == "" {
			nombre = "Encuesta completa"
		}
		if err := writeColumn(f, sheet, col, row, nombre); err != nil {
			return row, err
		}

		// "Nivel Deseado"
		col++
		if err := writeColumn(f, sheet, col, row, item.NivelDeseado); err != nil {
			return row, err
		}

		// "Nivel Actual"
		col++
		if err := writeColumn(f, sheet, col, row, item.NivelActual); err != nil {
			return row, err
		}

		// "GAP"
		col++
		if err := writeColumn(f, sheet, col, row, item.Gap); err != nil {
			return row, err
		}

		// "Clasificación"
		col++
		if err := writeColumn(f, sheet, col, row, item.ClasificacionGapNombre); err != nil {
			return row, err
		}

		// "Preguntas"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalPreguntas); err != nil {
			return row, err
		}

		// "Sí Cumple"
		col++
		if err := writeColumn(f, sheet, col, row, item.RespuestasSiCumple); err != nil {
			return row, err
		}

		// "Cumple Parcial"
		col++
		if err := writeColumn(f, sheet, col, row, item.RespuestasCumpleParcial); err != nil {
			return row, err
		}

		// "No Cumple"
		col++
		if err := writeColumn(f, sheet, col, row, item.RespuestasNoCumple); err != nil {
			return row, err
		}

		// "No Aplica"
		col++
		if err := writeColumn(f, sheet, col, row, item.RespuestasNoAplica); err != nil {
			return row, err
		}

		// "% Cumplimiento"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.2f%%", item.PorcentajeCumplimiento)); err != nil {
			return row, err
		}
	}
	return row, nil
}

var proyectoHeaders = []string{"Código", "Proyecto", "Dimensión", "GAP Origen", "Estado", "Prioridad", "Presupuesto", "Inicio", "Fin Estimado", "Ítems", "Completados"}

func (i impl) ExportProyectos(list []proyectoapimodels.ProyectoView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("Error cerrando el archivo xlsx")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, proyectoHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error armando el encabezado del xlsx")
	}
	if len(list) != 0 {
		row, err = writeProyectoData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error armando la tabla de proyectos en xlsx")
		}
	}
	f.SetSheetName(sheet, "Proyectos")
	return f.WriteToBuffer()
}

func writeProyectoData(f *excelize.File, sheet string, list []proyectoapimodels.ProyectoView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(proyectoHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Código"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CodigoProyecto); err != nil {
			return row, err
		}

		// "Proyecto"
		col++
		if err := writeColumn(f, sheet, col, row, item.NombreProyecto); err != nil {
			return row, err
		}

		// "Dimensión"
		col++
		if err := writeColumn(f, sheet, col, row, item.DimensionNombre); err != nil {
			return row, err
		}

		// "GAP Origen"
		col++
		if err := writeColumn(f, sheet, col, row, item.GapOriginal); err != nil {
			return row, err
		}

		// "Estado"
		col++
		if err := writeColumn(f, sheet, col, row, item.EstadoNombre); err != nil {
			return row, err
		}

		// "Prioridad"
		col++
		if err := writeColumn(f, sheet, col, row, item.Prioridad); err != nil {
			return row, err
		}

		// "Presupuesto"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.2f %s", item.PresupuestoGlobal, item.Moneda)); err != nil {
			return row, err
		}

		// "Inicio"
		col++
		if err := writeColumn(f, sheet, col, row, item.FechaInicio); err != nil {
			return row, err
		}

		// "Fin Estimado"
		col++
		if err := writeColumn(f, sheet, col, row, item.FechaFinEstimada); err != nil {
			return row, err
		}

		// "Ítems"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalItems); err != nil {
			return row, err
		}

		// "Completados"
		col++
		if err := writeColumn(f, sheet, col, row, item.ItemsCompletados); err != nil {
			return row, err
		}
	}
	return row, nil
}
