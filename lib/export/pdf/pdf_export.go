package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	gapapimodels "grc-maturity-backend/models/api/gap"
)

// GenerateResumenGaps arma el informe ejecutivo de brechas de una
// evaluación. El español cabe en cp1252, no hacen falta fuentes UTF-8.
func GenerateResumenGaps(empresaNombre, encuestaNombre string, list []gapapimodels.CalculoNivelView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateResumenGaps panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Informe de Brechas de Madurez"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, tr(empresaNombre), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr(encuestaNombre), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Generado el %s", time.Now().Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(5)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	anchos := []float64{60, 25, 25, 20, 35, 25}
	encabezados := []string{"Dimensión", "Deseado", "Actual", "GAP", "Clasificación", "% Cumpl."}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for idx, encabezado := range encabezados {
		pdf.CellFormat(anchos[idx], 8, tr(encabezado), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range list {
		nombre := item.DimensionNombre
		if nombre == "" {
			nombre = "Encuesta completa"
		}
		pdf.CellFormat(anchos[0], 7, tr(nombre), "1", 0, "L", false, 0, "")
		pdf.CellFormat(anchos[1], 7, fmt.Sprintf("%.1f", item.NivelDeseado), "1", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[2], 7, fmt.Sprintf("%.2f", item.NivelActual), "1", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[3], 7, fmt.Sprintf("%.2f", item.Gap), "1", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[4], 7, tr(item.ClasificacionGapNombre), "1", 0, "C", false, 0, "")
		pdf.CellFormat(anchos[5], 7, fmt.Sprintf("%.2f%%", item.PorcentajeCumplimiento), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
