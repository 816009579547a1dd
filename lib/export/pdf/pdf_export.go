package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	leaveapimodels "conges-backend/models/api/leave"
)

// GenerateAttestation produit l'attestation de congé approuvé remise à
// l'employé. Les polices de base couvrent le français via la table cp1252.
func GenerateAttestation(view leaveapimodels.LeaveRequestView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateAttestation panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, tr("ATTESTATION DE CONGÉ"), "", 1, "C", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()
	lineHt += 2

	body := fmt.Sprintf("Nous attestons que %s (matricule %s) bénéficie d'un congé "+
		"de type « %s » du %s au %s, soit %d jours ouvrés.",
		view.EmployeNom, view.Matricule, view.TypeConge,
		formatDate(view.DateDebut), formatDate(view.DateFin), view.JoursOuvres)
	pdf.MultiCell(0, lineHt, tr(body), "", "L", false)
	pdf.Ln(4)

	if view.Motif != "" {
		pdf.MultiCell(0, lineHt, tr(fmt.Sprintf("Motif : %s", view.Motif)), "", "L", false)
		pdf.Ln(4)
	}

	pdf.MultiCell(0, lineHt, tr(fmt.Sprintf("Statut de la demande : %s.", view.StatutLabel)), "", "L", false)
	pdf.Ln(12)

	pdf.CellFormat(0, lineHt, tr(fmt.Sprintf("Fait le %s", time.Now().Format("02/01/2006"))), "", 1, "R", false, 0, "")
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

// formatDate repasse une date AAAA-MM-JJ au format JJ/MM/AAAA.
func formatDate(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("02/01/2006")
}
