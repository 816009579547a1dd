package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	leaveapimodels "conges-backend/models/api/leave"
)

type Provider interface {
	ExportLeaveRegister(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var registerHeaders = []string{"Matricule", "Employé", "Type de congé", "Date de début", "Date de fin", "Jours ouvrés", "Statut", "Motif", "Soumise le"}

func (i impl) ExportLeaveRegister(list []leaveapimodels.LeaveRequestView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("erreur de fermeture du fichier")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "erreur d'écriture de l'en-tête xlsx")
	}
	if len(list) != 0 {
		row, err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "erreur d'écriture des données xlsx")
		}
	}
	f.SetSheetName(sheet, "Registre des congés")
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []leaveapimodels.LeaveRequestView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Matricule"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Matricule); err != nil {
			return row, err
		}

		// "Employé"
		col++
		if err := writeColumn(f, sheet, col, row, item.EmployeNom); err != nil {
			return row, err
		}

		// "Type de congé"
		col++
		if err := writeColumn(f, sheet, col, row, item.TypeConge); err != nil {
			return row, err
		}

		// "Date de début"
		col++
		if err := writeColumn(f, sheet, col, row, item.DateDebut); err != nil {
			return row, err
		}

		// "Date de fin"
		col++
		if err := writeColumn(f, sheet, col, row, item.DateFin); err != nil {
			return row, err
		}

		// "Jours ouvrés"
		col++
		if err := writeColumn(f, sheet, col, row, item.JoursOuvres); err != nil {
			return row, err
		}

		// "Statut"
		col++
		if err := writeColumn(f, sheet, col, row, item.StatutLabel); err != nil {
			return row, err
		}

		// "Motif"
		col++
		if err := writeColumn(f, sheet, col, row, item.Motif); err != nil {
			return row, err
		}

		// "Soumise le"
		col++
		if !item.SubmittedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmittedAt.Format("02/01/2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
