package xlsexport

import (
	"bytes"

	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Name", "Email", "Phone", "Location", "Position", "Status", "Current stage", "Applied at"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Phone); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Location); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentStage); err != nil {
			return row, err
		}

		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
