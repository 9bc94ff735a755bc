package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	// ExportCandidateList writes the candidates of a posting to a workbook.
	// CurrentStage must be preloaded on the rows.
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Candidate number", "Name", "Contacts", "Current stage", "Status", "Added on"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("workbook close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header not written")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data rows not written")
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
		// "Candidate number"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.CandidateNumber); err != nil {
			return row, err
		}

		// "Name"
		col++
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Current stage"
		col++
		if item.CurrentStage != nil {
			if err := writeColumn(f, sheet, col, row, item.CurrentStage.Name); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, string(item.OverallStatus)); err != nil {
			return row, err
		}

		// "Added on"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
