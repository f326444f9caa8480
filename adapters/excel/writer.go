package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"teamdash/internal/errors"
	"teamdash/models"
)

// SheetName is the sheet written by WriteRoster
const SheetName = "Roster"

// WriteRoster writes persons to an .xlsx workbook readable by RosterReader
func WriteRoster(filePath string, persons []models.Person) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, "failed to name roster sheet")
	}

	header := []interface{}{"Name", "Title", "Compensation"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "failed to write roster header")
	}

	for i, p := range persons {
		row := []interface{}{p.Name, p.Title, p.Compensation}
		if err := f.SetSheetRow(SheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return errors.Wrapf(err, "failed to write roster row %d", i+2)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return errors.Wrapf(err, "failed to save roster to %s", filePath)
	}
	return nil
}
