package export

import (
	"fmt"

	"contact-map-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName = "Contacts"
	filename  = "contacts.xlsx"
)

// XLSXExporter implements Exporter by writing the full contact list into a
// single-sheet workbook, one row per contact, columns in field declaration
// order. Contacts without coordinates get empty Lat/Lon cells.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (e *XLSXExporter) Filename() string { return filename }

func (e *XLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export produces the encoded workbook for the given list.
func (e *XLSXExporter) Export(contacts []domain.Contact) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("export contacts: rename sheet: %w", err)
	}

	header := []any{"Id", "Name", "Surname", "Gsm", "Address", "Lat", "Lon"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("export contacts: write header: %w", err)
	}

	for i, c := range contacts {
		var lat, lon any = "", ""
		if c.Coordinated() {
			lat, lon = *c.Lat, *c.Lon
		}

		row := []any{c.ID, c.Name, c.Surname, c.GSM, c.Address, lat, lon}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export contacts: row %d cell name: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("export contacts: write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export contacts: encode workbook: %w", err)
	}

	return buf.Bytes(), nil
}
