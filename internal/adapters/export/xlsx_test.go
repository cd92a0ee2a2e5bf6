package export

import (
	"bytes"
	"strconv"
	"testing"

	"contact-map-service/internal/domain"

	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	lat, lon := 51.5237, -0.1586
	contacts := []domain.Contact{
		{ID: "1", Name: "Ahmet", Surname: "Yılmaz", GSM: "05555555555", Address: "Pilkington Avenue"},
		{ID: "2", Name: "Mehmet", Surname: "Demir", GSM: "05443332211", Address: "Kingston Road"},
		{ID: "3", Name: "Ayşe", Surname: "Kara", GSM: "05321234567", Address: "Baker Street", Lat: &lat, Lon: &lon},
		{ID: "4", Name: "Fatma", Surname: "Çelik", GSM: "05061239876", Address: "Oxford Street"},
		{ID: "5", Name: "Ali", Surname: "Şahin", GSM: "05519876543", Address: "Cambridge Avenue"},
	}

	e := NewXLSXExporter()

	encoded, err := e.Export(contacts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet %q: %v", sheetName, err)
	}

	if len(rows) != 6 {
		t.Fatalf("expected header + 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Id" || rows[0][4] != "Address" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	for i, c := range contacts {
		row := rows[i+1]
		if row[0] != c.ID || row[1] != c.Name || row[4] != c.Address {
			t.Errorf("row %d mismatch: %v", i+1, row)
		}
	}

	// Only the geocoded contact carries coordinate cells.
	geocoded := rows[3]
	if len(geocoded) < 7 {
		t.Fatalf("geocoded row is missing coordinate cells: %v", geocoded)
	}
	gotLat, err := strconv.ParseFloat(geocoded[5], 64)
	if err != nil || gotLat != lat {
		t.Errorf("lat cell = %q, want %v", geocoded[5], lat)
	}
	gotLon, err := strconv.ParseFloat(geocoded[6], 64)
	if err != nil || gotLon != lon {
		t.Errorf("lon cell = %q, want %v", geocoded[6], lon)
	}

	for _, i := range []int{1, 2, 4, 5} {
		row := rows[i]
		if len(row) >= 6 && row[5] != "" {
			t.Errorf("row %d must have an empty lat cell, got %q", i, row[5])
		}
	}
}

func TestExportEmptyList(t *testing.T) {
	e := NewXLSXExporter()

	encoded, err := e.Export(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected only the header row, got %d rows", len(rows))
	}
}
