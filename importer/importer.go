package importer

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bangrak/model"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Importer reads a tabular export of the district's restaurant survey,
// classifies each row into a category and sub-district by keyword and
// persists the whole batch in one write. Rows that cannot be parsed are
// skipped; only a source or persistence failure aborts the import.
type Importer struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{DB: db}
}

// ImportFile dispatches on the file extension: Excel workbooks go through
// excelize, everything else is treated as CSV. Returns the number of
// imported restaurants.
func (im *Importer) ImportFile(path string) (int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return im.ImportXLSX(path)
	default:
		return im.ImportCSV(path)
	}
}

func (im *Importer) ImportCSV(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // source rows are ragged

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	return im.importRows(rows)
}

func (im *Importer) ImportXLSX(path string) (int, error) {
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer xl.Close()

	sheet := xl.GetSheetName(0)
	rows, err := xl.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return im.importRows(rows)
}

func (im *Importer) importRows(rows [][]string) (int, error) {
	var restaurants []model.Restaurant

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowNumber := i + 1

		if len(row) < 10 {
			log.Printf("Skipping row %d: insufficient columns", rowNumber)
			continue
		}

		restaurant, err := parseRow(row)
		if err != nil {
			log.Printf("Error parsing row %d: %v", rowNumber, err)
			continue
		}
		restaurants = append(restaurants, restaurant)
	}

	if len(restaurants) == 0 {
		return 0, nil
	}

	if err := im.DB.Create(&restaurants).Error; err != nil {
		return 0, fmt.Errorf("failed to save imported restaurants: %w", err)
	}

	log.Printf("Successfully imported %d restaurants", len(restaurants))
	return len(restaurants), nil
}

// parseRow derives one restaurant from a survey row. Column positions are
// fixed by the export format; short rows default missing columns to "".
// A panic while deriving a row is reported as that row's error so the rest
// of the batch survives.
func parseRow(row []string) (restaurant model.Restaurant, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("unexpected fault: %v", p)
		}
	}()

	zone := field(row, 1)
	nameTh := field(row, 4)
	location := field(row, 5)
	link := field(row, 6)
	restaurantType := field(row, 7)
	notes := field(row, 10)
	licenseVolume := field(row, 12)
	licenseNumber := field(row, 13)
	licenseYear := field(row, 14)
	licenseHolder := field(row, 16)

	restaurant = model.Restaurant{
		NameTh:        nameTh,
		DescriptionTh: notes,
		Address:       location,
		GoogleMapsUrl: link,
		Category:      classifyCategory(restaurantType, notes),
		SubDistrict:   classifySubDistrict(zone),
		LicenseVolume: licenseVolume,
		LicenseNumber: licenseNumber,
		LicenseYear:   licenseYear,
		LicenseHolder: licenseHolder,

		// Default pin position, adjusted later by the admin.
		PinX: 50.0,
		PinY: 50.0,

		HeritageRestaurant: containsAny(notes, heritageMarkers),
		HealthFriendly:     containsAny(notes, healthMarkers),
	}
	return restaurant, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
