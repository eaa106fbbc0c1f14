package report

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Houeta/employee-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoEmployees is returned when there is nothing to export.
var ErrNoEmployees = errors.New("failed to generate report, 0 employees were provided")

const (
	defaultSheet    = "Sheet1"
	unassignedSheet = "Unassigned"
	maxSheetName    = 31
	dateFormat      = "02.01.2006"
)

var headers = []string{
	"Employee ID", "First Name", "Last Name", "Age", "Phone Number", "Joined On", "Address", "Date of Birth",
}

// Generator holds the state for the Excel report generation process.
type Generator struct {
	file *excelize.File
}

// sheet is a group of employees rendered on the same worksheet.
type sheet struct {
	name      string
	employees []models.Employee
}

// NewGenerator creates a new report generator.
func NewGenerator() *Generator {
	return &Generator{
		file: excelize.NewFile(),
	}
}

// GenerateEmployeeReport renders the given employees into an Excel workbook with one sheet
// per designation, sorted by sheet name. Employees without a designation go to "Unassigned".
//
// Returns:
// - A pointer to a bytes.Buffer containing the workbook.
// - ErrNoEmployees when employees is empty, or an error if any excel operation fails.
func GenerateEmployeeReport(employees []models.Employee) (*bytes.Buffer, error) {
	var err error

	if len(employees) == 0 {
		return nil, ErrNoEmployees
	}

	sheets := groupByDesignation(employees)

	gen := NewGenerator()
	defer gen.file.Close()

	if err = gen.addSheets(sheets); err != nil {
		return nil, fmt.Errorf("failed to add sheets: %w", err)
	}

	// delete default sheet unless a designation reused its name
	if !hasSheet(sheets, defaultSheet) {
		if err = gen.file.DeleteSheet(defaultSheet); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet '%s': %w", defaultSheet, err)
		}
	}

	// setup first sheet as active
	gen.file.SetActiveSheet(0)

	buffer, err := gen.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write data from saved file: %w", err)
	}

	return buffer, nil
}

// groupByDesignation buckets employees by their sheet name. Sheet names are compared
// case-insensitively because excel treats them that way.
func groupByDesignation(employees []models.Employee) []sheet {
	index := make(map[string]int)
	var sheets []sheet

	for _, employee := range employees {
		name := sheetName(employee.Designation)
		key := strings.ToLower(name)

		pos, ok := index[key]
		if !ok {
			pos = len(sheets)
			index[key] = pos
			sheets = append(sheets, sheet{name: name})
		}
		sheets[pos].employees = append(sheets[pos].employees, employee)
	}

	sort.Slice(sheets, func(i, j int) bool { return sheets[i].name < sheets[j].name })

	return sheets
}

// addSheets creates one worksheet per group and fills it with employee rows.
func (g *Generator) addSheets(sheets []sheet) error {
	var err error
	headerIndex := 2

	for i, group := range sheets {
		if _, err = g.file.NewSheet(group.name); err != nil {
			return fmt.Errorf("failed to generate new sheet '%s': %w", group.name, err)
		}

		if err = g.setupSheet(group.name, i, len(group.employees)); err != nil {
			return fmt.Errorf("failed to setup sheet '%s': %w", group.name, err)
		}

		for j, employee := range group.employees {
			if err = g.addRow(group.name, j+headerIndex, employee); err != nil { // j+2, because the first row is the header
				return fmt.Errorf("failed to add row '%d': %w", j+headerIndex, err)
			}
		}
	}

	return nil
}

// setupSheet writes the styled header row, sets column widths and adds a table
// covering the header plus rowCount data rows.
func (g *Generator) setupSheet(sheetName string, sheetIndex, rowCount int) error {
	var err error

	headerStyle, err := g.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Vertical: "center", Horizontal: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create new style: %w", err)
	}

	rowHeight := 20
	if err = g.file.SetRowHeight(sheetName, 1, float64(rowHeight)); err != nil {
		return fmt.Errorf("failed to set row height for headers: %w", err)
	}
	if err = g.file.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to set sheet row for headers: %w", err)
	}
	if err = g.file.SetCellStyle(sheetName, "A1", "H1", headerStyle); err != nil {
		return fmt.Errorf("failed to set cell style for headers: %w", err)
	}

	widths := map[string]float64{
		"A": 13, "B": 18, "C": 18, "D": 8, "E": 16, "F": 14, "G": 40, "H": 14, //nolint:mnd // const values for column width
	}
	for col, width := range widths {
		if err = g.file.SetColWidth(sheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err = g.file.AddTable(sheetName, &excelize.Table{
		Range:     fmt.Sprintf("A1:H%d", rowCount+1),
		Name:      fmt.Sprintf("employees_%d", sheetIndex+1),
		StyleName: "TableStyleMedium9",
	}); err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}

	return nil
}

// addRow writes one employee into the given row of the sheet.
func (g *Generator) addRow(sheetName string, rowNum int, employee models.Employee) error {
	rowData := []interface{}{
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Age,
		employee.PhoneNumber,
		formatDate(employee.JoinedOn),
		employee.Address,
		formatDate(employee.DateOfBirth),
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to get cell name: %w", err)
	}

	if err = g.file.SetSheetRow(sheetName, cell, &rowData); err != nil {
		return fmt.Errorf("failed to set sheet row: %w", err)
	}

	return nil
}

func formatDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateFormat)
}

func hasSheet(sheets []sheet, name string) bool {
	for _, s := range sheets {
		if strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

// sheetName turns a designation into a valid worksheet name: characters excel rejects
// are replaced and the result is truncated to 31 runes.
func sheetName(designation string) string {
	name := strings.TrimSpace(strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, designation))
	name = strings.Trim(name, "'")

	if name == "" {
		return unassignedSheet
	}

	if utf8.RuneCountInString(name) > maxSheetName {
		runes := []rune(name)
		return string(runes[:maxSheetName])
	}
	return name
}
