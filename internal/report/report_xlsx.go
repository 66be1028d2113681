package report

import (
	"bytes"
	"fmt"

	"github.com/Webdevrishabh/ELMS/internal/leave"

	"github.com/xuri/excelize/v2"
)

const leavesSheet = "Leaves"

var leaveColumns = []struct {
	title string
	width float64
}{
	{"Employee", 22},
	{"Email", 28},
	{"Role", 12},
	{"Team", 18},
	{"Type", 12},
	{"From", 12},
	{"To", 12},
	{"Days", 8},
	{"Status", 12},
	{"Team Lead", 12},
	{"Admin", 12},
	{"Description", 40},
}

func buildLeavesWorkbook(rows []leave.LeaveWithUser) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(leavesSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range leaveColumns {
		name := colName(i)
		if err := f.SetColWidth(leavesSheet, name, name, col.width); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(leavesSheet, cell(name, 1), col.title); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(leavesSheet, "A1", cell(colName(len(leaveColumns)-1), 1), headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetPanes(leavesSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}

	for i, l := range rows {
		values := []any{
			deref(l.UserName),
			deref(l.UserEmail),
			deref(l.UserRole),
			deref(l.TeamName),
			l.LeaveType,
			l.FromDate.Format(dateLayout),
			l.ToDate.Format(dateLayout),
			l.TotalDays,
			l.Status,
			l.TeamLeadApproval,
			l.AdminApproval,
			deref(l.Description),
		}
		if err := f.SetSheetRow(leavesSheet, cell("A", i+2), &values); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
