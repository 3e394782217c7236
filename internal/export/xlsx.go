// Package export renders reports as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kegelclub/club-stats/internal/models"
)

// ContentType is the MIME type of the workbooks written by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// excel caps sheet names at 31 characters
const maxSheetName = 31

type sheetWriter struct {
	f      *excelize.File
	sheet  string
	header int
	self   int
}

func newSheet(title string) (*sheetWriter, error) {
	f := excelize.NewFile()
	name := sheetName(title)
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}
	self, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("self style: %w", err)
	}

	return &sheetWriter{f: f, sheet: name, header: header, self: self}, nil
}

func sheetName(title string) string {
	title = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, strings.TrimSpace(title))
	if title == "" {
		title = "Report"
	}
	if runes := []rune(title); len(runes) > maxSheetName {
		title = string(runes[:maxSheetName])
	}
	return title
}

func (s *sheetWriter) row(n int, values []interface{}) error {
	axis, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return s.f.SetSheetRow(s.sheet, axis, &values)
}

func (s *sheetWriter) headerRow(values []interface{}) error {
	if err := s.row(1, values); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(values), 1)
	return s.f.SetCellStyle(s.sheet, first, last, s.header)
}

func (s *sheetWriter) flush(w io.Writer) error {
	defer s.f.Close()
	if err := s.f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// legValue leaves unplayed legs as empty cells rather than zeros.
func legValue(l models.LegScore) interface{} {
	if !l.Played {
		return nil
	}
	return l.Value
}

// WriteCrossTab writes the grid as a single-sheet workbook. Each opponent spans a
// 1st and a 2nd leg column under a two-row header, the diagonal is marked, leg and
// grand totals sit on the right and per-leg column totals at the bottom.
func WriteCrossTab(w io.Writer, grid *models.CrossTabGrid, title string) error {
	s, err := newSheet(title)
	if err != nil {
		return err
	}
	if err := s.crossTab(grid); err != nil {
		s.f.Close()
		return err
	}
	return s.flush(w)
}

// opponentCol is the 1st leg column of opponent j, the 2nd leg is the next one.
func opponentCol(j int) int {
	return 3 + 2*j
}

func (s *sheetWriter) crossTab(grid *models.CrossTabGrid) error {
	n := grid.Size()
	names := []interface{}{"Rank", "Name"}
	legs := []interface{}{nil, nil}
	for _, row := range grid.Rows {
		names = append(names, row.Name, nil)
		legs = append(legs, "1st", "2nd")
	}
	names = append(names, "1st leg", "2nd leg", "Total")
	if err := s.headerRow(names); err != nil {
		return err
	}
	if err := s.row(2, legs); err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		first, _ := excelize.CoordinatesToCellName(opponentCol(j), 1)
		second, _ := excelize.CoordinatesToCellName(opponentCol(j)+1, 1)
		if err := s.f.MergeCell(s.sheet, first, second); err != nil {
			return err
		}
	}

	firstTotals := make([]int, n)
	secondTotals := make([]int, n)
	for i, row := range grid.Rows {
		values := []interface{}{row.Rank, row.Name}
		for j, cell := range row.Cells {
			if cell.Self {
				values = append(values, models.SelfMarker, models.SelfMarker)
				continue
			}
			values = append(values, legValue(cell.First), legValue(cell.Second))
			firstTotals[j] += cell.First.Value
			secondTotals[j] += cell.Second.Value
		}
		values = append(values, row.FirstTotal, row.SecondTotal, row.GrandTotal)
		if err := s.row(i+3, values); err != nil {
			return err
		}
		first, _ := excelize.CoordinatesToCellName(opponentCol(i), i+3)
		second, _ := excelize.CoordinatesToCellName(opponentCol(i)+1, i+3)
		if err := s.f.SetCellStyle(s.sheet, first, second, s.self); err != nil {
			return err
		}
	}

	totals := []interface{}{nil, "Total"}
	for j := 0; j < n; j++ {
		totals = append(totals, firstTotals[j], secondTotals[j])
	}
	return s.row(n+3, totals)
}

// WriteStandings writes a ranked table with one histogram column per slot when the
// entries carry one.
func WriteStandings(w io.Writer, standings *models.Standings, title string) error {
	s, err := newSheet(title)
	if err != nil {
		return err
	}

	slots := 0
	for _, e := range standings.Entries {
		if e.Histogram.Slots() > slots && e.Histogram.Total() > 0 {
			slots = e.Histogram.Slots()
		}
	}

	header := []interface{}{"Rank", "Name", "Sum", "Games"}
	for v := 1; v <= slots; v++ {
		label := strconv.Itoa(v)
		if v == slots {
			label += "+"
		}
		header = append(header, label)
	}
	if err := s.headerRow(header); err != nil {
		s.f.Close()
		return err
	}

	for i, e := range standings.Entries {
		var rank interface{}
		if e.Rank != nil {
			rank = *e.Rank
		}
		values := []interface{}{rank, e.Name, e.Sum, e.Participation}
		for v := 1; v <= slots; v++ {
			values = append(values, e.Histogram.Get(v))
		}
		if err := s.row(i+2, values); err != nil {
			s.f.Close()
			return err
		}
	}

	return s.flush(w)
}
