package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kegelclub/club-stats/internal/config"
	"github.com/kegelclub/club-stats/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func rankLabel(e models.StandingsEntry) string {
	if e.Rank == nil {
		return "-"
	}
	return fmt.Sprintf("%d.", *e.Rank)
}

// histogramHeader labels slots 1..n, the last one open-ended.
func histogramHeader(n int) string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprint(i + 1)
	}
	if n > 0 {
		labels[n-1] += "+"
	}
	return strings.Join(labels, "\t")
}

func histogramCells(h models.Histogram, n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = fmt.Sprint(h.Get(i + 1))
	}
	return strings.Join(cells, "\t")
}

func printStandings(w io.Writer, s *models.Standings, label string) error {
	fmt.Fprintf(w, "%s (%s)\n\n", label, s.Window.CacheKey())

	slots := 0
	for _, e := range s.Entries {
		if e.Histogram.Total() > 0 && e.Histogram.Slots() > slots {
			slots = e.Histogram.Slots()
		}
	}

	tw := newTable(w)
	header := "#\tName\tSum\tGames"
	if slots > 0 {
		header += "\t" + histogramHeader(slots)
	}
	fmt.Fprintln(tw, header)
	for _, e := range s.Entries {
		line := fmt.Sprintf("%s\t%s\t%d\t%d", rankLabel(e), e.Name, e.Sum, e.Participation)
		if slots > 0 {
			line += "\t" + histogramCells(e.Histogram, slots)
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

func printCrossTab(w io.Writer, g *models.CrossTabGrid) error {
	tw := newTable(w)

	header := []string{"#", "Name"}
	for i := range g.Rows {
		header = append(header, fmt.Sprint(i+1))
	}
	header = append(header, "1st", "2nd", "Total")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range g.Rows {
		line := []string{fmt.Sprintf("%d.", row.Rank), row.Name}
		for _, cell := range row.Cells {
			line = append(line, cell.Label())
		}
		line = append(line, fmt.Sprint(row.FirstTotal), fmt.Sprint(row.SecondTotal), fmt.Sprint(row.GrandTotal))
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}

	totals := []string{"", ""}
	for _, t := range g.ColumnTotals {
		totals = append(totals, fmt.Sprint(t))
	}
	fmt.Fprintln(tw, strings.Join(totals, "\t"))
	return tw.Flush()
}

func printPlacements(w io.Writer, t *models.PlacementTables) error {
	tw := newTable(w)
	for _, md := range t.Matchdays {
		fmt.Fprintf(tw, "%s\n", md.PlayedOn.Format("2006-01-02"))
		for _, p := range md.Placements {
			fmt.Fprintf(tw, "%d.\tgame %d\t%d rounds\t%d points\n", p.Place, p.Record.Game, p.Record.Rounds, p.Record.Points)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "Name\t"+histogramHeader(t.Slots))
	for _, row := range t.Participants {
		fmt.Fprintln(tw, row.Name+"\t"+histogramCells(row.Histogram, t.Slots))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return printTeams(w, t.Teams, t.Slots)
}

func printTeams(w io.Writer, teams []models.TeamRow, slots int) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Team\t"+histogramHeader(slots))
	for _, team := range teams {
		fmt.Fprintln(tw, team.Name+"\t"+histogramCells(team.Histogram, slots))
	}
	return tw.Flush()
}

func printChampions(w io.Writer, champions []models.Champion, league *config.League) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Date\tFormat\tName\tScore")
	for _, c := range champions {
		name := c.Name
		if c.NoWinner {
			name = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", c.PlayedOn.Format("2006-01-02"), league.Label(c.Format), name, c.Score)
	}
	return tw.Flush()
}
