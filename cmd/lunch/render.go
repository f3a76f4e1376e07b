package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"lunch-roll/domain"
	"lunch-roll/domain/grouping"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

func renderParticipants(w io.Writer, participants []domain.Participant) {
	table := newTable(w, []string{"Name", "Local"})
	for _, p := range participants {
		local := ""
		if p.Local {
			local = "yes"
		}
		table.Append([]string{p.Name, local})
	}
	table.Render()
	fmt.Fprintln(w, plural(len(participants), "participant"))
}

func renderAllocation(w io.Writer, allocation domain.Allocation, colours bool) {
	for i, group := range allocation {
		header := fmt.Sprintf("Group %d (%d)", i+1, len(group))
		if colours {
			header = color.New(color.FgGreen, color.OpBold).Render(header)
		}
		fmt.Fprintln(w, header)
		for j, member := range group {
			line := fmt.Sprintf("  %d. %s", j+1, member.Name)
			if member.Local {
				line += " *"
			}
			fmt.Fprintln(w, line)
		}
	}
}

func renderHistory(w io.Writer, sessions []domain.Session) {
	table := newTable(w, []string{"#", "Session", "Committed", "Groups"})
	for i, session := range sessions {
		groups := make([]string, 0, len(session.Groups))
		for _, group := range session.Groups {
			groups = append(groups, strings.Join(group, ", "))
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			shortID(session.ID.String()),
			session.CommittedAt.Local().Format(timeLayout),
			strings.Join(groups, " | "),
		})
	}
	table.Render()
}

func renderPairs(w io.Writer, counts []grouping.PairCount) {
	table := newTable(w, []string{"Pair", "Sessions"})
	for _, c := range counts {
		table.Append([]string{c.Pair.A + " & " + c.Pair.B, strconv.Itoa(c.Count)})
	}
	table.Render()
}

func localLabel(local bool) string {
	if local {
		return "local"
	}
	return "not local"
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
