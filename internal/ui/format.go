package ui

import (
	"fmt"
	"strings"

	"slate/internal/schedule"
)

// printTimetable prints entries grouped by day, one line per entry.
func printTimetable(entries []*schedule.Entry, meta schedule.GridMetadata) {
	if len(entries) == 0 {
		fmt.Println("No entries.")
		return
	}

	byCell := make(map[string][]*schedule.Entry)
	for _, e := range entries {
		key := e.Day + "\x00" + e.TimeSlot
		byCell[key] = append(byCell[key], e)
	}

	width := termWidth()
	for _, day := range meta.Days {
		var lines []string
		for _, slot := range meta.TimeSlots {
			for _, e := range byCell[day+"\x00"+slot] {
				line := fmt.Sprintf("  %s  %s",
					colorMuted.Sprint(slot),
					colorSubject.Sprint(e.Subject))
				detail := detailSuffix(e)
				if detail != "" {
					line += colorMuted.Sprint(detail)
				}
				if len(line) > width {
					line = line[:width]
				}
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Println(colorHeader.Sprintf("=== %s ===", day))
		for _, l := range lines {
			fmt.Println(l)
		}
		fmt.Println()
	}
}

func detailSuffix(e *schedule.Entry) string {
	var parts []string
	if e.Teacher != "" {
		parts = append(parts, e.Teacher)
	}
	if e.Classroom != "" {
		parts = append(parts, "room "+e.Classroom)
	}
	if e.Semester != "" {
		parts = append(parts, e.Semester)
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, ", ") + ")"
}

// printConflicts prints a conflict report.
func printConflicts(conflicts []schedule.Conflict) {
	if len(conflicts) == 0 {
		colorOK.Println("No conflicts.")
		return
	}

	fmt.Println(colorHeader.Sprintf("%d conflicts:", len(conflicts)))
	for _, c := range conflicts {
		where := "unplaced"
		if c.HasCell() {
			where = fmt.Sprintf("%s %s", c.Day, c.TimeSlot)
		}
		fmt.Printf("  %s %s", colorConflict.Sprintf("[%s]", c.Type), where)
		if len(c.Subjects) > 0 {
			fmt.Printf(": %s", strings.Join(c.Subjects, ", "))
		}
		if c.MissingSessions > 0 {
			fmt.Printf(" (%d sessions unplaced)", c.MissingSessions)
		}
		fmt.Println()
		for _, s := range c.Suggestions {
			fmt.Printf("      %s\n", colorMuted.Sprint(s))
		}
	}
}
