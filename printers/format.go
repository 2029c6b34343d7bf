// Package printers contains the logic for printing information
package printers

import (
	"fmt"
	"strings"

	"github.com/callmeBron/generics/report"
)

const absentValue = "<absent>"

func entryLine(e report.Entry) string {
	value := e.Value
	if !e.Present {
		value = absentValue
	}

	return fmt.Sprintf("[%s] %s (%s): %s", e.Stage, e.Name, e.Type, value)
}

func itemsLine(stage report.Stage, items []string) string {
	if len(items) == 0 {
		return fmt.Sprintf("[%s] items (0): none", stage)
	}

	return fmt.Sprintf("[%s] items (%d): %s", stage, len(items), strings.Join(items, ", "))
}

func summaryHeader(s *report.Summary) string {
	return fmt.Sprintf("--- %s summary ---", s.Title)
}

func summaryLines(s *report.Summary) []string {
	return []string{
		fmt.Sprintf("%d containers | %d present before clearing, %d present after",
			s.Containers, s.PresentBefore, s.PresentAfter),
		fmt.Sprintf("%d items before removal, %d after", s.ItemsBefore, s.ItemsAfter),
		fmt.Sprintf("%d views rendered", s.Views),
		fmt.Sprintf("walkthrough took %s", s.Duration()),
	}
}
