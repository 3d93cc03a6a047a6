package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/magickal-mortalz/coven-service/internal/utils"
)

// Cell codecs. Everything in the store is a string; these keep the textual
// forms consistent with what the legacy workbooks already contain.

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func parseBool(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE", "1", "YES":
		return true
	}
	return false
}

func formatInt(n int) string { return strconv.Itoa(n) }

func parseInt(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return utils.FormatDateTime(t)
}

func parseTime(s string) time.Time {
	t, _ := utils.ParseDateTime(strings.TrimSpace(s))
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

// parseTimePtr returns nil for empty or unparseable cells.
func parseTimePtr(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if t, ok := utils.ParseDateTime(strings.TrimSpace(s)); ok {
		return &t
	}
	return nil
}
