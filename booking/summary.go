package booking

import (
	"golang.org/x/text/message"
)

// Summary is the confirmation shown before the user explicitly confirms the
// charge. Amounts are pre-formatted in VND.
type Summary struct {
	Date      string `json:"date"`
	SlotCount int    `json:"slot_count,omitempty"`
	Tables    int    `json:"table_count,omitempty"`
	Total     string `json:"total"`
	Deposit   string `json:"deposit"`
	Remaining string `json:"remaining,omitempty"`
}

func BuildSlotSummary(p *message.Printer, date string, slotCount int) Summary {
	totals := TotalsForSlots(slotCount)

	return Summary{
		Date:      dayOf(date),
		SlotCount: slotCount,
		Total:     formatVnd(p, totals.Total),
		Deposit:   formatVnd(p, totals.Deposit),
		Remaining: formatVnd(p, totals.Remaining),
	}
}

func BuildTableSummary(p *message.Printer, date string, tableCount int, deposit int64) Summary {
	return Summary{
		Date:    dayOf(date),
		Tables:  tableCount,
		Total:   formatVnd(p, deposit),
		Deposit: formatVnd(p, deposit),
	}
}

func formatVnd(p *message.Printer, amount int64) string {
	return p.Sprintf("%dđ", amount)
}
