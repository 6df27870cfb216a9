package booking

import "nightlife-booking/common/constant"

// Selection tracks the ids chosen in one booking flow instance. It is owned
// by a single wizard or request and never shared.
type Selection struct {
	single bool
	ids    []int64
}

func NewSelection() *Selection {
	return &Selection{}
}

// NewSingleSelection restricts the set to at most one member: toggling a new
// id replaces the current one.
func NewSingleSelection() *Selection {
	return &Selection{single: true}
}

// Toggle adds the id if absent and removes it if present. It returns whether
// the id is selected afterwards.
func (s *Selection) Toggle(id int64) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return false
		}
	}

	if s.single {
		s.ids = s.ids[:0]
	}

	s.ids = append(s.ids, id)
	return true
}

func (s *Selection) Contains(id int64) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns a copy of the current selection in insertion order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *Selection) Reset() {
	s.ids = s.ids[:0]
}

// TotalDeposit sums the deposit price of exactly the selected tables.
func (s *Selection) TotalDeposit(depositByTable map[int64]int64) int64 {
	var total int64
	for _, id := range s.ids {
		total += depositByTable[id]
	}
	return total
}

// SlotTotals are the fixed-price figures for a count of selected slots.
type SlotTotals struct {
	Total     int64
	Deposit   int64
	Remaining int64
}

func TotalsForSlots(count int) SlotTotals {
	total := int64(count) * constant.SlotPrice
	deposit := int64(count) * constant.SlotDeposit

	return SlotTotals{
		Total:     total,
		Deposit:   deposit,
		Remaining: total - deposit,
	}
}
