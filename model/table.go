package model

// Table is a catalog entity owned by the backend. The client only displays
// and selects it.
type Table struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	TypeName     string `json:"typeName"`
	ColorTag     string `json:"colorTag"`
	DepositPrice int64  `json:"depositPrice"`
}

// Slot is one fixed 2-hour interval of the performer booking day.
type Slot struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}
