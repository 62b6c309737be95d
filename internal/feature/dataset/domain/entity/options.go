package entity

// FilterOptions describes the choices the dashboard offers for each filter
// control: every distinct country and sector in first-appearance order, and
// the bounds of the year slider. The zero value means "empty dataset".
type FilterOptions struct {
	Countries []string
	Sectors   []string
	MinYear   int
	MaxYear   int
}
