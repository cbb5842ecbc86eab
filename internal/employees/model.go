package employees

// Employee is one row of the employees table.
type Employee struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}
