package notification

// Counts holds the per-category pending-item counts for one actor. Every
// category is always present; roles outside a category's allow-list get 0.
type Counts struct {
	Payroll      int `json:"payroll"`
	Performance  int `json:"performance"`
	Leaves       int `json:"leaves"`
	Attendance   int `json:"attendance"`
	Applications int `json:"applications"`
	Interviews   int `json:"interviews"`
	Users        int `json:"users"`
}

// Total sums every category.
func (c Counts) Total() int {
	return c.Payroll + c.Performance + c.Leaves + c.Attendance +
		c.Applications + c.Interviews + c.Users
}

// Detail is a human-readable projection of one pending item.
type Detail struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Date    string `json:"date"`
}

// Details holds the per-category detail lists, each capped at DetailLimit,
// newest first. Lists are always present, empty outside the allow-list.
type Details struct {
	Payroll      []Detail `json:"payroll"`
	Performance  []Detail `json:"performance"`
	Leaves       []Detail `json:"leaves"`
	Attendance   []Detail `json:"attendance"`
	Applications []Detail `json:"applications"`
	Interviews   []Detail `json:"interviews"`
	Users        []Detail `json:"users"`
}

// DetailLimit caps each category's detail list.
const DetailLimit = 10
