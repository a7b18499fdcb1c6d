package requests

// RosterRow is one pre-parsed spreadsheet row of a student import. Field
// normalization (year numerals, DD.MM.YYYY dates) happens server-side;
// parsing the file itself is the client's job.
type RosterRow struct {
	FirstName   string `json:"first name"`
	LastName    string `json:"last name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	FatherName  string `json:"Father's Name"`
	Contact     string `json:"Contact"`
	Email       string `json:"email"`
	Stream      string `json:"stream"`
	Course      string `json:"course"`
	Year        string `json:"year"`
	Section     string `json:"section"`
}

type ImportStudents struct {
	Rows []RosterRow `json:"rows" validate:"required,min=1"`
}

type StaffRosterRow struct {
	FirstName   string `json:"first name"`
	LastName    string `json:"last name"`
	FatherName  string `json:"Father's Name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Contact     string `json:"Contact"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

type ImportStaff struct {
	Rows []StaffRosterRow `json:"rows" validate:"required,min=1"`
}
