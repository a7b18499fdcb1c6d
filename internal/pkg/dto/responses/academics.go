package responses

type Course struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StreamID      string `json:"streamId"`
	DurationYears int    `json:"durationYears"`
}

type Section struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CourseID string `json:"courseId"`
	Year     int    `json:"year"`
	Section  string `json:"section"`
}

type Student struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	FatherName string `json:"fatherName"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	StreamID   string `json:"streamId"`
	CourseID   string `json:"courseId"`
	ClassID    string `json:"classId"`
}

type Staff struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type RosterImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

type RosterImport struct {
	Inserted int                 `json:"inserted"`
	Failed   int                 `json:"failed"`
	Errors   []RosterImportError `json:"errors"`
	Archive  string              `json:"archive,omitempty"`
}
