package responses

type StaffLogin struct {
	AccessToken        string `json:"accessToken"`
	RefreshToken       string `json:"refreshToken"`
	DeviceID           string `json:"deviceId"`
	MustChangePassword bool   `json:"mustChangePassword"`
}

type RefreshAccessToken struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type StaffProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
	Role      string `json:"role"`
}

type StudentLogin struct {
	AccessToken        string `json:"accessToken"`
	MustChangePassword bool   `json:"mustChangePassword"`
}

type StudentProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	ClassID   string `json:"classId"`
	CourseID  string `json:"courseId"`
	StreamID  string `json:"streamId"`
}
