package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_ROLE_KEY                 ContextKey = "role"
)

const (
	REQUEST_ID_PREFIX = "CMPHB_SVC_"
)

const (
	RoleStaff     = "STAFF"
	RolePrincipal = "PRINCIPAL"
	RoleStudent   = "STUDENT"
)

const (
	MongoCollectionStaffs             = "staffs"
	MongoCollectionStudents           = "students"
	MongoCollectionStudentAuths       = "student_auths"
	MongoCollectionRefreshTokens      = "refresh_tokens"
	MongoCollectionAttendances        = "attendances"
	MongoCollectionTimetableTemplates = "timetable_templates"
	MongoCollectionCollegeConfigs     = "college_configs"
	MongoCollectionStreams            = "streams"
	MongoCollectionCourses            = "courses"
	MongoCollectionClasses            = "classes"
)
