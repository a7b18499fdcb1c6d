package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"len":         "must be %s characters long",
	"numeric":     "must be a number",
	"gte":         "must be greater than or equal to %s",
	"lte":         "must be less than or equal to %s",
	"date_key":    "must be a date in YYYY-MM-DD format",
	"month_key":   "must be a month in YYYY-MM format",
	"slot_time":   "must be a time in HH:MM 24-hour format",
	"slot_after":  "must be later than the slot start time",
	"weekday_key": "must be a weekday number, 0 (Sunday) to 6 (Saturday)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientRefreshTokenInvalid           = "invalid refresh token"
	ErrClientTemplateNameExists            = "template name already exists"
	ErrClientTemplateNeedsSlot             = "name and at least 1 slot are required"
	ErrClientWeeklyScheduleRequired        = "weekly schedule is required"
	ErrClientInvalidMonthFormat            = "invalid month format, use YYYY-MM"
	ErrClientInvalidDateFormat             = "invalid date format, use YYYY-MM-DD"
	ErrClientRangeRequired                 = "start and end dates are required"
	ErrClientAttendanceExists              = "attendance already exists for this hour"
	ErrClientAttendanceFieldsMissing       = "missing required fields"
	ErrClientStudentAuthNotInitialized     = "student auth not initialized"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed          = "request validation failed"
	ErrDevCannotParseDate           = "cannot parse the requested date"
	ErrDevCannotParseMonth          = "cannot parse the requested month"
	ErrDevServerProcess             = "internal process failed"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded while processing"
	ErrDevInvalidCredentials        = "credentials do not match any account"
	ErrDevFailedToHashPassword      = "failed to hash password with bcrypt"
	ErrDevAuthTokenMissing          = "authorization token is missing from header"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevAuthGenerateToken         = "failed to generate jwt token"
	ErrDevAuthInvalidSession        = "session not found or already revoked"
	ErrDevAuthRefreshTokenInvalid   = "refresh token not found, revoked, expired or device mismatch"
	ErrDevRoleTypeDoesntMatch       = "authenticated role is not allowed for this resource"
	ErrDevComputeFingerprint        = "failed to compute payload fingerprint"

	ErrDevDBFailedToFindDocument     = "failed to find document(s) in mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in mongo database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document(s) in mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo cursor"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data to redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq queue %s"

	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"

	ErrDevTemplateAlreadyExists = "timetable template with the same name already exists"
	ErrDevTemplateInvalid       = "timetable template payload failed validation"
	ErrDevScheduleInvalid       = "schedule configuration payload failed validation"
	ErrDevAttendanceDuplicate   = "attendance document already exists for class/date/hour"
	ErrDevStudentAuthMissing    = "student has no auth document"
)
