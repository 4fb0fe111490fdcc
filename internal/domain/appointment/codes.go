package appointment

// Error codes returned in the error_code field.
const (
	CodeInvalidRequest            = "invalid_request"
	CodeInvalidID                 = "invalid_id"
	CodeInvalidLimit              = "invalid_limit"
	CodeMissingField              = "missing_required_field"
	CodeInvalidStatus             = "invalid_status"
	CodeInvalidValue              = "invalid_value"
	CodeInvalidDate               = "invalid_date"
	CodeInvalidTime               = "invalid_time"
	CodeInvalidRange              = "invalid_date_range"
	CodeInvalidMonth              = "invalid_month"
	CodeInvalidYear               = "invalid_year"
	CodePatientAlreadyBooked      = "patient_already_booked"
	CodeProfessionalAlreadyBooked = "professional_already_booked"
	CodeProfessionalNotFound      = "professional_not_found"
	CodeClientNotFound            = "client_not_found"
	CodeAppointmentNotFound       = "appointment_not_found"
)
