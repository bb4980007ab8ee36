package events

// Event is a calendar event as stored and as served. Start and End hold wire
// timestamps (see internal/calendar); the service passes them through
// without reformatting so stored values stay byte-identical.
type Event struct {
	ID          string
	OwnerID     string
	Name        string
	Start       string
	End         string
	Description string
}

// CreateParams carries a create payload. Description is a pointer so the
// service can tell "field missing" apart from "empty description": the field
// must be supplied, but the empty string is allowed.
type CreateParams struct {
	Name        string
	Start       string
	End         string
	Description *string
}

// Patch is the typed field-update set for Update. A nil field is untouched;
// a non-nil field is applied verbatim, including empty strings.
type Patch struct {
	Name        *string
	Start       *string
	End         *string
	Description *string
}

func (p Patch) isEmpty() bool {
	return p.Name == nil && p.Start == nil && p.End == nil && p.Description == nil
}
