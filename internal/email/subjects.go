package email

const (
	subjectLeadConfirmation    = "We've received your information"
	subjectLeadNotificationFmt = "New lead: %s %s"
)
