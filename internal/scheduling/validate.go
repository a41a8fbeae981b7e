package scheduling

import (
	"regexp"
	"strings"
)

// Form field names used as FieldErrors keys
const (
	FieldCalendlyLink = "calendly_link"
	FieldAvailability = "availability"
)

// Validation messages shown next to the form fields
const (
	MsgInvalidCalendly     = "Please enter a valid Calendly URL (e.g., https://calendly.com/username)"
	MsgInvalidAvailability = "Please use the correct format: MM/DD/YYYY HH:MM AM/PM ET"
	MsgMissingBoth         = "Please provide either a Calendly link or your availability"
)

var (
	calendlyPattern = regexp.MustCompile(`^https://calendly\.com/[\w-]+(/[\w-]+)?$`)
	slotPattern     = regexp.MustCompile(`(?i)^(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/\d{4}\s+(0[1-9]|1[0-2]):[0-5]\d\s+(AM|PM)\s+ET$`)
)

// Input is what the recruiter types into the scheduling form
type Input struct {
	CalendlyLink string `json:"calendly_link"`
	Availability string `json:"availability"`
}

// FieldErrors map form field to its validation message
type FieldErrors map[string]string

// ValidationError carry the field errors of a rejected submission
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "invalid scheduling form"
}

// AvailabilitySlots split availability text into trimmed slots, without bullets and blank lines
func AvailabilitySlots(text string) []string {
	var slots []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "•"); ok {
			line = rest
		} else {
			line = strings.TrimPrefix(line, "-")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			slots = append(slots, line)
		}
	}
	return slots
}

// ValidCalendlyLink report whether link is a calendly profile or event URL
func ValidCalendlyLink(link string) bool {
	return calendlyPattern.MatchString(link)
}

// ValidAvailability report whether every slot of text is MM/DD/YYYY HH:MM AM/PM ET
func ValidAvailability(text string) bool {
	for _, slot := range AvailabilitySlots(text) {
		if !slotPattern.MatchString(slot) {
			return false
		}
	}
	return true
}

// Validate check input and return nil when it can be submitted
func Validate(in Input) FieldErrors {
	link := strings.TrimSpace(in.CalendlyLink)
	hasSlots := len(AvailabilitySlots(in.Availability)) > 0

	if link == "" && !hasSlots {
		return FieldErrors{
			FieldCalendlyLink: MsgMissingBoth,
			FieldAvailability: MsgMissingBoth,
		}
	}

	errs := FieldErrors{}
	if link != "" && !ValidCalendlyLink(link) {
		errs[FieldCalendlyLink] = MsgInvalidCalendly
	}
	if hasSlots && !ValidAvailability(in.Availability) {
		errs[FieldAvailability] = MsgInvalidAvailability
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
