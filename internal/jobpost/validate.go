package jobpost

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"jobboard-backend/internal/model"
	"jobboard-backend/internal/utilities"
)

// FieldErrors map form field (json name) to its validation message
type FieldErrors map[string]string

// ValidationError carry the field errors of a rejected form
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "invalid job posting form"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "This field is required"
	case "max":
		return "This field is too long"
	case "datetime":
		return "Please use the MM/DD/YYYY format"
	case "gt", "lte":
		return "Please enter a number of hours between 1 and 168"
	case "url":
		return "Please enter a valid URL"
	case "email":
		return "Please enter a valid email address"
	}
	return "This field is invalid"
}

// Normalize trim text fields and clear the companion field of inactive application methods
func Normalize(form model.JobPostForm) model.JobPostForm {
	form.Title = strings.TrimSpace(form.Title)
	form.StartDate = strings.TrimSpace(form.StartDate)
	form.EndDate = strings.TrimSpace(form.EndDate)
	form.ExternalLink = strings.TrimSpace(form.ExternalLink)
	form.ContactEmail = strings.TrimSpace(form.ContactEmail)

	if form.ApplicationMode != model.MethodExternalLink {
		form.ExternalLink = ""
	}
	if form.ApplicationMode != model.MethodEmail {
		form.ContactEmail = ""
	}
	return form
}

// ValidateForm check every field of a normalized form
func ValidateForm(form model.JobPostForm) FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(form); errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs[fe.Field()] = message(fe)
		}
	}

	checkEnum(errs, "work_type", form.WorkType, model.WorkTypes)
	checkEnum(errs, "compensation", form.Compensation, model.PaymentTypes)
	checkEnum(errs, "application_method", form.ApplicationMode, model.ApplicationMethods)
	for _, jt := range form.JobType {
		checkEnum(errs, "job_type", jt, model.JobTypes)
	}

	if _, ok := errs["description"]; !ok && PlainText(form.Description) == "" {
		errs["description"] = "This field is required"
	}

	if _, bad := errs["start_date"]; !bad {
		if _, bad := errs["end_date"]; !bad {
			start, _ := time.Parse(model.DateLayout, form.StartDate)
			end, _ := time.Parse(model.DateLayout, form.EndDate)
			if end.Before(start) {
				errs["end_date"] = "End date must not be before start date"
			}
		}
	}

	switch form.ApplicationMode {
	case model.MethodExternalLink:
		if form.ExternalLink == "" {
			errs["external_link"] = "This field is required"
		} else if _, bad := errs["external_link"]; !bad &&
			!strings.HasPrefix(form.ExternalLink, "http://") && !strings.HasPrefix(form.ExternalLink, "https://") {
			errs["external_link"] = "Please enter a valid URL"
		}
	case model.MethodEmail:
		if form.ContactEmail == "" {
			errs["contact_email"] = "This field is required"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkEnum(errs FieldErrors, field, value string, allowed []string) {
	if value == "" {
		return
	}
	if _, ok := errs[field]; ok {
		return
	}
	if utilities.Contains(allowed, value) {
		return
	}
	errs[field] = "Please select one of: " + strings.Join(allowed, ", ")
}
