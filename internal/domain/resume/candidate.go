package resume

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Candidate is the client-supplied body of a Resume: everything except the
// identity and the timestamps.
type Candidate struct {
	FullName   string       `json:"fullName" validate:"notblank"`
	Email      string       `json:"email" validate:"notblank"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	LinkedIn   string       `json:"linkedin"`
	GitHub     string       `json:"github"`
	ResumeType ResumeType   `json:"resumeType" validate:"resumetype"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     string       `json:"skills"`
	Projects   []Project    `json:"projects"`
}

// Normalize fills declared defaults. Values supplied by the caller are kept
// verbatim.
func (c *Candidate) Normalize() {
	if c.ResumeType == "" {
		c.ResumeType = TypeFresher
	}
	if c.Education == nil {
		c.Education = []Education{}
	}
	if c.Experience == nil {
		c.Experience = []Experience{}
	}
	if c.Projects == nil {
		c.Projects = []Project{}
	}
}

var ErrValidation = errors.New("resume validation failed")

type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rule a candidate broke.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Message
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

var schemaValidator *validator.Validate

func init() {
	schemaValidator = validator.New()
	schemaValidator.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	schemaValidator.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	schemaValidator.RegisterValidation("resumetype", func(fl validator.FieldLevel) bool {
		return ResumeType(fl.Field().String()).IsValid()
	})
}

// Validate applies defaults and checks the schema rules: fullName and email
// present, resumeType within the enumeration.
func (c *Candidate) Validate() error {
	c.Normalize()

	err := schemaValidator.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return out
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "resumetype":
		return fmt.Sprintf("%s `%v` is not one of [%s %s]", fe.Field(), fe.Value(), TypeFresher, TypeExperienced)
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
