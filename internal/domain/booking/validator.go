package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/clock"
)

const (
	MeetingDateLayout = "2006-01-02"
	meetingTimeLayout = "15:04"
)

var (
	timeRegex        = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	cardNumberRegex  = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryRegex  = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCRegex     = regexp.MustCompile(`^\d{3,4}$`)
	mobileMoneyRegex = regexp.MustCompile(`^\+?\d{9,15}$`)
	whitespaceRegex  = regexp.MustCompile(`\s`)
)

// Candidate is a fully-formed booking submission as collected by the
// presentation layer. Every field arrives as a string; the validator is the
// single place that decides which combinations are legal.
type Candidate struct {
	PropertyID        string
	AppointmentType   string
	MeetingDate       string // calendar date, YYYY-MM-DD
	MeetingTime       string // 24-hour clock, HH:MM
	MeetingLocation   string
	UserName          string
	UserPhone         string
	UserEmail         string
	PaymentMethod     string
	CardNumber        string
	CardExpiry        string
	CardCVC           string
	MobileMoneyNumber string
}

// MeetingMoment combines the date and time fields into a single timestamp.
// Only meaningful after validation has passed.
func (c Candidate) MeetingMoment(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(MeetingDateLayout+" "+meetingTimeLayout, c.MeetingDate+" "+c.MeetingTime, loc)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult collects every violated rule so the caller can render
// all errors at once instead of fixing them one round-trip at a time.
type ValidationResult struct {
	Errors []FieldError
}

func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Err converts the result into an error the lifecycle layer can propagate,
// nil when the candidate is valid.
func (r ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Fields: r.Errors}
}

type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("booking validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return fmt.Sprintf("booking validation failed: %d field errors", len(e.Fields))
}

type Validator struct {
	clock    clock.Clock
	blackout BlackoutPolicy
}

func NewValidator(clk clock.Clock, blackout BlackoutPolicy) *Validator {
	if blackout == nil {
		blackout = DefaultBlackoutPolicy
	}
	return &Validator{clock: clk, blackout: blackout}
}

// Validate evaluates every rule without short-circuiting. Rules that depend
// on an unparseable input (weekend check on a malformed date) are skipped;
// the format error already covers the field.
func (v *Validator) Validate(c Candidate) ValidationResult {
	var result ValidationResult
	now := v.clock.Now()

	appointmentType := AppointmentType(c.AppointmentType)
	if !appointmentType.IsValid() {
		result.add("appointmentType", "Please select a valid appointment type.")
	}

	date, dateErr := time.ParseInLocation(MeetingDateLayout, c.MeetingDate, now.Location())
	if dateErr != nil {
		result.add("meetingDate", "A valid meeting date is required (YYYY-MM-DD).")
	}

	if !timeRegex.MatchString(c.MeetingTime) {
		result.add("meetingTime", "Invalid time format (HH:MM).")
	} else {
		var hour, minute int
		fmt.Sscanf(c.MeetingTime, "%d:%d", &hour, &minute)
		if !withinBusinessHours(hour, minute) {
			result.add("meetingTime", "Meeting time must be between 09:00 and 17:00.")
		}
	}

	if dateErr == nil {
		if beforeToday(date, now) {
			result.add("meetingDate", "Meeting date cannot be in the past.")
		}
		if isWeekend(date) {
			result.add("meetingDate", "Meetings cannot be scheduled on weekends.")
		}
		if v.blackout(date, now) {
			result.add("meetingDate", "The selected date is unavailable for bookings.")
		}
	}

	if appointmentType == AppointmentPhysicalViewing {
		if len(strings.TrimSpace(c.MeetingLocation)) < 5 {
			result.add("meetingLocation", "Meeting location must be at least 5 characters.")
		}
	}

	if len(strings.TrimSpace(c.UserName)) < 2 {
		result.add("userName", "Name must be at least 2 characters.")
	}
	if len(strings.TrimSpace(c.UserPhone)) < 9 {
		result.add("userPhone", "Phone number seems too short.")
	}
	if !emailRegex.MatchString(strings.TrimSpace(c.UserEmail)) {
		result.add("userEmail", "Invalid email address.")
	}

	if appointmentType.Price() > 0 {
		v.validatePayment(c, &result)
	}

	return result
}

func (v *Validator) validatePayment(c Candidate, result *ValidationResult) {
	method := PaymentMethod(c.PaymentMethod)
	if c.PaymentMethod == "" {
		result.add("paymentMethod", "Please select a payment method.")
		return
	}
	if !method.IsValid() {
		result.add("paymentMethod", "Please select a valid payment method.")
		return
	}

	switch method {
	case PaymentCreditCard:
		if !cardNumberRegex.MatchString(whitespaceRegex.ReplaceAllString(c.CardNumber, "")) {
			result.add("cardNumber", "Card number must be 13-19 digits.")
		}
		if !cardExpiryRegex.MatchString(c.CardExpiry) {
			result.add("cardExpiry", "Invalid expiry date (MM/YY).")
		}
		if !cardCVCRegex.MatchString(c.CardCVC) {
			result.add("cardCVC", "Invalid CVC (3-4 digits).")
		}
	case PaymentMobileMoney:
		if !mobileMoneyRegex.MatchString(c.MobileMoneyNumber) {
			result.add("mobileMoneyNumber", "Invalid mobile money number.")
		}
	}
}
