package booking

type AppointmentType string

const (
	AppointmentPhysicalViewing   AppointmentType = "physical-viewing"
	AppointmentVirtualTour       AppointmentType = "virtual-tour"
	AppointmentPhoneConsultation AppointmentType = "phone-consultation"
)

func (t AppointmentType) String() string {
	return string(t)
}

func (t AppointmentType) IsValid() bool {
	_, ok := appointmentDetails[t]
	return ok
}

// AppointmentDetails is the fixed offer behind each appointment type: a
// label, a service fee in XAF and the benefits shown to the customer.
type AppointmentDetails struct {
	Label            string
	PriceXAF         int64
	PriceDescription string
	Benefits         []string
}

var appointmentDetails = map[AppointmentType]AppointmentDetails{
	AppointmentPhysicalViewing: {
		Label:            "Physical Viewing",
		PriceXAF:         5000,
		PriceDescription: "Service fee for site visit coordination.",
		Benefits: []string{
			"In-person tour of the property.",
			"Meet the agent directly.",
			"Assess neighborhood and surroundings.",
		},
	},
	AppointmentVirtualTour: {
		Label:            "Virtual Tour",
		PriceXAF:         2500,
		PriceDescription: "Fee for live virtual tour session.",
		Benefits: []string{
			"Guided tour via video call.",
			"Ask questions in real-time.",
			"View from anywhere.",
		},
	},
	AppointmentPhoneConsultation: {
		Label:            "Phone Consultation",
		PriceXAF:         0,
		PriceDescription: "Initial consultation is free.",
		Benefits: []string{
			"Discuss property details with an agent.",
			"Clarify doubts and get advice.",
			"Quick and convenient.",
		},
	},
}

func (t AppointmentType) Details() (AppointmentDetails, bool) {
	d, ok := appointmentDetails[t]
	return d, ok
}

// Price returns the fixed fee for the appointment type, zero for unknown
// types so that payment rules are simply skipped for them.
func (t AppointmentType) Price() int64 {
	return appointmentDetails[t].PriceXAF
}

type PaymentMethod string

const (
	PaymentCreditCard  PaymentMethod = "creditCard"
	PaymentMobileMoney PaymentMethod = "mobileMoney"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCreditCard, PaymentMobileMoney:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// NotApplicableLocation marks the meeting location on appointment types
// that have no physical meeting point.
const NotApplicableLocation = "N/A"
