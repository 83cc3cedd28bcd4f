package request

import (
	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/booking"
)

// SubmitBookingRequest carries the raw booking form. Field-level semantics
// stay out of binding tags on purpose: the domain validator checks every
// field and reports all violations in one response.
type SubmitBookingRequest struct {
	PropertyID        string `json:"propertyId" binding:"required"`
	AppointmentType   string `json:"appointmentType"`
	MeetingDate       string `json:"meetingDate"`
	MeetingTime       string `json:"meetingTime"`
	MeetingLocation   string `json:"meetingLocation"`
	UserName          string `json:"userName"`
	UserPhone         string `json:"userPhone"`
	UserEmail         string `json:"userEmail"`
	PaymentMethod     string `json:"paymentMethod"`
	CardNumber        string `json:"cardNumber"`
	CardExpiry        string `json:"cardExpiry"`
	CardCVC           string `json:"cardCVC"`
	MobileMoneyNumber string `json:"mobileMoneyNumber"`
}

func (r *SubmitBookingRequest) ToCandidate() booking.Candidate {
	return booking.Candidate{
		PropertyID:        r.PropertyID,
		AppointmentType:   r.AppointmentType,
		MeetingDate:       r.MeetingDate,
		MeetingTime:       r.MeetingTime,
		MeetingLocation:   r.MeetingLocation,
		UserName:          r.UserName,
		UserPhone:         r.UserPhone,
		UserEmail:         r.UserEmail,
		PaymentMethod:     r.PaymentMethod,
		CardNumber:        r.CardNumber,
		CardExpiry:        r.CardExpiry,
		CardCVC:           r.CardCVC,
		MobileMoneyNumber: r.MobileMoneyNumber,
	}
}

type ConvertToRentalRequest struct {
	MonthsToRent int `json:"monthsToRent" binding:"required"`
}
