package entity

import (
	"encoding/json"
	"time"
)

// Form type tags stored on FormSubmission rows.
const (
	FormTypeContact    = "contact_form"
	FormTypeService    = "solar_services"
	FormTypeCalculator = "solar_calculator_data"
)

// ContactForm is a contact request. The duplicate key is email OR phone:
// a prior row matching either field makes a new submission a conflict.
type ContactForm struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceRequest is a solar installation service request.
// Duplicate key: email OR phone.
type ServiceRequest struct {
	ID                 int64     `json:"id"`
	FullName           string    `json:"full_name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	ServiceType        string    `json:"service_type"`
	ServiceDetails     string    `json:"service_details"`
	StreetAddress      string    `json:"street_address"`
	StreetAddressLine2 string    `json:"street_address_line2"`
	City               string    `json:"city"`
	Region             string    `json:"region"`
	PostalCode         string    `json:"postal_code"`
	CreatedAt          time.Time `json:"createdAt"`
}

// CalculatorRequest holds savings-calculator inputs. Values stay as free-form
// text, matching the web form. Duplicate key: (panel capacity, roof area,
// state) all together; budget and the remaining fields do not participate.
type CalculatorRequest struct {
	ID               int64     `json:"id"`
	PanelCapacity    string    `json:"panel_capacity"`
	RoofArea         string    `json:"roof_area"`
	Budget           string    `json:"budget"`
	State            string    `json:"state"`
	CustomerCategory string    `json:"customer_category"`
	ElectricityCost  string    `json:"electricity_cost"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FormSubmission is the append-only audit mirror written alongside every
// accepted submission. UserID and UserEmail are nil for anonymous intakes.
// FormData carries the raw request payload as submitted.
type FormSubmission struct {
	ID        int64           `json:"id"`
	UserID    *string         `json:"user,omitempty"`
	UserEmail *string         `json:"userEmail,omitempty"`
	FormType  string          `json:"formType"`
	FormData  json.RawMessage `json:"formData"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Notification is produced by external processes and only read here.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
