package forms

import (
	"strings"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

type DocumentType string

const (
	TypePrenatal        DocumentType = "prenatal_form"
	TypeLaborMonitoring DocumentType = "labor_monitoring"
	TypeReferral        DocumentType = "referral"
	TypeApgar           DocumentType = "apgar_score"
)

// Label is the filename prefix of the document type.
func (t DocumentType) Label() string {
	switch t {
	case TypePrenatal:
		return "Prenatal_Form"
	case TypeLaborMonitoring:
		return "Labor_Monitoring"
	case TypeReferral:
		return "Referral_Form"
	case TypeApgar:
		return "APGAR_Score"
	default:
		return "Document"
	}
}

const (
	DefaultFacilityName    = "BIRTH CARE FACILITY"
	DefaultFacilityAddress = "Loading facility address..."
	DefaultSubjectName     = "Patient"
)

type Facility struct {
	Name    nullable.String `json:"name"`
	Address nullable.String `json:"address"`
}

// DisplayName returns the facility name or its fallback.
func (f Facility) DisplayName() string {
	return f.Name.Or(DefaultFacilityName)
}

// DisplayAddress returns the facility address or its fallback.
func (f Facility) DisplayAddress() string {
	return f.Address.Or(DefaultFacilityAddress)
}

type Patient struct {
	FirstName     nullable.String `json:"first_name"`
	MiddleName    nullable.String `json:"middle_name"`
	LastName      nullable.String `json:"last_name"`
	DateOfBirth   nullable.String `json:"date_of_birth"`
	Age           nullable.String `json:"age"`
	CivilStatus   nullable.String `json:"civil_status"`
	ContactNumber nullable.String `json:"contact_number"`
	Address       nullable.String `json:"address"`
	Religion      nullable.String `json:"religion"`
	Occupation    nullable.String `json:"occupation"`
	PhilHealthNo  nullable.String `json:"philhealth_number"`
}

// FullName joins first, middle and last name, skipping blanks.
func (p *Patient) FullName() string {
	if p == nil {
		return ""
	}
	return joinNames(p.FirstName, p.MiddleName, p.LastName)
}

// ShortName joins first and last name, skipping blanks.
func (p *Patient) ShortName() string {
	if p == nil {
		return ""
	}
	return joinNames(p.FirstName, p.LastName)
}

func joinNames(parts ...nullable.String) string {
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if !part.IsNil() {
			names = append(names, strings.TrimSpace(part.String))
		}
	}
	return strings.Join(names, " ")
}

// Vitals is shared by the prenatal and referral forms. Each form prints the
// subset it uses.
type Vitals struct {
	BloodPressure    nullable.String `json:"blood_pressure"`
	Temperature      nullable.String `json:"temperature"`
	PulseRate        nullable.String `json:"pulse_rate"`
	RespiratoryRate  nullable.String `json:"respiratory_rate"`
	Weight           nullable.String `json:"weight"`
	Height           nullable.String `json:"height"`
	OxygenSaturation nullable.String `json:"oxygen_saturation"`
}

type PrenatalInput struct {
	Facility         Facility        `json:"facility"`
	Patient          *Patient        `json:"patient"`
	FormDate         nullable.String `json:"form_date"`
	Gravida          nullable.String `json:"gravida"`
	Para             nullable.String `json:"para"`
	LMP              nullable.String `json:"lmp"`
	EDD              nullable.String `json:"edd"`
	GestationalAge   nullable.String `json:"gestational_age"`
	Vitals           Vitals          `json:"vitals"`
	FundalHeight     nullable.String `json:"fundal_height"`
	FetalHeartTone   nullable.String `json:"fetal_heart_tone"`
	Presentation     nullable.String `json:"presentation"`
	LaboratoryResult nullable.String `json:"laboratory_results"`
	Complaints       nullable.String `json:"complaints"`
	Assessment       nullable.String `json:"assessment"`
	Plan             nullable.String `json:"plan"`
	NextVisit        nullable.String `json:"next_visit"`
	ExaminedBy       nullable.String `json:"examined_by"`
}

// MonitoringEntry is one row of the labor monitoring sheet. Missing values
// are printed as blank cells.
type MonitoringEntry struct {
	Date          nullable.String `json:"date"`
	Time          nullable.String `json:"time"`
	Temperature   nullable.String `json:"temperature"`
	Pulse         nullable.String `json:"pulse"`
	Respiration   nullable.String `json:"respiration"`
	BloodPressure nullable.String `json:"blood_pressure"`
	FHTLocation   nullable.String `json:"fht_location"`
}

// Cells returns the display values in monitoring column order.
func (e MonitoringEntry) Cells() []string {
	return []string{
		pdf.FormatDate(e.Date.ForceValue()),
		pdf.FormatTime(e.Time.ForceValue()),
		strings.TrimSpace(e.Temperature.ForceValue()),
		strings.TrimSpace(e.Pulse.ForceValue()),
		strings.TrimSpace(e.Respiration.ForceValue()),
		strings.TrimSpace(e.BloodPressure.ForceValue()),
		strings.TrimSpace(e.FHTLocation.ForceValue()),
	}
}

// MonitoringHeaders are the labor monitoring sheet columns.
var MonitoringHeaders = []string{"Date", "Time", "Temp", "Pulse", "Resp", "BP", "FHT/Location"}

type LaborInput struct {
	Facility           Facility          `json:"facility"`
	Patient            *Patient          `json:"patient"`
	AdmissionDate      nullable.String   `json:"admission_date"`
	AdmissionTime      nullable.String   `json:"admission_time"`
	AdmittingDiagnosis nullable.String   `json:"admitting_diagnosis"`
	Gravida            nullable.String   `json:"gravida"`
	Para               nullable.String   `json:"para"`
	AttendingPhysician nullable.String   `json:"attending_physician"`
	Entries            []MonitoringEntry `json:"entries"`
	MonitoredBy        nullable.String   `json:"monitored_by"`
}

type Referral struct {
	Patient            *Patient        `json:"patient"`
	ReferralDate       nullable.String `json:"referral_date"`
	ReferralTime       nullable.String `json:"referral_time"`
	CaseNumber         nullable.String `json:"case_number"`
	Urgency            nullable.String `json:"urgency"`
	ReferringFacility  nullable.String `json:"referring_facility"`
	ReferringPhysician nullable.String `json:"referring_physician"`
	ReceivingFacility  nullable.String `json:"receiving_facility"`
	ReceivingPhysician nullable.String `json:"receiving_physician"`
	Reason             nullable.String `json:"reason_for_referral"`
	ChiefComplaint     nullable.String `json:"chief_complaint"`
	ClinicalHistory    nullable.String `json:"clinical_history"`
	Diagnosis          nullable.String `json:"diagnosis"`
	TreatmentGiven     nullable.String `json:"treatment_given"`
	Medications        nullable.String `json:"medications"`
	Allergies          nullable.String `json:"allergies"`
	Vitals             Vitals          `json:"vitals"`
	TransportMode      nullable.String `json:"transport_mode"`
	AccompaniedBy      nullable.String `json:"accompanied_by"`
	DepartureTime      nullable.String `json:"departure_time"`
	ContactName        nullable.String `json:"emergency_contact_name"`
	ContactNumber      nullable.String `json:"emergency_contact_number"`
	ContactRelation    nullable.String `json:"emergency_contact_relationship"`
	InsuranceProvider  nullable.String `json:"insurance_provider"`
	InsuranceNumber    nullable.String `json:"insurance_number"`
	Notes              nullable.String `json:"notes"`
}

type ReferralInput struct {
	Facility Facility  `json:"facility"`
	Referral *Referral `json:"referral"`
}

// ApgarScore holds the five criterion scores taken at one interval.
type ApgarScore struct {
	Appearance  nullable.String `json:"appearance"`
	Pulse       nullable.String `json:"pulse"`
	Grimace     nullable.String `json:"grimace"`
	Activity    nullable.String `json:"activity"`
	Respiration nullable.String `json:"respiration"`
}

func (s ApgarScore) values() []nullable.String {
	return []nullable.String{s.Appearance, s.Pulse, s.Grimace, s.Activity, s.Respiration}
}

type Newborn struct {
	FirstName      nullable.String `json:"first_name"`
	LastName       nullable.String `json:"last_name"`
	Sex            nullable.String `json:"sex"`
	DateOfBirth    nullable.String `json:"date_of_birth"`
	TimeOfBirth    nullable.String `json:"time_of_birth"`
	BirthWeight    nullable.String `json:"birth_weight"`
	BirthLength    nullable.String `json:"birth_length"`
	GestationalAge nullable.String `json:"gestational_age"`
	DeliveryType   nullable.String `json:"delivery_type"`
}

type ApgarInput struct {
	Facility   Facility        `json:"facility"`
	Mother     *Patient        `json:"patient"`
	Newborn    *Newborn        `json:"newborn"`
	OneMinute  ApgarScore      `json:"one_minute"`
	FiveMinute ApgarScore      `json:"five_minute"`
	TenMinute  ApgarScore      `json:"ten_minute"`
	AssessedBy nullable.String `json:"assessed_by"`
	Remarks    nullable.String `json:"remarks"`
}

// Form is a laid out document together with what callers need to name,
// title and index it.
type Form struct {
	Type        DocumentType
	SubjectName string
	Date        string // YYYY-MM-DD
	Metadata    map[string]string
	Document    *pdf.Document
}
