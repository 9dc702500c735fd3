package forms

import "github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"

// Referral lays out the patient referral form.
func (g *Generator) Referral(in ReferralInput) *Form {
	now := g.now()
	r := in.Referral
	if r == nil {
		r = &Referral{}
	}
	date := formDate(r.ReferralDate, now)

	p := g.newPage(in.Facility, "Patient Referral Form", r.Patient.FullName(), now)
	p.header("Patient Referral Form")

	p.Section("Referral Details")
	p.fields(
		field{"Referral Date", displayDate(r.ReferralDate)},
		field{"Referral Time", pdf.FormatTime(r.ReferralTime.ForceValue())},
		nf("Case No.", r.CaseNumber),
		nf("Urgency", r.Urgency),
	)
	p.Field("Referring Facility", r.ReferringFacility.Or(p.facility.DisplayName()))
	p.Field("Referring Physician", r.ReferringPhysician.ForceValue())
	p.Field("Receiving Facility", r.ReceivingFacility.ForceValue())
	p.Field("Receiving Physician", r.ReceivingPhysician.ForceValue())

	p.patientBlock(r.Patient)

	p.Section("Clinical Information")
	p.LabeledParagraph("Reason for Referral", r.Reason.ForceValue())
	p.LabeledParagraph("Chief Complaint", r.ChiefComplaint.ForceValue())
	p.LabeledParagraph("Clinical History", r.ClinicalHistory.ForceValue())
	p.LabeledParagraph("Diagnosis", r.Diagnosis.ForceValue())
	p.LabeledParagraph("Treatment Given", r.TreatmentGiven.ForceValue())
	p.fields(
		nf("Medications", r.Medications),
		nf("Allergies", r.Allergies),
	)

	p.Section("Vital Signs")
	v := r.Vitals
	p.fields(
		nf("Blood Pressure", v.BloodPressure),
		nf("Temperature", v.Temperature),
		nf("Heart Rate", v.PulseRate),
		nf("Respiratory Rate", v.RespiratoryRate),
		nf("O2 Saturation", v.OxygenSaturation),
		nf("Weight", v.Weight),
	)

	p.Section("Transfer")
	p.fields(
		nf("Transport Mode", r.TransportMode),
		field{"Departure Time", pdf.FormatTime(r.DepartureTime.ForceValue())},
	)
	p.Field("Accompanied By", r.AccompaniedBy.ForceValue())

	p.Section("Emergency Contact")
	p.fields(
		nf("Name", r.ContactName),
		nf("Relationship", r.ContactRelation),
		nf("Contact No.", r.ContactNumber),
	)

	p.Section("Insurance")
	p.fields(
		nf("Provider", r.InsuranceProvider),
		nf("Policy No.", r.InsuranceNumber),
	)

	p.LabeledParagraph("Notes", r.Notes.ForceValue())

	p.Signatures("Referring Physician", "Receiving Physician")

	return &Form{
		Type:        TypeReferral,
		SubjectName: subjectName(r.Patient.ShortName()),
		Date:        date,
		Metadata: map[string]string{
			"referral_date":      date,
			"case_number":        r.CaseNumber.ForceValue(),
			"urgency":            r.Urgency.ForceValue(),
			"receiving_facility": r.ReceivingFacility.ForceValue(),
			"patient_name":       r.Patient.FullName(),
			"generated_at":       generatedAt(now),
		},
		Document: p.finish(),
	}
}
