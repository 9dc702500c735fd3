package forms

// Prenatal lays out the prenatal examination form.
func (g *Generator) Prenatal(in PrenatalInput) *Form {
	now := g.now()
	name := in.Patient.ShortName()
	date := formDate(in.FormDate, now)

	p := g.newPage(in.Facility, "Prenatal Examination Form", in.Patient.FullName(), now)
	p.header("Prenatal Examination Form")
	p.fields(
		field{"Date of Visit", displayDate(in.FormDate)},
		nf("Examined By", in.ExaminedBy),
	)

	p.patientBlock(in.Patient)

	p.Section("Obstetric History")
	p.fields(
		nf("Gravida", in.Gravida),
		nf("Para", in.Para),
		field{"LMP", displayDate(in.LMP)},
		field{"EDD", displayDate(in.EDD)},
		nf("AOG", in.GestationalAge),
	)

	p.Section("Vital Signs")
	v := in.Vitals
	p.fields(
		nf("Blood Pressure", v.BloodPressure),
		nf("Temperature", v.Temperature),
		nf("Pulse Rate", v.PulseRate),
		nf("Respiratory Rate", v.RespiratoryRate),
		nf("Weight", v.Weight),
		nf("Height", v.Height),
	)

	p.Section("Physical Examination")
	p.fields(
		nf("Fundal Height", in.FundalHeight),
		nf("Fetal Heart Tone", in.FetalHeartTone),
		nf("Presentation", in.Presentation),
	)
	p.LabeledParagraph("Complaints", in.Complaints.ForceValue())

	p.Section("Laboratory")
	p.LabeledParagraph("Results", in.LaboratoryResult.ForceValue())

	p.Section("Assessment and Plan")
	p.LabeledParagraph("Assessment", in.Assessment.ForceValue())
	p.LabeledParagraph("Plan", in.Plan.ForceValue())
	p.Field("Next Visit", displayDate(in.NextVisit))

	p.Signatures("Examining Physician / Midwife")

	return &Form{
		Type:        TypePrenatal,
		SubjectName: subjectName(name),
		Date:        date,
		Metadata: map[string]string{
			"form_date":       date,
			"gestational_age": in.GestationalAge.ForceValue(),
			"patient_name":    in.Patient.FullName(),
			"generated_at":    generatedAt(now),
		},
		Document: p.finish(),
	}
}
