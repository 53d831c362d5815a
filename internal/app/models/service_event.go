package models

// Professional identifies the treating professional or instructor attached to
// a service record. Legacy records may omit it entirely.
type Professional struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"nombre" json:"name"`
}

// PlaceholderProfessional is used whenever a record carries no professional
// identity at all.
var PlaceholderProfessional = Professional{ID: "0", Name: "Profesional no registrado"}

type Consultation struct {
	ID              string        `bson:"_id,omitempty" json:"id"`
	PatientID       string        `bson:"pacienteId" json:"patientId"`
	Date            FlexDate      `bson:"fecha" json:"date"`
	Reason          string        `bson:"motivoConsulta" json:"reason"`
	Diagnosis       string        `bson:"diagnostico" json:"diagnosis,omitempty"`
	Professional    *Professional `bson:"profesional,omitempty" json:"professional,omitempty"`
	Value           float64       `bson:"valor" json:"value"`
	PersonalHistory string        `bson:"antecedentesPersonales" json:"personalHistory,omitempty"`
	FamilyHistory   string        `bson:"antecedentesFamiliares" json:"familyHistory,omitempty"`
	Allergies       string        `bson:"alergias" json:"allergies,omitempty"`
	Medications     string        `bson:"medicamentos" json:"medications,omitempty"`
	TreatmentPlan   string        `bson:"planTratamiento" json:"treatmentPlan,omitempty"`
}

type GroupSession struct {
	ID         string        `bson:"_id,omitempty" json:"id"`
	Date       FlexDate      `bson:"fecha" json:"date"`
	Title      string        `bson:"titulo" json:"title"`
	Instructor *Professional `bson:"instructor,omitempty" json:"instructor,omitempty"`
	PatientIDs []string      `bson:"pacienteIds" json:"patientIds"`
}

type PerinatalSession struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	PatientID    string        `bson:"pacienteId" json:"patientId"`
	Date         FlexDate      `bson:"fecha" json:"date"`
	SessionType  string        `bson:"tipoSesion" json:"sessionType,omitempty"`
	Professional *Professional `bson:"profesional,omitempty" json:"professional,omitempty"`
	Value        float64       `bson:"valor" json:"value"`
}

type ServiceEventKind string

const (
	ServiceEventConsultation ServiceEventKind = "consultation"
	ServiceEventGroupSession ServiceEventKind = "group_session"
	ServiceEventPerinatal    ServiceEventKind = "perinatal_session"
)

// ServiceEvent is the read-only container over the three record variants.
// Exactly one of the pointers is set, matching Kind.
type ServiceEvent struct {
	Kind             ServiceEventKind
	Consultation     *Consultation
	GroupSession     *GroupSession
	PerinatalSession *PerinatalSession
}

func (e ServiceEvent) Date() FlexDate {
	switch e.Kind {
	case ServiceEventConsultation:
		return e.Consultation.Date
	case ServiceEventGroupSession:
		return e.GroupSession.Date
	case ServiceEventPerinatal:
		return e.PerinatalSession.Date
	}
	return FlexDate{}
}

// ProfessionalIdentity resolves the professional attached to the event.
// Precedence: the record's own professional, then the group session
// instructor, then the fixed placeholder.
func (e ServiceEvent) ProfessionalIdentity() Professional {
	switch e.Kind {
	case ServiceEventConsultation:
		if e.Consultation.Professional != nil && e.Consultation.Professional.Name != "" {
			return *e.Consultation.Professional
		}
	case ServiceEventGroupSession:
		if e.GroupSession.Instructor != nil && e.GroupSession.Instructor.Name != "" {
			return *e.GroupSession.Instructor
		}
	case ServiceEventPerinatal:
		if e.PerinatalSession.Professional != nil && e.PerinatalSession.Professional.Name != "" {
			return *e.PerinatalSession.Professional
		}
	}
	return PlaceholderProfessional
}
