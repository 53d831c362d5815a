package models

type Patient struct {
	ID               string   `bson:"_id,omitempty" json:"id"`
	DocumentType     string   `bson:"tipoDocumento" json:"documentType"`
	DocumentNumber   string   `bson:"numeroDocumento" json:"documentNumber"`
	GivenNames       string   `bson:"nombres" json:"givenNames"`
	FamilyNames      string   `bson:"apellidos" json:"familyNames"`
	BirthDate        FlexDate `bson:"fechaNacimiento" json:"birthDate"`
	Sex              string   `bson:"sexo" json:"sex"`
	CountryCode      string   `bson:"codPaisResidencia" json:"countryCode"`
	MunicipalityCode string   `bson:"codMunicipioResidencia" json:"municipalityCode"`
	ZoneCode         string   `bson:"codZonaTerritorial" json:"zoneCode"`
	Regime           string   `bson:"regimen" json:"regime"`
}

func (p Patient) FullName() string {
	if p.GivenNames == "" {
		return p.FamilyNames
	}
	if p.FamilyNames == "" {
		return p.GivenNames
	}
	return p.GivenNames + " " + p.FamilyNames
}

// PatientRecords pairs a patient with the service events found for them in
// the requested window. Aggregation never emits an entry with zero events.
type PatientRecords struct {
	Patient Patient
	Events  []ServiceEvent
}
