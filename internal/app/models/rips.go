package models

// RIPSDocument is the submission payload. Users and Services are parallel
// lists linked by the consecutivo sequence number.
type RIPSDocument struct {
	BillerID      string             `json:"numDocumentoIdObligado"`
	InvoiceNumber string             `json:"numFactura,omitempty"`
	NoInvoice     bool               `json:"sinFactura,omitempty"`
	Users         []RIPSUser         `json:"usuarios"`
	Services      []RIPSServiceBlock `json:"servicios"`
}

type RIPSUser struct {
	DocumentType     string `json:"tipoDocumentoIdentificacion"`
	DocumentNumber   string `json:"numDocumentoIdentificacion"`
	UserType         string `json:"tipoUsuario"`
	BirthDate        string `json:"fechaNacimiento"`
	Sex              string `json:"codSexo"`
	CountryCode      string `json:"codPaisResidencia"`
	MunicipalityCode string `json:"codMunicipioResidencia"`
	ZoneCode         string `json:"codZonaTerritorialResidencia"`
	Disability       string `json:"incapacidad"`
	Sequence         int    `json:"consecutivo"`
}

// RIPSServiceBlock groups a user's services into the seven regulatory
// category buckets. Buckets this clinic never fills still serialize as empty
// arrays, which the submission validator requires.
type RIPSServiceBlock struct {
	Consultations    []RIPSConsultation    `json:"consultas"`
	Procedures       []RIPSProcedure       `json:"procedimientos"`
	Emergencies      []RIPSEmergency       `json:"urgencias"`
	Hospitalizations []RIPSHospitalization `json:"hospitalizacion"`
	Newborns         []RIPSNewborn         `json:"recienNacidos"`
	Medications      []RIPSMedication      `json:"medicamentos"`
	OtherServices    []RIPSOtherService    `json:"otrosServicios"`
	Sequence         int                   `json:"consecutivo"`
}

func NewRIPSServiceBlock(sequence int) RIPSServiceBlock {
	return RIPSServiceBlock{
		Consultations:    []RIPSConsultation{},
		Procedures:       []RIPSProcedure{},
		Emergencies:      []RIPSEmergency{},
		Hospitalizations: []RIPSHospitalization{},
		Newborns:         []RIPSNewborn{},
		Medications:      []RIPSMedication{},
		OtherServices:    []RIPSOtherService{},
		Sequence:         sequence,
	}
}

func (b RIPSServiceBlock) IsEmpty() bool {
	return len(b.Consultations) == 0 &&
		len(b.Procedures) == 0 &&
		len(b.Emergencies) == 0 &&
		len(b.Hospitalizations) == 0 &&
		len(b.Newborns) == 0 &&
		len(b.Medications) == 0 &&
		len(b.OtherServices) == 0
}

type RIPSConsultation struct {
	StartDate        string  `json:"fechaInicioAtencion"`
	CUPSCode         string  `json:"codConsulta"`
	Modality         string  `json:"modalidadGrupoServicioTecSal"`
	ServiceGroup     string  `json:"grupoServicios"`
	Finality         string  `json:"finalidadTecnologiaSalud"`
	PrincipalDx      string  `json:"codDiagnosticoPrincipal"`
	Value            float64 `json:"vrServicio"`
	ProfessionalID   string  `json:"numDocumentoProfesional,omitempty"`
	ProfessionalName string  `json:"nombreProfesional,omitempty"`
}

type RIPSProcedure struct {
	StartDate        string  `json:"fechaInicioAtencion"`
	CUPSCode         string  `json:"codProcedimiento"`
	Modality         string  `json:"modalidadGrupoServicioTecSal"`
	ServiceGroup     string  `json:"grupoServicios"`
	Finality         string  `json:"finalidadTecnologiaSalud"`
	PrincipalDx      string  `json:"codDiagnosticoPrincipal"`
	Value            float64 `json:"vrServicio"`
	ProfessionalID   string  `json:"numDocumentoProfesional,omitempty"`
	ProfessionalName string  `json:"nombreProfesional,omitempty"`
}

// The remaining buckets are never produced by this clinic's care lines but
// are part of the regulatory layout.

type RIPSEmergency struct {
	StartDate   string  `json:"fechaInicioAtencion"`
	PrincipalDx string  `json:"codDiagnosticoPrincipal"`
	Value       float64 `json:"vrServicio"`
}

type RIPSHospitalization struct {
	StartDate   string  `json:"fechaInicioAtencion"`
	PrincipalDx string  `json:"codDiagnosticoPrincipal"`
	Value       float64 `json:"vrServicio"`
}

type RIPSNewborn struct {
	BirthDate string `json:"fechaNacimiento"`
	Sex       string `json:"codSexo"`
}

type RIPSMedication struct {
	CodTech  string  `json:"codTecnologiaSalud"`
	Quantity float64 `json:"cantidadSuministrada"`
	Value    float64 `json:"vrServicio"`
}

type RIPSOtherService struct {
	CodTech  string  `json:"codTecnologiaSalud"`
	Quantity float64 `json:"cantidadOS"`
	Value    float64 `json:"vrServicio"`
}
