package constvars

// Category keys used by the service catalog. Lookups with an unknown key fall
// back to CategoryGeneralConsultation.
const (
	CategoryGeneralConsultation   = "general-consultation"
	CategoryPrenatalConsultation  = "prenatal-consultation"
	CategoryPostnatalConsultation = "postnatal-consultation"
	CategoryLactationConsultation = "lactation-consultation"

	CategoryPelvicFloorReeducation    = "pelvic-floor-reeducation"
	CategoryBirthPreparation          = "birth-preparation"
	CategoryTherapeuticMassage        = "therapeutic-massage"
	CategoryElectrotherapy            = "electrotherapy"
	CategoryHydrotherapy              = "hydrotherapy"
	CategoryGroupPhysicalTherapy      = "group-physical-therapy"
	CategoryIndividualPhysicalTherapy = "individual-physical-therapy"
)

// Identity document types (tipoDocumentoIdentificacion).
const (
	DocumentTypeCivilRegistry     = "RC"
	DocumentTypeIdentityCard      = "TI"
	DocumentTypeCitizenshipCard   = "CC"
	DocumentTypeForeignID         = "CE"
	DocumentTypePassport          = "PA"
	DocumentTypeSpecialPermit     = "PE"
	DocumentTypeBirthCertificate  = "CN"
	DocumentTypeUnidentifiedMinor = "MS"
)

const (
	RIPSUserTypeContributory = "01"
	RIPSUserTypeSubsidized   = "02"

	RIPSDisabilityNotApplicable = "NO"

	RIPSDefaultCountryCode = "170" // Colombia
	RIPSDefaultZoneCode    = "02"  // urbana
)

// ICD-10 diagnosis codes assigned by the diagnosis classifier.
const (
	DiagnosisPregnancySupervision = "Z349"
	DiagnosisPostpartumFollowUp   = "Z392"
	DiagnosisLactationDisorder    = "O927"
	DiagnosisUrinaryIncontinence  = "N393"
	DiagnosisDevelopmentalDelay   = "R620"
	DiagnosisPhysiotherapyGeneral = "Z514"
)

// Validation rule identifiers from the RIPS submission validator.
const (
	RIPSRuleBillerAndInvoice      = "RVG01"
	RIPSRuleAtLeastOneService     = "RVG03"
	RIPSRuleServicesHaveUser      = "RVG07"
)

const (
	RIPSDateLayout     = "2006-01-02"
	RIPSDateTimeLayout = "2006-01-02 15:04"
)
