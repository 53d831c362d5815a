package rips

import (
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/app/services/classifier"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/utils"
	"fmt"
	"time"
)

// ConversionResult carries everything one conversion run produced. A patient
// whose records cannot be converted contributes to Errors without stopping
// the remaining patients.
type ConversionResult struct {
	Document *models.RIPSDocument
	Warnings []string
	Errors   []string
}

type Converter struct {
	Catalog contracts.ServiceCatalog
	Now     func() time.Time
}

func NewConverter(catalog contracts.ServiceCatalog) *Converter {
	return &Converter{
		Catalog: catalog,
		Now:     time.Now,
	}
}

// Convert folds the aggregated patient records into a RIPS document. Users and
// service blocks stay parallel lists linked by consecutivo, assigned from the
// 1-based position in the patient ordering.
func (c *Converter) Convert(records []models.PatientRecords, billerID, invoiceNumber string, noInvoice bool) *ConversionResult {
	result := &ConversionResult{
		Document: &models.RIPSDocument{
			BillerID:      billerID,
			InvoiceNumber: invoiceNumber,
			NoInvoice:     noInvoice,
			Users:         []models.RIPSUser{},
			Services:      []models.RIPSServiceBlock{},
		},
		Warnings: []string{},
		Errors:   []string{},
	}

	for _, record := range records {
		sequence := len(result.Document.Users) + 1
		user, warnings, err := c.convertPatient(record.Patient, sequence)
		if err != nil {
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		block := models.NewRIPSServiceBlock(sequence)
		eventErrors := []string{}
		for _, event := range record.Events {
			if err := c.appendEvent(&block, event); err != nil {
				eventErrors = append(eventErrors, fmt.Sprintf("paciente %s: %s", record.Patient.ID, err.Error()))
			}
		}
		if block.IsEmpty() {
			if len(eventErrors) > 0 {
				result.Errors = append(result.Errors, eventErrors...)
			} else {
				result.Errors = append(result.Errors, fmt.Sprintf("paciente %s: sin servicios convertibles en el periodo", record.Patient.ID))
			}
			continue
		}

		result.Document.Users = append(result.Document.Users, user)
		result.Document.Services = append(result.Document.Services, block)
		result.Warnings = append(result.Warnings, warnings...)
		result.Errors = append(result.Errors, eventErrors...)
	}
	return result
}

func (c *Converter) convertPatient(patient models.Patient, sequence int) (models.RIPSUser, []string, error) {
	if patient.DocumentNumber == "" {
		return models.RIPSUser{}, nil, fmt.Errorf("paciente %s: sin numero de documento de identificacion", patient.ID)
	}
	if patient.BirthDate.IsZero() {
		return models.RIPSUser{}, nil, fmt.Errorf("paciente %s: sin fecha de nacimiento", patient.ID)
	}

	warnings := documentTypeWarnings(patient, c.Now())

	countryCode := patient.CountryCode
	if countryCode == "" {
		countryCode = constvars.RIPSDefaultCountryCode
	}
	zoneCode := patient.ZoneCode
	if zoneCode == "" {
		zoneCode = constvars.RIPSDefaultZoneCode
	}
	userType := constvars.RIPSUserTypeContributory
	if patient.Regime == "subsidiado" {
		userType = constvars.RIPSUserTypeSubsidized
	}

	return models.RIPSUser{
		DocumentType:     patient.DocumentType,
		DocumentNumber:   patient.DocumentNumber,
		UserType:         userType,
		BirthDate:        utils.FormatRIPSDate(patient.BirthDate.Time()),
		Sex:              patient.Sex,
		CountryCode:      countryCode,
		MunicipalityCode: patient.MunicipalityCode,
		ZoneCode:         zoneCode,
		Disability:       constvars.RIPSDisabilityNotApplicable,
		Sequence:         sequence,
	}, warnings, nil
}

func (c *Converter) appendEvent(block *models.RIPSServiceBlock, event models.ServiceEvent) error {
	date := event.Date()
	if date.IsZero() {
		return fmt.Errorf("registro %s sin fecha de atencion", string(event.Kind))
	}
	professional := event.ProfessionalIdentity()

	switch event.Kind {
	case models.ServiceEventConsultation:
		category := classifier.ClassifyConsultation(event.Consultation.Reason)
		entry := c.Catalog.EntryOf(category.CatalogKey())
		value := event.Consultation.Value
		if value == 0 {
			value = entry.Value
		}
		diagnosis := event.Consultation.Diagnosis
		if diagnosis == "" {
			diagnosis = classifier.ClassifyDiagnosis(event.Consultation.Reason)
		}
		block.Consultations = append(block.Consultations, models.RIPSConsultation{
			StartDate:        utils.FormatRIPSDateTime(date.Time()),
			CUPSCode:         entry.Code,
			Modality:         entry.Modality,
			ServiceGroup:     entry.ServiceGroup,
			Finality:         entry.Finality,
			PrincipalDx:      diagnosis,
			Value:            value,
			ProfessionalID:   professional.ID,
			ProfessionalName: professional.Name,
		})

	case models.ServiceEventGroupSession:
		category := classifier.ClassifyProcedure(event.GroupSession.Title)
		entry := c.Catalog.EntryOf(category.CatalogKey())
		block.Procedures = append(block.Procedures, models.RIPSProcedure{
			StartDate:        utils.FormatRIPSDateTime(date.Time()),
			CUPSCode:         entry.Code,
			Modality:         entry.Modality,
			ServiceGroup:     entry.ServiceGroup,
			Finality:         entry.Finality,
			PrincipalDx:      entry.Diagnosis,
			Value:            entry.Value,
			ProfessionalID:   professional.ID,
			ProfessionalName: professional.Name,
		})

	case models.ServiceEventPerinatal:
		category := classifier.ClassifyConsultation(event.PerinatalSession.SessionType)
		if category == classifier.ConsultationGeneral {
			category = classifier.ConsultationPrenatal
		}
		entry := c.Catalog.EntryOf(category.CatalogKey())
		value := event.PerinatalSession.Value
		if value == 0 {
			value = entry.Value
		}
		block.Consultations = append(block.Consultations, models.RIPSConsultation{
			StartDate:        utils.FormatRIPSDateTime(date.Time()),
			CUPSCode:         entry.Code,
			Modality:         entry.Modality,
			ServiceGroup:     entry.ServiceGroup,
			Finality:         entry.Finality,
			PrincipalDx:      entry.Diagnosis,
			Value:            value,
			ProfessionalID:   professional.ID,
			ProfessionalName: professional.Name,
		})

	default:
		return fmt.Errorf("tipo de registro desconocido %q", string(event.Kind))
	}
	return nil
}

// documentTypeWarnings flags document types inconsistent with the patient's
// age at generation time. Mismatches are advisory only and never block the
// user from entering the document.
func documentTypeWarnings(patient models.Patient, now time.Time) []string {
	age := utils.AgeAt(patient.BirthDate.Time(), now)
	docType := patient.DocumentType

	allowed := map[string]bool{}
	switch {
	case age < 7:
		allowed = map[string]bool{
			constvars.DocumentTypeCivilRegistry:     true,
			constvars.DocumentTypeBirthCertificate:  true,
			constvars.DocumentTypeUnidentifiedMinor: true,
		}
	case age < 18:
		allowed = map[string]bool{
			constvars.DocumentTypeIdentityCard:      true,
			constvars.DocumentTypeUnidentifiedMinor: true,
		}
	default:
		return nil
	}

	if allowed[docType] {
		return nil
	}
	return []string{fmt.Sprintf(
		"paciente %s: tipo de documento %s inusual para edad %d",
		patient.ID, docType, age,
	)}
}
