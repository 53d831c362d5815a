package classifier

import (
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/utils"
	"strings"
)

type ConsultationCategory string

const (
	ConsultationGeneral   ConsultationCategory = "general"
	ConsultationPrenatal  ConsultationCategory = "prenatal"
	ConsultationPostnatal ConsultationCategory = "postnatal"
	ConsultationLactation ConsultationCategory = "lactation"
)

// CatalogKey maps the category to its service-catalog entry key.
func (c ConsultationCategory) CatalogKey() string {
	switch c {
	case ConsultationPrenatal:
		return constvars.CategoryPrenatalConsultation
	case ConsultationPostnatal:
		return constvars.CategoryPostnatalConsultation
	case ConsultationLactation:
		return constvars.CategoryLactationConsultation
	default:
		return constvars.CategoryGeneralConsultation
	}
}

type ProcedureCategory string

const (
	ProcedurePelvicFloor        ProcedureCategory = "pelvic-floor"
	ProcedureBirthPreparation   ProcedureCategory = "birth-preparation"
	ProcedureMassage            ProcedureCategory = "massage"
	ProcedureElectrotherapy     ProcedureCategory = "electrotherapy"
	ProcedureHydrotherapy       ProcedureCategory = "hydrotherapy"
	ProcedureGroupPhysical      ProcedureCategory = "group-physical-therapy"
	ProcedureIndividualPhysical ProcedureCategory = "individual-physical-therapy"
)

func (p ProcedureCategory) CatalogKey() string {
	switch p {
	case ProcedurePelvicFloor:
		return constvars.CategoryPelvicFloorReeducation
	case ProcedureBirthPreparation:
		return constvars.CategoryBirthPreparation
	case ProcedureMassage:
		return constvars.CategoryTherapeuticMassage
	case ProcedureElectrotherapy:
		return constvars.CategoryElectrotherapy
	case ProcedureHydrotherapy:
		return constvars.CategoryHydrotherapy
	case ProcedureGroupPhysical:
		return constvars.CategoryGroupPhysicalTherapy
	default:
		return constvars.CategoryIndividualPhysicalTherapy
	}
}

// ClassifyConsultation assigns a consultation category from the free-text
// reason. Rules run top to bottom, first match wins; empty or unmatched text
// yields the general category so billing entries always carry a code.
func ClassifyConsultation(reasonText string) ConsultationCategory {
	text := utils.NormalizeText(reasonText)
	if text == "" {
		return ConsultationGeneral
	}
	for _, rule := range consultationRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(text, pattern) {
				return rule.category
			}
		}
	}
	return ConsultationGeneral
}

// ClassifyProcedure assigns a procedure category from a session title.
// Defaults to individual physical therapy.
func ClassifyProcedure(titleText string) ProcedureCategory {
	text := utils.NormalizeText(titleText)
	if text == "" {
		return ProcedureIndividualPhysical
	}
	for _, rule := range procedureRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(text, pattern) {
				return rule.category
			}
		}
	}
	return ProcedureIndividualPhysical
}

// ClassifyDiagnosis maps the same free text to an ICD-10 code, falling back
// to the physiotherapy catch-all.
func ClassifyDiagnosis(reasonText string) string {
	text := utils.NormalizeText(reasonText)
	if text == "" {
		return constvars.DiagnosisPhysiotherapyGeneral
	}
	for _, rule := range diagnosisRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(text, pattern) {
				return rule.code
			}
		}
	}
	return constvars.DiagnosisPhysiotherapyGeneral
}
