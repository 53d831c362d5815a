package catalog

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
)

// DefaultEntries seeds the registry when the catalog collection is empty or
// misses a category. Codes are CUPS, values in COP.
func DefaultEntries() []models.CatalogEntry {
	return []models.CatalogEntry{
		{Key: constvars.CategoryGeneralConsultation, Code: "890201", Value: 60000, Finality: "10", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "01", Modality: "01"},
		{Key: constvars.CategoryPrenatalConsultation, Code: "890301", Value: 70000, Finality: "02", Diagnosis: constvars.DiagnosisPregnancySupervision, ServiceGroup: "01", Modality: "01"},
		{Key: constvars.CategoryPostnatalConsultation, Code: "890301", Value: 70000, Finality: "03", Diagnosis: constvars.DiagnosisPostpartumFollowUp, ServiceGroup: "01", Modality: "01"},
		{Key: constvars.CategoryLactationConsultation, Code: "890301", Value: 65000, Finality: "04", Diagnosis: constvars.DiagnosisLactationDisorder, ServiceGroup: "01", Modality: "01"},
		{Key: constvars.CategoryPelvicFloorReeducation, Code: "931401", Value: 80000, Finality: "44", Diagnosis: constvars.DiagnosisUrinaryIncontinence, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryBirthPreparation, Code: "990203", Value: 50000, Finality: "02", Diagnosis: constvars.DiagnosisPregnancySupervision, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryTherapeuticMassage, Code: "931601", Value: 55000, Finality: "44", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryElectrotherapy, Code: "931200", Value: 45000, Finality: "44", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryHydrotherapy, Code: "931100", Value: 65000, Finality: "44", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryGroupPhysicalTherapy, Code: "931000", Value: 40000, Finality: "44", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "02", Modality: "01"},
		{Key: constvars.CategoryIndividualPhysicalTherapy, Code: "931001", Value: 60000, Finality: "44", Diagnosis: constvars.DiagnosisPhysiotherapyGeneral, ServiceGroup: "02", Modality: "01"},
	}
}
