package classifier

import (
	"fisiosalud-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyConsultation(t *testing.T) {
	t.Run("Prenatal from reason with diacritics and mixed case", func(t *testing.T) {
		assert.Equal(t, ConsultationPrenatal, ClassifyConsultation("Control de EMBARAZO semana 24"))
		assert.Equal(t, ConsultationPrenatal, ClassifyConsultation("valoración de gestación"))
	})

	t.Run("Postnatal", func(t *testing.T) {
		assert.Equal(t, ConsultationPostnatal, ClassifyConsultation("seguimiento posparto"))
		assert.Equal(t, ConsultationPostnatal, ClassifyConsultation("control de puerperio"))
	})

	t.Run("Lactation", func(t *testing.T) {
		assert.Equal(t, ConsultationLactation, ClassifyConsultation("asesoría en lactancia materna"))
	})

	t.Run("First matching rule wins", func(t *testing.T) {
		// "embarazo" appears in an earlier rule than "parto".
		assert.Equal(t, ConsultationPrenatal, ClassifyConsultation("embarazo cercano al parto"))
	})

	t.Run("Unmatched and empty default to general", func(t *testing.T) {
		assert.Equal(t, ConsultationGeneral, ClassifyConsultation("dolor lumbar crónico"))
		assert.Equal(t, ConsultationGeneral, ClassifyConsultation(""))
		assert.Equal(t, ConsultationGeneral, ClassifyConsultation("   "))
	})
}

func TestClassifyProcedure(t *testing.T) {
	t.Run("Pelvic floor wins over group keyword", func(t *testing.T) {
		assert.Equal(t, ProcedurePelvicFloor, ClassifyProcedure("Terapia Grupal de Piso Pélvico"))
	})

	t.Run("Birth preparation", func(t *testing.T) {
		assert.Equal(t, ProcedureBirthPreparation, ClassifyProcedure("Curso de preparación al parto"))
	})

	t.Run("Massage", func(t *testing.T) {
		assert.Equal(t, ProcedureMassage, ClassifyProcedure("Masaje terapéutico"))
	})

	t.Run("Electrotherapy", func(t *testing.T) {
		assert.Equal(t, ProcedureElectrotherapy, ClassifyProcedure("Aplicación de TENS"))
	})

	t.Run("Hydrotherapy", func(t *testing.T) {
		assert.Equal(t, ProcedureHydrotherapy, ClassifyProcedure("Terapia acuática"))
	})

	t.Run("Group without a more specific match", func(t *testing.T) {
		assert.Equal(t, ProcedureGroupPhysical, ClassifyProcedure("Sesión grupal de estiramiento"))
	})

	t.Run("Default is individual physical therapy", func(t *testing.T) {
		assert.Equal(t, ProcedureIndividualPhysical, ClassifyProcedure("Fortalecimiento de rodilla"))
		assert.Equal(t, ProcedureIndividualPhysical, ClassifyProcedure(""))
	})
}

func TestClassifyDiagnosis(t *testing.T) {
	t.Run("Known patterns map to their ICD-10 code", func(t *testing.T) {
		assert.Equal(t, constvars.DiagnosisPregnancySupervision, ClassifyDiagnosis("control de embarazo"))
		assert.Equal(t, constvars.DiagnosisPostpartumFollowUp, ClassifyDiagnosis("recuperación posparto"))
		assert.Equal(t, constvars.DiagnosisLactationDisorder, ClassifyDiagnosis("dificultad para amamantar"))
		assert.Equal(t, constvars.DiagnosisUrinaryIncontinence, ClassifyDiagnosis("Incontinencia urinaria de esfuerzo"))
		assert.Equal(t, constvars.DiagnosisDevelopmentalDelay, ClassifyDiagnosis("retraso del desarrollo"))
	})

	t.Run("Falls back to the physiotherapy catch-all", func(t *testing.T) {
		assert.Equal(t, constvars.DiagnosisPhysiotherapyGeneral, ClassifyDiagnosis("dolor de hombro"))
		assert.Equal(t, constvars.DiagnosisPhysiotherapyGeneral, ClassifyDiagnosis(""))
	})
}
