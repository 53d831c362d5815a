package classifier

import "fisiosalud-service/internal/pkg/constvars"

// Rule tables are ordered: earlier rules shadow later ones, and the order is
// part of the contract. Patterns are matched against normalized text
// (lowercase, no diacritics).

type consultationRule struct {
	patterns []string
	category ConsultationCategory
}

var consultationRules = []consultationRule{
	{patterns: []string{"embarazo", "embarazada", "prenatal", "gestacion", "gestante"}, category: ConsultationPrenatal},
	{patterns: []string{"parto", "puerperio", "postnatal", "posparto", "postparto"}, category: ConsultationPostnatal},
	{patterns: []string{"lactancia", "amamant"}, category: ConsultationLactation},
}

type procedureRule struct {
	patterns []string
	category ProcedureCategory
}

var procedureRules = []procedureRule{
	{patterns: []string{"piso pelvico", "suelo pelvico"}, category: ProcedurePelvicFloor},
	{patterns: []string{"preparacion al parto", "preparacion para el parto", "psicoprofilaxis"}, category: ProcedureBirthPreparation},
	{patterns: []string{"masaje"}, category: ProcedureMassage},
	{patterns: []string{"electroterapia", "electroestimulacion", "tens"}, category: ProcedureElectrotherapy},
	{patterns: []string{"hidroterapia", "acuatica", "acuatico"}, category: ProcedureHydrotherapy},
	{patterns: []string{"grupal", "grupo"}, category: ProcedureGroupPhysical},
}

type diagnosisRule struct {
	patterns []string
	code     string
}

var diagnosisRules = []diagnosisRule{
	{patterns: []string{"embarazo", "embarazada", "prenatal", "gestacion", "gestante"}, code: constvars.DiagnosisPregnancySupervision},
	{patterns: []string{"parto", "puerperio", "postnatal", "posparto", "postparto"}, code: constvars.DiagnosisPostpartumFollowUp},
	{patterns: []string{"lactancia", "amamant"}, code: constvars.DiagnosisLactationDisorder},
	{patterns: []string{"incontinencia"}, code: constvars.DiagnosisUrinaryIncontinence},
	{patterns: []string{"retraso", "desarrollo psicomotor"}, code: constvars.DiagnosisDevelopmentalDelay},
}
