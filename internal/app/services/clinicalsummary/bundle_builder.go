package clinicalsummary

import (
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/fhir_dto"
	"time"

	"github.com/google/uuid"
)

type sectionDef struct {
	title     string
	loincCode string
}

var (
	sectionEncounters  = sectionDef{constvars.SectionTitleEncounters, constvars.LoincSectionEncounters}
	sectionProblems    = sectionDef{constvars.SectionTitleProblems, constvars.LoincSectionProblems}
	sectionAllergies   = sectionDef{constvars.SectionTitleAllergies, constvars.LoincSectionAllergies}
	sectionMedications = sectionDef{constvars.SectionTitleMedications, constvars.LoincSectionMedications}
	sectionFamilyHist  = sectionDef{constvars.SectionTitleFamilyHist, constvars.LoincSectionFamilyHist}
	sectionCarePlan    = sectionDef{constvars.SectionTitleCarePlan, constvars.LoincSectionCarePlan}
)

// bundleBuilder assembles a FHIR document bundle around a single Composition.
// AddSectioned appends the resource entry and its section reference in one
// step, so a resource appears in the bundle exactly when a section points at
// it.
type bundleBuilder struct {
	composition *fhir_dto.Composition
	entries     []fhir_dto.BundleEntry
	sections    map[string]*fhir_dto.CompositionSection
	order       []string
}

func newBundleBuilder(title string, subject, author fhir_dto.Reference, now time.Time) *bundleBuilder {
	return &bundleBuilder{
		composition: &fhir_dto.Composition{
			ResourceType: constvars.ResourceComposition,
			ID:           uuid.NewString(),
			Status:       constvars.FhirCompositionStatusFinal,
			Type: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{
					System: constvars.FhirSystemLoinc,
					Code:   constvars.LoincPatientSummaryDoc,
				}},
				Text: title,
			},
			Subject: subject,
			Date:    now.Format(time.RFC3339),
			Author:  []fhir_dto.Reference{author},
			Title:   title,
		},
		sections: map[string]*fhir_dto.CompositionSection{},
	}
}

// AddEntry places a standalone resource in the bundle without a section
// reference. Used for the subject, author and participant resources the
// Composition itself points at.
func (b *bundleBuilder) AddEntry(resource interface{}, ref fhir_dto.Reference) {
	b.entries = append(b.entries, fhir_dto.BundleEntry{
		FullUrl:  ref.Reference,
		Resource: resource,
	})
}

func (b *bundleBuilder) AddSectioned(def sectionDef, resource interface{}, ref fhir_dto.Reference) {
	section, ok := b.sections[def.loincCode]
	if !ok {
		section = &fhir_dto.CompositionSection{
			Title: def.title,
			Code: fhir_dto.CodeableConcept{
				Coding: []fhir_dto.Coding{{
					System: constvars.FhirSystemLoinc,
					Code:   def.loincCode,
				}},
				Text: def.title,
			},
		}
		b.sections[def.loincCode] = section
		b.order = append(b.order, def.loincCode)
	}
	section.Entry = append(section.Entry, ref)
	b.entries = append(b.entries, fhir_dto.BundleEntry{
		FullUrl:  ref.Reference,
		Resource: resource,
	})
}

func (b *bundleBuilder) Build(now time.Time) *fhir_dto.DocumentBundle {
	for _, code := range b.order {
		b.composition.Section = append(b.composition.Section, *b.sections[code])
	}

	entries := make([]fhir_dto.BundleEntry, 0, len(b.entries)+1)
	entries = append(entries, fhir_dto.BundleEntry{
		FullUrl:  constvars.ResourceComposition + "/" + b.composition.ID,
		Resource: b.composition,
	})
	entries = append(entries, b.entries...)

	return &fhir_dto.DocumentBundle{
		ResourceType: constvars.ResourceBundle,
		ID:           uuid.NewString(),
		Type:         constvars.FhirBundleTypeDocument,
		Timestamp:    now.Format(time.RFC3339),
		Entry:        entries,
	}
}
