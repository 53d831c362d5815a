package rips

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDocument() *models.RIPSDocument {
	block := models.NewRIPSServiceBlock(1)
	block.Consultations = append(block.Consultations, models.RIPSConsultation{
		StartDate: "2024-05-10 14:30",
		CUPSCode:  "890201",
		Value:     60000,
	})
	return &models.RIPSDocument{
		BillerID:      "901234567",
		InvoiceNumber: "FV-100",
		Users:         []models.RIPSUser{{DocumentNumber: "52123456", Sequence: 1}},
		Services:      []models.RIPSServiceBlock{block},
	}
}

func TestValidateDocument(t *testing.T) {
	t.Run("Valid document has no violations", func(t *testing.T) {
		assert.Empty(t, ValidateDocument(validDocument()))
	})

	t.Run("Missing biller and invoice identity both violate RVG01", func(t *testing.T) {
		document := validDocument()
		document.BillerID = ""
		document.InvoiceNumber = ""
		document.NoInvoice = false

		violations := ValidateDocument(document)

		assert.Len(t, violations, 2)
		for _, violation := range violations {
			assert.Contains(t, violation, constvars.RIPSRuleBillerAndInvoice)
		}
	})

	t.Run("Invoice number and sinFactura together violate RVG01", func(t *testing.T) {
		document := validDocument()
		document.NoInvoice = true

		violations := ValidateDocument(document)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], constvars.RIPSRuleBillerAndInvoice)
	})

	t.Run("Empty service block violates RVG03", func(t *testing.T) {
		document := validDocument()
		document.Services[0] = models.NewRIPSServiceBlock(1)

		violations := ValidateDocument(document)

		assert.Len(t, violations, 2)
		for _, violation := range violations {
			assert.Contains(t, violation, constvars.RIPSRuleAtLeastOneService)
		}
	})

	t.Run("Document without service blocks violates RVG03", func(t *testing.T) {
		document := &models.RIPSDocument{
			BillerID:      "901234567",
			InvoiceNumber: "FV-100",
			Users:         []models.RIPSUser{},
			Services:      []models.RIPSServiceBlock{},
		}

		violations := ValidateDocument(document)

		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], constvars.RIPSRuleAtLeastOneService)
	})

	t.Run("Orphan service block violates RVG07", func(t *testing.T) {
		document := validDocument()
		document.Services[0].Sequence = 2

		violations := ValidateDocument(document)

		assert.Len(t, violations, 2)
		for _, violation := range violations {
			assert.Contains(t, violation, constvars.RIPSRuleServicesHaveUser)
		}
	})

	t.Run("All rules report together", func(t *testing.T) {
		document := validDocument()
		document.BillerID = ""
		document.Services[0] = models.NewRIPSServiceBlock(5)

		violations := ValidateDocument(document)

		assert.Len(t, violations, 5)
	})
}
