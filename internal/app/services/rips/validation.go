package rips

import (
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"fmt"
)

// ValidateDocument runs the submission rules over a built document and returns
// every violation found. The three rules always run; one failing never hides
// the others.
func ValidateDocument(document *models.RIPSDocument) []string {
	violations := []string{}

	// RVG01: biller identification plus exactly one invoice identity.
	if document.BillerID == "" {
		violations = append(violations, fmt.Sprintf(
			"%s: falta numDocumentoIdObligado", constvars.RIPSRuleBillerAndInvoice))
	}
	if (document.InvoiceNumber != "") == document.NoInvoice {
		violations = append(violations, fmt.Sprintf(
			"%s: se requiere numFactura o sinFactura, no ambos ni ninguno", constvars.RIPSRuleBillerAndInvoice))
	}

	// RVG03: every service block carries at least one service, and the
	// document as a whole carries at least one. A batch where every patient
	// failed conversion arrives here with no blocks at all.
	hasService := false
	for _, block := range document.Services {
		if block.IsEmpty() {
			violations = append(violations, fmt.Sprintf(
				"%s: bloque de servicios %d sin servicios", constvars.RIPSRuleAtLeastOneService, block.Sequence))
			continue
		}
		hasService = true
	}
	if !hasService {
		violations = append(violations, fmt.Sprintf(
			"%s: no se encontraron servicios en el documento", constvars.RIPSRuleAtLeastOneService))
	}

	// RVG07: every service block references a declared user and vice versa.
	users := make(map[int]bool, len(document.Users))
	for _, user := range document.Users {
		users[user.Sequence] = true
	}
	blocks := make(map[int]bool, len(document.Services))
	for _, block := range document.Services {
		blocks[block.Sequence] = true
		if !users[block.Sequence] {
			violations = append(violations, fmt.Sprintf(
				"%s: bloque de servicios %d sin usuario declarado", constvars.RIPSRuleServicesHaveUser, block.Sequence))
		}
	}
	for _, user := range document.Users {
		if !blocks[user.Sequence] {
			violations = append(violations, fmt.Sprintf(
				"%s: usuario %d sin bloque de servicios", constvars.RIPSRuleServicesHaveUser, user.Sequence))
		}
	}

	return violations
}
