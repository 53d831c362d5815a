package contracts

import "context"

// AuditPublisher emits informational events about generated documents.
// Publishing is best effort and must never fail a request.
type AuditPublisher interface {
	PublishRIPSGenerated(ctx context.Context, event RIPSAuditEvent) error
}

type RIPSAuditEvent struct {
	InvoiceNumber  string `json:"invoiceNumber,omitempty"`
	NoInvoice      bool   `json:"noInvoice,omitempty"`
	UsersProcessed int    `json:"usersProcessed"`
	ErrorCount     int    `json:"errorCount"`
	WarningCount   int    `json:"warningCount"`
	GeneratedAt    string `json:"generatedAt"`
}
