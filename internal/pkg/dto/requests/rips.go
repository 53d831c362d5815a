package requests

import (
	"fisiosalud-service/internal/pkg/constvars"
	"time"
)

// GenerateRIPSRequest scopes a generation run. Exactly one of InvoiceNumber
// or NoInvoice must be supplied; when PatientIDs is empty at least one side
// of the date range is required so the patient set can be derived.
type GenerateRIPSRequest struct {
	InvoiceNumber string   `json:"invoiceNumber,omitempty"`
	NoInvoice     bool     `json:"noInvoice,omitempty"`
	PatientIDs    []string `json:"patientIds,omitempty"`
	DateFrom      string   `json:"dateFrom,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateTo        string   `json:"dateTo,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Export        bool     `json:"export,omitempty"`
}

func (r *GenerateRIPSRequest) HasInvoiceIdentity() bool {
	return (r.InvoiceNumber != "") != r.NoInvoice
}

func (r *GenerateRIPSRequest) HasScope() bool {
	return len(r.PatientIDs) > 0 || r.DateFrom != "" || r.DateTo != ""
}

// DateRange parses the optional bounds. The upper bound becomes the midnight
// after the closing date, an exclusive limit, so every timestamp on the
// closing day is covered including the final second.
func (r *GenerateRIPSRequest) DateRange() (from, to time.Time, err error) {
	if r.DateFrom != "" {
		from, err = time.Parse(constvars.RIPSDateLayout, r.DateFrom)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if r.DateTo != "" {
		to, err = time.Parse(constvars.RIPSDateLayout, r.DateTo)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = to.Add(24 * time.Hour)
	}
	return from, to, nil
}
