package responses

import "fisiosalud-service/internal/app/models"

// GenerateRIPSResult is what the RIPS usecase hands back to the controller.
// Errors carries validation failures plus per-patient conversion messages;
// the controller turns a non-empty Errors into a 400 body.
type GenerateRIPSResult struct {
	Document  *models.RIPSDocument `json:"rips"`
	Summary   RIPSSummary          `json:"summary"`
	Warnings  []string             `json:"warnings"`
	Errors    []string             `json:"-"`
	FromCache bool                 `json:"-"`
}

type RIPSSummary struct {
	UsersProcessed     int    `json:"usersProcessed"`
	ServiceBlocks      int    `json:"serviceBlocks"`
	TotalConsultations int    `json:"totalConsultations"`
	TotalProcedures    int    `json:"totalProcedures"`
	ExportObjectName   string `json:"exportObjectName,omitempty"`
}
