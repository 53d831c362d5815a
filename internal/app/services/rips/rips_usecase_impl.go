package rips

import (
	"context"
	"fisiosalud-service/internal/app/config"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/dto/requests"
	"fisiosalud-service/internal/pkg/dto/responses"
	"fisiosalud-service/internal/pkg/exceptions"
	"fisiosalud-service/internal/pkg/utils"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ripsUsecase struct {
	Aggregator      contracts.RecordAggregator
	Converter       *Converter
	RedisRepository contracts.RedisRepository
	StorageService  contracts.StorageService
	AuditPublisher  contracts.AuditPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewRIPSUsecase(
	aggregator contracts.RecordAggregator,
	converter *Converter,
	redisRepository contracts.RedisRepository,
	storageService contracts.StorageService,
	auditPublisher contracts.AuditPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.RIPSUsecase {
	return &ripsUsecase{
		Aggregator:      aggregator,
		Converter:       converter,
		RedisRepository: redisRepository,
		StorageService:  storageService,
		AuditPublisher:  auditPublisher,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *ripsUsecase) GenerateRIPS(ctx context.Context, request *requests.GenerateRIPSRequest) (*responses.GenerateRIPSResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.HasInvoiceIdentity() {
		return nil, exceptions.ErrInvoiceIdentityRequired(fmt.Errorf("invoiceNumber=%q noInvoice=%t", request.InvoiceNumber, request.NoInvoice))
	}
	if !request.HasScope() {
		return nil, exceptions.ErrDateRangeOrPatientsRequired(fmt.Errorf("empty patientIds and date range"))
	}
	from, to, err := request.DateRange()
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if cached := uc.cachedResult(ctx, request.InvoiceNumber); cached != nil {
		uc.Log.Info("rips document served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInvoiceKey, request.InvoiceNumber),
		)
		return cached, nil
	}

	records, err := uc.Aggregator.Collect(ctx, request.PatientIDs, from, to)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, exceptions.ErrNoPatientsFound(fmt.Errorf("no service records matched the request scope"))
	}

	conversion := uc.Converter.Convert(records, uc.InternalConfig.RIPS.BillerID, request.InvoiceNumber, request.NoInvoice)
	result := &responses.GenerateRIPSResult{
		Document: conversion.Document,
		Summary:  summarize(conversion),
		Warnings: conversion.Warnings,
		Errors:   conversion.Errors,
	}
	result.Errors = append(result.Errors, ValidateDocument(conversion.Document)...)
	if len(result.Errors) > 0 {
		return result, nil
	}

	if request.Export {
		objectName, err := uc.exportDocument(ctx, result)
		if err != nil {
			return nil, err
		}
		result.Summary.ExportObjectName = objectName
	}

	uc.cacheResult(ctx, request.InvoiceNumber, result)
	uc.publishAudit(ctx, request, result)

	uc.Log.Info("rips document generated",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceKey, request.InvoiceNumber),
		zap.Int("users_processed", result.Summary.UsersProcessed),
		zap.Int("warning_count", len(result.Warnings)),
	)
	return result, nil
}

func summarize(conversion *ConversionResult) responses.RIPSSummary {
	summary := responses.RIPSSummary{
		UsersProcessed: len(conversion.Document.Users),
		ServiceBlocks:  len(conversion.Document.Services),
	}
	for _, block := range conversion.Document.Services {
		summary.TotalConsultations += len(block.Consultations)
		summary.TotalProcedures += len(block.Procedures)
	}
	return summary
}

// cachedResult returns the previously generated result for an invoice, or nil
// on miss. Cache failures degrade to a regeneration, never to an error.
func (uc *ripsUsecase) cachedResult(ctx context.Context, invoiceNumber string) *responses.GenerateRIPSResult {
	if invoiceNumber == "" {
		return nil
	}
	key := fmt.Sprintf(constvars.RedisRIPSInvoiceKeyFormat, invoiceNumber)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	var result responses.GenerateRIPSResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		uc.Log.Warn("discarding malformed cached rips document",
			zap.String(constvars.LoggingInvoiceKey, invoiceNumber),
			zap.Error(err),
		)
		return nil
	}
	result.FromCache = true
	return &result
}

func (uc *ripsUsecase) cacheResult(ctx context.Context, invoiceNumber string, result *responses.GenerateRIPSResult) {
	if invoiceNumber == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	key := fmt.Sprintf(constvars.RedisRIPSInvoiceKeyFormat, invoiceNumber)
	ttl := time.Duration(uc.InternalConfig.RIPS.CacheTTLInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, key, string(payload), ttl); err != nil {
		uc.Log.Warn("failed to cache rips document",
			zap.String(constvars.LoggingInvoiceKey, invoiceNumber),
			zap.Error(err),
		)
	}
}

func (uc *ripsUsecase) exportDocument(ctx context.Context, result *responses.GenerateRIPSResult) (string, error) {
	payload, err := json.Marshal(result.Document)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	identity := result.Document.InvoiceNumber
	if identity == "" {
		identity = fmt.Sprintf("sin-factura-%d", time.Now().Unix())
	}
	objectName := fmt.Sprintf(constvars.MinioRIPSObjectNameFormat, identity)
	if _, err := uc.StorageService.UploadJSON(ctx, objectName, payload); err != nil {
		return "", err
	}
	uc.Log.Info("rips document exported",
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return objectName, nil
}

func (uc *ripsUsecase) publishAudit(ctx context.Context, request *requests.GenerateRIPSRequest, result *responses.GenerateRIPSResult) {
	event := contracts.RIPSAuditEvent{
		InvoiceNumber:  request.InvoiceNumber,
		NoInvoice:      request.NoInvoice,
		UsersProcessed: result.Summary.UsersProcessed,
		ErrorCount:     len(result.Errors),
		WarningCount:   len(result.Warnings),
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := uc.AuditPublisher.PublishRIPSGenerated(ctx, event); err != nil {
		uc.Log.Warn("failed to publish rips audit event",
			zap.String(constvars.LoggingQueueKey, uc.InternalConfig.RIPS.AuditQueue),
			zap.Error(err),
		)
	}
}
