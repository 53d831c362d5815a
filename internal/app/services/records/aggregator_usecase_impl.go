package records

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/app/models"
	"fisiosalud-service/internal/pkg/constvars"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type recordAggregator struct {
	PatientRepository          contracts.PatientRepository
	ConsultationRepository     contracts.ConsultationRepository
	GroupSessionRepository     contracts.GroupSessionRepository
	PerinatalSessionRepository contracts.PerinatalSessionRepository
	Log                        *zap.Logger
}

func NewRecordAggregator(
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
	groupSessionRepository contracts.GroupSessionRepository,
	perinatalSessionRepository contracts.PerinatalSessionRepository,
	logger *zap.Logger,
) contracts.RecordAggregator {
	return &recordAggregator{
		PatientRepository:          patientRepository,
		ConsultationRepository:     consultationRepository,
		GroupSessionRepository:     groupSessionRepository,
		PerinatalSessionRepository: perinatalSessionRepository,
		Log:                        logger,
	}
}

func (a *recordAggregator) Collect(ctx context.Context, patientIDs []string, from, to time.Time) ([]models.PatientRecords, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if len(patientIDs) == 0 {
		derived, err := a.derivePatientIDs(ctx, from, to)
		if err != nil {
			return nil, err
		}
		patientIDs = derived
	}
	if len(patientIDs) == 0 {
		return nil, nil
	}

	var (
		wg            sync.WaitGroup
		consultations []models.Consultation
		groupSessions []models.GroupSession
		perinatal     []models.PerinatalSession
		errs          [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		consultations, errs[0] = a.ConsultationRepository.FindByPatientsInRange(ctx, patientIDs, from, to)
	}()
	go func() {
		defer wg.Done()
		groupSessions, errs[1] = a.GroupSessionRepository.FindByPatientsInRange(ctx, patientIDs, from, to)
	}()
	go func() {
		defer wg.Done()
		perinatal, errs[2] = a.PerinatalSessionRepository.FindByPatientsInRange(ctx, patientIDs, from, to)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	requested := make(map[string]bool, len(patientIDs))
	for _, id := range patientIDs {
		requested[id] = true
	}

	eventsByPatient := make(map[string][]models.ServiceEvent)
	for i := range consultations {
		c := &consultations[i]
		eventsByPatient[c.PatientID] = append(eventsByPatient[c.PatientID], models.ServiceEvent{
			Kind:         models.ServiceEventConsultation,
			Consultation: c,
		})
	}
	for i := range groupSessions {
		s := &groupSessions[i]
		for _, attendeeID := range s.PatientIDs {
			if !requested[attendeeID] {
				continue
			}
			eventsByPatient[attendeeID] = append(eventsByPatient[attendeeID], models.ServiceEvent{
				Kind:         models.ServiceEventGroupSession,
				GroupSession: s,
			})
		}
	}
	for i := range perinatal {
		s := &perinatal[i]
		eventsByPatient[s.PatientID] = append(eventsByPatient[s.PatientID], models.ServiceEvent{
			Kind:             models.ServiceEventPerinatal,
			PerinatalSession: s,
		})
	}

	withEvents := make([]string, 0, len(eventsByPatient))
	for _, id := range patientIDs {
		if len(eventsByPatient[id]) > 0 {
			withEvents = append(withEvents, id)
		}
	}
	if len(withEvents) == 0 {
		return nil, nil
	}

	patients, err := a.PatientRepository.FindByIDs(ctx, withEvents)
	if err != nil {
		return nil, err
	}
	patientByID := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.ID] = p
	}

	results := make([]models.PatientRecords, 0, len(withEvents))
	for _, id := range withEvents {
		patient, ok := patientByID[id]
		if !ok {
			a.Log.Warn("patient referenced by service records not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, id),
			)
			continue
		}
		events := eventsByPatient[id]
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].Date().Time().Before(events[j].Date().Time())
		})
		results = append(results, models.PatientRecords{
			Patient: patient,
			Events:  events,
		})
	}
	return results, nil
}

// derivePatientIDs unions the distinct patient references of the three record
// sources inside the window, sorted for a stable processing order.
func (a *recordAggregator) derivePatientIDs(ctx context.Context, from, to time.Time) ([]string, error) {
	var (
		wg   sync.WaitGroup
		sets [3][]string
		errs [3]error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		sets[0], errs[0] = a.ConsultationRepository.FindPatientIDsInRange(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		sets[1], errs[1] = a.GroupSessionRepository.FindPatientIDsInRange(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		sets[2], errs[2] = a.PerinatalSessionRepository.FindPatientIDsInRange(ctx, from, to)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[string]bool)
	union := []string{}
	for _, set := range sets {
		for _, id := range set {
			if !seen[id] {
				seen[id] = true
				union = append(union, id)
			}
		}
	}
	sort.Strings(union)
	return union, nil
}
