package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lendwise/admin-console/internal/api/metrics"
	"github.com/lendwise/admin-console/internal/core/domain"
	"github.com/lendwise/admin-console/internal/core/ports"
)

const (
	leadsResource      = "leads"
	spreadsheetMIME    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportDateLayout   = "2006-01-02"
	exportFilenameTmpl = "%s-export-%s.xlsx"
)

// ExportService is the one filter-and-download workflow shared by every
// export dialog. It builds the filter query, guards against duplicate
// submissions, and names the spreadsheet after the day it was produced.
type ExportService struct {
	leads ports.LeadExporter
	guard ports.InFlightGuard
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewExportService(leads ports.LeadExporter, guard ports.InFlightGuard, audit ports.AuditSink, log zerolog.Logger) *ExportService {
	return &ExportService{leads: leads, guard: guard, audit: audit, log: log}
}

// ExportLeads downloads the filtered lead set as a spreadsheet. While one
// export runs, an identical request from the same session returns
// domain.ErrExportInFlight without touching the upstream. The request either
// fully succeeds or the export is abandoned; there is no partial result.
func (s *ExportService) ExportLeads(ctx context.Context, sess *domain.Session, f ports.LeadFilter) (*ports.ExportResult, error) {
	key := exportKey(sess.ID, leadsResource, f)

	ok, err := s.guard.Acquire(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.ExportsTotal.WithLabelValues(leadsResource, "in_flight").Inc()
		return nil, domain.ErrExportInFlight
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := s.guard.Release(releaseCtx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to release export slot")
		}
	}()

	payload, err := s.leads.ExportFiltered(ctx, sess, f)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(leadsResource, "error").Inc()
		return nil, err
	}
	metrics.ExportsTotal.WithLabelValues(leadsResource, "ok").Inc()

	filename := fmt.Sprintf(exportFilenameTmpl, leadsResource, time.Now().Format(exportDateLayout))
	s.audit.Emit(domain.AuditEntry{
		ID:        uuid.NewString(),
		SessionID: sess.ID,
		Actor:     sess.Email,
		Action:    domain.AuditExport,
		Target:    leadsResource,
		Detail:    filename,
		CreatedAt: time.Now().UTC(),
	})

	contentType := payload.ContentType
	if contentType == "" {
		contentType = spreadsheetMIME
	}
	return &ports.ExportResult{
		Filename:    filename,
		ContentType: contentType,
		Data:        payload.Data,
	}, nil
}

// exportKey fingerprints session, resource, and filter so only byte-identical
// requests collapse onto one slot.
func exportKey(sessionID, resource string, f ports.LeadFilter) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%v", sessionID, resource, f)
	return fmt.Sprintf("%s:%x", resource, h.Sum64())
}
