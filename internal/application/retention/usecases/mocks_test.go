package usecases

import (
	"context"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/logger"
)

// Shared test doubles for the use case tests.

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type stubMemberRepository struct {
	members   map[string]*retention.Member
	upserted  []*retention.Member
	upsertErr error
}

func newStubMemberRepository() *stubMemberRepository {
	return &stubMemberRepository{members: make(map[string]*retention.Member)}
}

func (s *stubMemberRepository) ListAll(ctx context.Context) ([]retention.Member, error) {
	out := make([]retention.Member, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMemberRepository) GetByID(ctx context.Context, id string) (*retention.Member, error) {
	return s.members[id], nil
}

func (s *stubMemberRepository) Upsert(ctx context.Context, m *retention.Member) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, m)
	s.members[m.ID] = m
	return nil
}

type stubBillingRepository struct {
	transactions []*retention.Transaction
	recordErr    error
}

func (s *stubBillingRepository) ListInvoices(ctx context.Context) ([]retention.Invoice, error) {
	return nil, nil
}

func (s *stubBillingRepository) ListTransactions(ctx context.Context) ([]retention.Transaction, error) {
	out := make([]retention.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		out = append(out, *tx)
	}
	return out, nil
}

func (s *stubBillingRepository) RecordTransaction(ctx context.Context, tx *retention.Transaction) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.transactions = append(s.transactions, tx)
	return nil
}

type stubAssessmentReader struct {
	assessments []retention.RiskAssessment
	total       int64
	err         error
	lastLevel   string
	lastOffset  int
	lastLimit   int
}

func (s *stubAssessmentReader) ListLatest(ctx context.Context, level string, offset, limit int) ([]retention.RiskAssessment, int64, error) {
	s.lastLevel = level
	s.lastOffset = offset
	s.lastLimit = limit
	return s.assessments, s.total, s.err
}
