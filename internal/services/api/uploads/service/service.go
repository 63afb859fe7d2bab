// Package service owns the process-wide upload list and the read views over it
package service

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	perr "stockboard/internal/platform/errors"
	"stockboard/internal/platform/logger"
	"stockboard/internal/platform/metrics"
	"stockboard/internal/services/api/uploads/domain"
	"stockboard/internal/services/api/uploads/ingest"
	"stockboard/internal/services/api/uploads/repo"
)

// Service defines the uploads service contract
type Service interface {
	domain.ServicePort
	Load(ctx context.Context) int
}

// Svc implements Service
//
// Mutations replace the list wholesale and write it through before returning.
// Persistence failures are logged and counted, the in-memory list stays authoritative
type Svc struct {
	mu      sync.Mutex
	repo    repo.Repo
	ingest  ingest.Ingestor
	log     *logger.Logger
	metrics *metrics.Metrics

	uploads []domain.Upload
	loaded  bool
}

// Option configures a Svc
type Option func(*Svc)

// WithLogger sets the service logger
func WithLogger(l *logger.Logger) Option { return func(s *Svc) { s.log = l } }

// WithMetrics sets the metrics sink, nil disables it
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.metrics = m } }

// WithIngestor replaces the batch ingestor, e.g. to pin clock and ids in tests
func WithIngestor(in ingest.Ingestor) Option { return func(s *Svc) { s.ingest = in } }

// New constructs an uploads service over r
func New(r repo.Repo, opts ...Option) *Svc {
	if r == nil {
		panic("uploads.Service requires a non nil Repo")
	}
	s := &Svc{repo: r, ingest: ingest.New()}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = logger.Named("uploads")
	}
	return s
}

// Load (re)reads the persisted list and returns its length
// absent or unreadable data gives an empty list
func (s *Svc) Load(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(ctx)
	return len(s.uploads)
}

// List returns the uploads in chronological order
func (s *Svc) List(ctx context.Context) ([]domain.Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(ctx)

	out := make([]domain.Info, 0, len(s.uploads))
	for _, u := range s.uploads {
		out = append(out, u.Info())
	}
	return out, nil
}

// Get returns a copy of the upload named by ref; empty ref is the latest
func (s *Svc) Get(ctx context.Context, ref string) (domain.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(ctx)

	u, err := s.find(ref)
	if err != nil {
		return domain.Upload{}, err
	}
	return clone(u), nil
}

// Ingest decodes a CSV file and appends it as a new upload
func (s *Svc) Ingest(ctx context.Context, fileName string, r io.Reader) (domain.Upload, error) {
	records, err := ingest.Decode(r, fileName)
	if err != nil {
		s.metrics.Ingest(result(err))
		return domain.Upload{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(ctx)

	u, err := s.ingest.Batch(records, fileName, s.uploads)
	if err != nil {
		s.metrics.Ingest(result(err))
		logger.From(ctx, s.log).Info().Str("file", fileName).Err(err).Msg("upload rejected")
		return domain.Upload{}, err
	}

	next := append(slices.Clone(s.uploads), u)
	s.commit(logger.WithTipo(ctx, u.Tipo), domain.ActionIngest, next)
	s.metrics.Ingest(metrics.ResultOK)

	logger.From(logger.WithTipo(ctx, u.Tipo), s.log).Info().
		Str("file", fileName).
		Int("rows", len(u.Rows)).
		Int("uploads", len(next)).
		Msg("upload ingested")
	return clone(u), nil
}

// RemoveLast drops the most recent upload after confirmation; a no-op when empty
func (s *Svc) RemoveLast(ctx context.Context, c domain.Confirmer) (domain.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(ctx)

	res := domain.MutationResult{Action: domain.ActionRemoveLast, Remaining: len(s.uploads)}
	if len(s.uploads) == 0 {
		s.metrics.Mutation(res.Action, "noop")
		return res, nil
	}

	last := s.uploads[len(s.uploads)-1]
	if !domain.Confirm(c, removeLastPrompt(last)) {
		res.Declined = true
		s.metrics.Mutation(res.Action, "declined")
		return res, nil
	}

	next := slices.Clone(s.uploads[:len(s.uploads)-1])
	s.commit(logger.WithTipo(ctx, last.Tipo), res.Action, next)

	res.Changed, res.Remaining = true, len(next)
	logger.From(logger.WithTipo(ctx, last.Tipo), s.log).Info().Int("uploads", len(next)).Msg("last upload removed")
	return res, nil
}

// ClearAll drops every upload after confirmation; a no-op when empty
func (s *Svc) ClearAll(ctx context.Context, c domain.Confirmer) (domain.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(ctx)

	res := domain.MutationResult{Action: domain.ActionClearAll, Remaining: len(s.uploads)}
	if len(s.uploads) == 0 {
		s.metrics.Mutation(res.Action, "noop")
		return res, nil
	}
	if !domain.Confirm(c, clearAllPrompt(len(s.uploads))) {
		res.Declined = true
		s.metrics.Mutation(res.Action, "declined")
		return res, nil
	}

	removed := len(s.uploads)
	s.commit(ctx, res.Action, nil)

	res.Changed, res.Remaining = true, 0
	logger.From(ctx, s.log).Info().Int("removed", removed).Msg("uploads cleared")
	return res, nil
}

// HardReset empties the list and deletes the persisted document unconditionally
func (s *Svc) HardReset(ctx context.Context) (domain.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.uploads)
	s.uploads, s.loaded = nil, true
	if err := s.repo.Delete(ctx); err != nil {
		s.absorb(ctx, "delete", err)
	}
	s.metrics.Mutation(domain.ActionHardReset, "applied")
	s.metrics.Uploads(0)

	logger.From(ctx, s.log).Info().Int("removed", removed).Msg("uploads reset")
	return domain.MutationResult{Action: domain.ActionHardReset, Changed: true}, nil
}

// commit swaps in next and writes it through
func (s *Svc) commit(ctx context.Context, action string, next []domain.Upload) {
	s.uploads = next
	if err := s.repo.Save(ctx, next); err != nil {
		s.absorb(ctx, "save", err)
	}
	s.metrics.Mutation(action, "applied")
	s.metrics.Uploads(len(next))
}

// absorb records a persistence failure without surfacing it
func (s *Svc) absorb(ctx context.Context, op string, err error) {
	s.metrics.PersistFailure(op)
	logger.From(ctx, s.log).Warn().Err(err).Str("op", op).Msg("upload persistence failed")
}

func (s *Svc) ensure(ctx context.Context) {
	if !s.loaded {
		s.load(ctx)
	}
}

// load reads and sanitizes the persisted list, rewriting it when sanitizing changed it
func (s *Svc) load(ctx context.Context) {
	s.loaded = true
	list, err := s.repo.Load(ctx)
	if err != nil {
		s.absorb(ctx, "load", err)
		list = nil
	}

	clean, changed := s.sanitize(list)
	s.uploads = clean
	s.metrics.Uploads(len(clean))
	if changed {
		if err := s.repo.Save(ctx, clean); err != nil {
			s.absorb(ctx, "save", err)
		}
	}
	logger.From(ctx, s.log).Debug().Int("uploads", len(clean)).Msg("uploads loaded")
}

// sanitize fills missing ids and tipos and keeps only the first upload per tipo
func (s *Svc) sanitize(list []domain.Upload) ([]domain.Upload, bool) {
	out := make([]domain.Upload, 0, len(list))
	changed := false
	for _, u := range list {
		u.Tipo = strings.TrimSpace(u.Tipo)
		if u.Tipo == "" {
			u.Tipo, changed = ingest.FileTipo(u.FileName), true
		}
		if slices.ContainsFunc(out, func(o domain.Upload) bool { return strings.EqualFold(o.Tipo, u.Tipo) }) {
			changed = true
			continue
		}
		if u.ID == "" {
			u.ID, changed = s.newID(), true
		}
		out = append(out, u)
	}
	return out, changed
}

func (s *Svc) newID() string {
	if s.ingest.NewID != nil {
		return s.ingest.NewID()
	}
	return ingest.New().NewID()
}

// find resolves ref by id first, then by tipo
func (s *Svc) find(ref string) (domain.Upload, error) {
	if len(s.uploads) == 0 {
		return domain.Upload{}, perr.NotFoundf("no uploads yet")
	}
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return s.uploads[len(s.uploads)-1], nil
	}
	for _, u := range s.uploads {
		if strings.EqualFold(u.ID, ref) {
			return u, nil
		}
	}
	for _, u := range s.uploads {
		if u.Matches(ref) {
			return u, nil
		}
	}
	return domain.Upload{}, perr.WithField(perr.NotFoundf("no upload matches %q", ref), "upload")
}

// result maps an ingestion error to its metric label
func result(err error) string {
	switch {
	case perr.Is(err, domain.ErrDuplicateType):
		return metrics.ResultDuplicate
	case perr.Is(err, domain.ErrEmptyBatch):
		return metrics.ResultEmpty
	default:
		return metrics.ResultUnparseable
	}
}

func clone(u domain.Upload) domain.Upload {
	u.Rows = slices.Clone(u.Rows)
	return u
}

func removeLastPrompt(u domain.Upload) string {
	name := u.FileName
	if name == "" {
		name = "unnamed file"
	}
	return fmt.Sprintf("Remove the last upload (%s, %s)?", u.Tipo, name)
}

func clearAllPrompt(n int) string {
	if n == 1 {
		return "Remove the only upload?"
	}
	return fmt.Sprintf("Remove all %d uploads?", n)
}
