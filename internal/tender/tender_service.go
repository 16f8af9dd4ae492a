package tender

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-tender/internal/domain"
	"go-tender/internal/history"
	"go-tender/internal/shared/apperror"
	"go-tender/internal/shared/clock"
	tendererrors "go-tender/internal/tender/errors"
)

type Service interface {
	Create(ctx context.Context, actor domain.Actor, req CreateTenderRequest) (*TenderResponse, error)
	GetAll(ctx context.Context) ([]TenderResponse, error)
	GetByID(ctx context.Context, id string) (*TenderResponse, error)
	Search(ctx context.Context, q SearchQuery) ([]TenderResponse, error)
	Update(ctx context.Context, actor domain.Actor, id string, req UpdateTenderRequest) (*TenderResponse, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	PublicWinner(ctx context.Context, id string) (*PublicWinnerResponse, error)
}

type service struct {
	repo    Repository
	history history.Service
	clock   clock.Clock
	logger  *zap.Logger
}

func NewService(repo Repository, historySvc history.Service, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("tender.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tender.service")
	}
	if clk == nil {
		clk = clock.System()
	}
	return &service{repo: repo, history: historySvc, clock: clk, logger: l}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, req CreateTenderRequest) (*TenderResponse, error) {
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil, tendererrors.ErrInvalidActorID
	}

	budget, err := parseBudget(req.Budget)
	if err != nil {
		return nil, err
	}

	category := Category(req.Category)
	if !ValidCategory(category) {
		return nil, tendererrors.ErrInvalidCategory
	}

	noticeDate, err := parseDate(req.NoticeDate)
	if err != nil {
		return nil, tendererrors.ErrInvalidDateFormat
	}
	deadline, err := parseDate(req.SubmissionDeadline)
	if err != nil {
		return nil, tendererrors.ErrInvalidDateFormat
	}

	t := &Tender{
		Title:              req.Title,
		Description:        req.Description,
		Budget:             budget,
		Category:           category,
		Requirements:       req.Requirements,
		Status:             StatusOpen,
		NoticeDate:         noticeDate,
		SubmissionDeadline: deadline,
		CreatedBy:          actorID,
	}

	if req.ConstructionStart != nil && *req.ConstructionStart != "" {
		d, err := parseDate(*req.ConstructionStart)
		if err != nil {
			return nil, tendererrors.ErrInvalidDateFormat
		}
		t.ConstructionStart = &d
	}
	if req.ConstructionEnd != nil && *req.ConstructionEnd != "" {
		d, err := parseDate(*req.ConstructionEnd)
		if err != nil {
			return nil, tendererrors.ErrInvalidDateFormat
		}
		t.ConstructionEnd = &d
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create tender failed", zap.Error(err))
		return nil, err
	}

	// Ledger write happens after the tender row exists; a failure here is
	// logged inside the history service and does not void the creation.
	_ = s.history.Record(ctx, history.Created(t.ID, actorID))

	s.logger.Info("tender created",
		zap.String("tender_id", t.ID.String()),
		zap.String("created_by", actor.UserID),
	)

	resp := mapToResponse(*t)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]TenderResponse, error) {
	tenders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(tenders), nil
}

func (s *service) GetByID(ctx context.Context, id string) (*TenderResponse, error) {
	t, err := s.loadTender(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapToResponse(*t)
	return &resp, nil
}

func (s *service) Search(ctx context.Context, q SearchQuery) ([]TenderResponse, error) {
	if q.Category != "" && !ValidCategory(Category(q.Category)) {
		return nil, tendererrors.ErrInvalidCategory
	}
	if q.Status != "" && !ValidStatus(Status(q.Status)) {
		return nil, apperror.InvalidField("status")
	}
	tenders, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(tenders), nil
}

func (s *service) Update(ctx context.Context, actor domain.Actor, id string, req UpdateTenderRequest) (*TenderResponse, error) {
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return nil, tendererrors.ErrInvalidActorID
	}

	t, err := s.loadTender(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := GuardMutable(t.Status, t.SubmissionDeadline, s.clock.Now()); err != nil {
		return nil, err
	}

	entries, err := applyUpdate(t, actorID, req)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		resp := mapToResponse(*t)
		return &resp, nil
	}

	if err := s.repo.Update(ctx, t); err != nil {
		s.logger.Error("update tender failed",
			zap.String("tender_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	for _, entry := range entries {
		_ = s.history.Record(ctx, entry)
	}

	s.logger.Info("tender updated",
		zap.String("tender_id", id),
		zap.Int("changed_fields", len(entries)),
	)

	resp := mapToResponse(*t)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, id string) error {
	actorID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return tendererrors.ErrInvalidActorID
	}

	t, err := s.loadTender(ctx, id)
	if err != nil {
		return err
	}

	if err := GuardMutable(t.Status, t.SubmissionDeadline, s.clock.Now()); err != nil {
		return err
	}

	count, err := s.repo.CountBids(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return tendererrors.ErrTenderHasBids
	}

	affected, err := s.repo.SoftDeleteIfNoBids(ctx, id)
	if err != nil {
		s.logger.Error("delete tender failed",
			zap.String("tender_id", id),
			zap.Error(err),
		)
		return err
	}
	if affected == 0 {
		// A bid slipped in between the count and the delete.
		return tendererrors.ErrTenderHasBids
	}

	_ = s.history.Record(ctx, history.Deleted(t.ID, actorID))

	s.logger.Info("tender deleted",
		zap.String("tender_id", id),
		zap.String("deleted_by", actor.UserID),
	)
	return nil
}

func (s *service) PublicWinner(ctx context.Context, id string) (*PublicWinnerResponse, error) {
	t, err := s.loadTender(ctx, id)
	if err != nil {
		return nil, err
	}

	if t.Status != StatusAwarded {
		return nil, tendererrors.ErrNotAwarded
	}
	if t.WinningBidID == nil {
		return nil, tendererrors.ErrNoWinningBid
	}

	info, err := s.repo.WinningBidInfo(ctx, t.WinningBidID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tendererrors.ErrNoWinningBid
		}
		return nil, err
	}

	awardDate := ""
	if t.WinnerDate != nil {
		awardDate = t.WinnerDate.Format("2006-01-02")
	}

	return &PublicWinnerResponse{
		Winner:       info.CompanyName,
		WinningPrice: info.BiddingPrice.StringFixed(2),
		AwardDate:    awardDate,
	}, nil
}

func (s *service) loadTender(ctx context.Context, id string) (*Tender, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, tendererrors.ErrInvalidTenderID
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tendererrors.ErrTenderNotFound
		}
		return nil, err
	}
	return t, nil
}

// applyUpdate applies the present fields of req to t and returns one history
// entry per field whose value actually changed.
func applyUpdate(t *Tender, actorID uuid.UUID, req UpdateTenderRequest) ([]*history.TenderHistory, error) {
	var entries []*history.TenderHistory

	record := func(field, oldValue, newValue string) {
		entries = append(entries, history.FieldUpdated(t.ID, actorID, field, oldValue, newValue))
	}

	if req.Title != nil && *req.Title != t.Title {
		record("title", t.Title, *req.Title)
		t.Title = *req.Title
	}
	if req.Description != nil && *req.Description != t.Description {
		record("description", t.Description, *req.Description)
		t.Description = *req.Description
	}
	if req.Budget != nil {
		budget, err := parseBudget(*req.Budget)
		if err != nil {
			return nil, err
		}
		if !budget.Equal(t.Budget) {
			record("budget", formatBudget(t.Budget), formatBudget(budget))
			t.Budget = budget
		}
	}
	if req.Category != nil {
		category := Category(*req.Category)
		if !ValidCategory(category) {
			return nil, tendererrors.ErrInvalidCategory
		}
		if category != t.Category {
			record("category", string(t.Category), string(category))
			t.Category = category
		}
	}
	if req.Requirements != nil && *req.Requirements != t.Requirements {
		record("requirements", t.Requirements, *req.Requirements)
		t.Requirements = *req.Requirements
	}
	if req.NoticeDate != nil {
		d, err := parseDate(*req.NoticeDate)
		if err != nil {
			return nil, tendererrors.ErrInvalidDateFormat
		}
		if !d.Equal(t.NoticeDate) {
			record("notice_date", formatDate(t.NoticeDate), formatDate(d))
			t.NoticeDate = d
		}
	}
	if req.SubmissionDeadline != nil {
		d, err := parseDate(*req.SubmissionDeadline)
		if err != nil {
			return nil, tendererrors.ErrInvalidDateFormat
		}
		if !d.Equal(t.SubmissionDeadline) {
			record("submission_deadline", formatDate(t.SubmissionDeadline), formatDate(d))
			t.SubmissionDeadline = d
		}
	}
	if req.ConstructionStart != nil {
		if err := applyDatePtr(&t.ConstructionStart, *req.ConstructionStart, "construction_start", record); err != nil {
			return nil, err
		}
	}
	if req.ConstructionEnd != nil {
		if err := applyDatePtr(&t.ConstructionEnd, *req.ConstructionEnd, "construction_end", record); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

func applyDatePtr(dst **time.Time, raw, field string, record func(field, oldValue, newValue string)) error {
	oldValue := ""
	if *dst != nil {
		oldValue = formatDate(**dst)
	}

	if raw == "" {
		if *dst != nil {
			record(field, oldValue, "")
			*dst = nil
		}
		return nil
	}

	d, err := parseDate(raw)
	if err != nil {
		return tendererrors.ErrInvalidDateFormat
	}
	if *dst == nil || !d.Equal(**dst) {
		record(field, oldValue, formatDate(d))
		*dst = &d
	}
	return nil
}

func parseBudget(raw string) (decimal.Decimal, error) {
	budget, err := decimal.NewFromString(raw)
	if err != nil || budget.IsNegative() {
		return decimal.Decimal{}, tendererrors.ErrInvalidBudget
	}
	return budget, nil
}

// formatBudget renders the amount the way the transparency ledger shows it.
func formatBudget(d decimal.Decimal) string {
	return "€" + d.StringFixed(2)
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// parseDate accepts both a bare calendar date and a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return d.UTC(), nil
	}
	d, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(), nil
}
