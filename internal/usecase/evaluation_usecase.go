package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"procuredesk/internal/domain/entities"
	"procuredesk/internal/usecase/interfaces"
)

var (
	ErrInvalidRequirementID = errors.New("invalid requirement id")
	ErrRequirementNotFound  = errors.New("requirement not found")
	ErrEvaluationFailed     = errors.New("vendor evaluation failed")
	ErrInvalidVerdict       = errors.New("evaluator returned invalid verdict")
	ErrScoreOutOfRange      = errors.New("evaluator returned score out of range")
)

// PipelineStage identifies which step of the evaluation pipeline failed.
type PipelineStage string

const (
	StageFetchRequirement PipelineStage = "fetch_requirement"
	StageFetchItems       PipelineStage = "fetch_items"
	StageFetchQuotations  PipelineStage = "fetch_quotations"
	StageEvaluate         PipelineStage = "evaluate"
)

// StageError tags a pipeline failure with its originating stage.
// Any stage failure short-circuits the remaining stages; no partial
// report is produced.
type StageError struct {
	Stage PipelineStage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage PipelineStage, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// IEvaluationUseCase runs the fetch-fetch-fetch-evaluate pipeline for one
// requirement and exposes the assembled context for the read endpoint.
type IEvaluationUseCase interface {
	BuildContext(ctx context.Context, reqID int64) (entities.EvaluationContext, error)
	EvaluateRequirement(ctx context.Context, reqID int64) (entities.EvaluationReport, error)
}

type EvaluationUseCase struct {
	repo      interfaces.IRequirementRepository
	evaluator interfaces.IVendorEvaluator
	clock     Clock
}

var _ IEvaluationUseCase = (*EvaluationUseCase)(nil)

func NewEvaluationUseCase(repo interfaces.IRequirementRepository, evaluator interfaces.IVendorEvaluator, clock Clock) *EvaluationUseCase {
	if clock == nil {
		clock = NewRealClock()
	}
	return &EvaluationUseCase{repo: repo, evaluator: evaluator, clock: clock}
}

// BuildContext fetches the requirement terms, items and quotations for
// reqID. A requirement with zero items, or items with zero quotations, is
// a valid context, not an error.
func (u *EvaluationUseCase) BuildContext(ctx context.Context, reqID int64) (entities.EvaluationContext, error) {
	if !entities.ValidRequirementID(reqID) {
		return entities.EvaluationContext{}, stageErr(StageFetchRequirement, ErrInvalidRequirementID)
	}

	req, err := u.repo.GetByID(ctx, reqID)
	if err != nil {
		return entities.EvaluationContext{}, stageErr(StageFetchRequirement, err)
	}
	if req.ID == 0 {
		return entities.EvaluationContext{}, stageErr(StageFetchRequirement, ErrRequirementNotFound)
	}

	items, err := u.repo.ListItems(ctx, reqID)
	if err != nil {
		return entities.EvaluationContext{}, stageErr(StageFetchItems, err)
	}
	if len(items) == 0 {
		log.Printf("[evaluation][usecase] no items recorded req_id=%d", reqID)
	}

	quotations, err := u.repo.ListQuotationsByItem(ctx, reqID)
	if err != nil {
		return entities.EvaluationContext{}, stageErr(StageFetchQuotations, err)
	}
	// Items without a single quotation still appear in the context with an
	// empty list, so the evaluator sees the full item set.
	for _, it := range items {
		if _, ok := quotations[it.ID]; !ok {
			if quotations == nil {
				quotations = map[int64][]entities.Quotation{}
			}
			quotations[it.ID] = []entities.Quotation{}
		}
	}

	return entities.EvaluationContext{
		Requirement:      req,
		Items:            items,
		QuotationsByItem: quotations,
	}, nil
}

// EvaluateRequirement drives the four pipeline stages to completion and
// returns the evaluator's verdicts, structurally validated.
func (u *EvaluationUseCase) EvaluateRequirement(ctx context.Context, reqID int64) (entities.EvaluationReport, error) {
	log.Printf("[evaluation][usecase] pipeline start req_id=%d", reqID)

	evalCtx, err := u.BuildContext(ctx, reqID)
	if err != nil {
		log.Printf("[evaluation][usecase] context build failed req_id=%d err=%v", reqID, err)
		return entities.EvaluationReport{}, err
	}
	log.Printf("[evaluation][usecase] context ready req_id=%d items=%d vendors=%d",
		reqID, len(evalCtx.Items), len(evalCtx.VendorIDs()))

	if u.evaluator == nil {
		log.Printf("[evaluation][usecase] evaluator not configured req_id=%d", reqID)
		return entities.EvaluationReport{}, stageErr(StageEvaluate, fmt.Errorf("%w: evaluator not configured", ErrEvaluationFailed))
	}

	results, err := u.evaluator.EvaluateVendors(ctx, evalCtx)
	if err != nil {
		log.Printf("[evaluation][usecase] evaluator failed req_id=%d err=%v", reqID, err)
		return entities.EvaluationReport{}, stageErr(StageEvaluate, fmt.Errorf("%w: %v", ErrEvaluationFailed, err))
	}

	for _, res := range results {
		if !res.Verdict.Valid() {
			return entities.EvaluationReport{}, stageErr(StageEvaluate,
				fmt.Errorf("%w: vendor=%d verdict=%q", ErrInvalidVerdict, res.VendorID, res.Verdict))
		}
		if res.Score < 0 || res.Score > 100 {
			return entities.EvaluationReport{}, stageErr(StageEvaluate,
				fmt.Errorf("%w: vendor=%d score=%.2f", ErrScoreOutOfRange, res.VendorID, res.Score))
		}
	}

	report := entities.EvaluationReport{
		RequirementID: reqID,
		EvaluatedAt:   u.clock.Now().UTC(),
		Results:       results,
	}
	log.Printf("[evaluation][usecase] pipeline done req_id=%d vendors=%d accepted=%d rejected=%d",
		reqID, len(report.Results), report.Accepted(), report.Rejected())
	return report, nil
}
