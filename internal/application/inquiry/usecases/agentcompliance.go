package usecases

import (
	"cmp"
	"context"
	"slices"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/domain/inquiry"
	"github.com/orris-inc/estatehub/internal/shared/biztime"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// AgentComplianceUseCase reports SLA state counts per agent over unarchived
// inquiries.
type AgentComplianceUseCase struct {
	inquiries inquiry.Repository
	policy    PolicyReader
	clock     biztime.Clock
	logger    logger.Interface
}

func NewAgentComplianceUseCase(inquiries inquiry.Repository, policy PolicyReader, logger logger.Interface) *AgentComplianceUseCase {
	return &AgentComplianceUseCase{
		inquiries: inquiries,
		policy:    policy,
		clock:     biztime.NowUTC,
		logger:    logger,
	}
}

// Execute reports one agent, or every agent with open inquiries when agentID is 0.
func (uc *AgentComplianceUseCase) Execute(ctx context.Context, agentID uint) ([]dto.AgentComplianceResponse, error) {
	p, err := uc.policy.Policy(ctx)
	if err != nil {
		return nil, errors.NewInternalError("failed to read settings").Wrap(err)
	}

	list, err := uc.inquiries.ListActive(ctx, agentID)
	if err != nil {
		uc.logger.Errorw("failed to list inquiries for compliance", "agent_id", agentID, "error", err)
		return nil, errors.NewInternalError("failed to load inquiries").Wrap(err)
	}

	now := uc.clock()
	byAgent := make(map[uint]*dto.AgentComplianceResponse)
	for _, i := range list {
		r, ok := byAgent[i.AssignedAgentID()]
		if !ok {
			r = &dto.AgentComplianceResponse{AgentID: i.AssignedAgentID()}
			byAgent[i.AssignedAgentID()] = r
		}
		r.Total++
		switch i.Classify(now, p.SLA) {
		case inquiry.SLAStateOnTime:
			r.OnTime++
		case inquiry.SLAStateBreached:
			r.Breached++
		case inquiry.SLAStatePendingWithinSLA:
			r.PendingWithinSLA++
		case inquiry.SLAStatePendingBreached:
			r.PendingBreached++
		case inquiry.SLAStateStale:
			r.Stale++
		}
	}

	if agentID != 0 && len(byAgent) == 0 {
		byAgent[agentID] = &dto.AgentComplianceResponse{AgentID: agentID}
	}

	out := make([]dto.AgentComplianceResponse, 0, len(byAgent))
	for _, r := range byAgent {
		r.Status = dto.ComplianceCompliant
		if r.Breached+r.PendingBreached+r.Stale > 0 {
			r.Status = dto.ComplianceBreaching
		}
		out = append(out, *r)
	}
	slices.SortFunc(out, func(a, b dto.AgentComplianceResponse) int {
		return cmp.Compare(a.AgentID, b.AgentID)
	})
	return out, nil
}
