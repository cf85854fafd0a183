package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inquiryDto "github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	inquiryUsecases "github.com/orris-inc/estatehub/internal/application/inquiry/usecases"
	"github.com/orris-inc/estatehub/internal/domain/user"
	"github.com/orris-inc/estatehub/internal/interfaces/http/handlers/testutil"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

type inquiryMocks struct {
	create     *mockInquiryCreator
	respond    *mockInquiryCommand
	archive    *mockInquiryCommand
	sla        *mockInquirySLAReader
	compliance *mockComplianceReporter
}

func newTestInquiryHandler(m inquiryMocks) *InquiryHandler {
	if m.create == nil {
		m.create = &mockInquiryCreator{}
	}
	if m.respond == nil {
		m.respond = &mockInquiryCommand{}
	}
	if m.archive == nil {
		m.archive = &mockInquiryCommand{}
	}
	if m.sla == nil {
		m.sla = &mockInquirySLAReader{}
	}
	if m.compliance == nil {
		m.compliance = &mockComplianceReporter{}
	}
	return NewInquiryHandler(m.create, m.respond, m.archive, m.sla, m.compliance, logger.NewDiscardLogger())
}

func TestInquiryHandler_CreateInquiry(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got inquiryUsecases.CreateInquiryCommand
		create := &mockInquiryCreator{
			executeFn: func(ctx context.Context, cmd inquiryUsecases.CreateInquiryCommand) (*inquiryDto.InquiryResponse, error) {
				got = cmd
				return &inquiryDto.InquiryResponse{SID: "inq_abc123", AssignedAgentID: 7}, nil
			},
		}
		h := newTestInquiryHandler(inquiryMocks{create: create})

		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", map[string]any{
			"listing_id":  "lst_abc123",
			"buyer_name":  "Dana",
			"buyer_email": "dana@example.com",
			"message":     "Is it still available?",
		})

		h.CreateInquiry(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "lst_abc123", got.ListingSID)
		assert.Equal(t, "dana@example.com", got.BuyerEmail)
	})

	t.Run("invalid email", func(t *testing.T) {
		h := newTestInquiryHandler(inquiryMocks{})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", map[string]any{
			"listing_id":  "lst_abc123",
			"buyer_name":  "Dana",
			"buyer_email": "not-an-email",
		})

		h.CreateInquiry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Details, "buyer_email")
	})

	t.Run("inquiry id passed as listing id", func(t *testing.T) {
		h := newTestInquiryHandler(inquiryMocks{})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", map[string]any{
			"listing_id":  "inq_abc123",
			"buyer_name":  "Dana",
			"buyer_email": "dana@example.com",
		})

		h.CreateInquiry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Details, "listing_id must be an id with prefix lst_")
	})

	t.Run("listing not accepting inquiries", func(t *testing.T) {
		create := &mockInquiryCreator{
			executeFn: func(ctx context.Context, cmd inquiryUsecases.CreateInquiryCommand) (*inquiryDto.InquiryResponse, error) {
				return nil, errors.NewConflictError("listing is not active")
			},
		}
		h := newTestInquiryHandler(inquiryMocks{create: create})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries", map[string]any{
			"listing_id":  "lst_abc123",
			"buyer_name":  "Dana",
			"buyer_email": "dana@example.com",
		})

		h.CreateInquiry(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestInquiryHandler_Commands(t *testing.T) {
	t.Run("record response", func(t *testing.T) {
		var got inquiryUsecases.InquiryCommand
		respond := &mockInquiryCommand{
			executeFn: func(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error) {
				got = cmd
				return &inquiryDto.InquiryResponse{SID: cmd.InquirySID}, nil
			},
		}
		h := newTestInquiryHandler(inquiryMocks{respond: respond})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/inq_abc123/response", nil)
		testutil.SetURLParam(c, "sid", "inq_abc123")
		testutil.SetActor(c, 2, user.RoleAgent)

		h.RecordResponse(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "inq_abc123", got.InquirySID)
		assert.Equal(t, user.Actor{ID: 2, Role: user.RoleAgent}, got.Caller)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "First response recorded", resp.Message)
	})

	t.Run("archive", func(t *testing.T) {
		h := newTestInquiryHandler(inquiryMocks{})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/inq_abc123/archive", nil)
		testutil.SetURLParam(c, "sid", "inq_abc123")
		testutil.SetActor(c, 1, user.RoleAdmin)

		h.ArchiveInquiry(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing caller", func(t *testing.T) {
		h := newTestInquiryHandler(inquiryMocks{})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/inq_abc123/archive", nil)
		testutil.SetURLParam(c, "sid", "inq_abc123")

		h.ArchiveInquiry(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("not the assigned agent", func(t *testing.T) {
		respond := &mockInquiryCommand{
			executeFn: func(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error) {
				return nil, errors.NewForbiddenError("only the assigned agent or an admin can act on this inquiry")
			},
		}
		h := newTestInquiryHandler(inquiryMocks{respond: respond})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/inq_abc123/response", nil)
		testutil.SetURLParam(c, "sid", "inq_abc123")
		testutil.SetActor(c, 9, user.RolePromoter)

		h.RecordResponse(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("listing sid rejected", func(t *testing.T) {
		h := newTestInquiryHandler(inquiryMocks{})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/lst_abc123/archive", nil)
		testutil.SetURLParam(c, "sid", "lst_abc123")

		h.ArchiveInquiry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		respond := &mockInquiryCommand{
			executeFn: func(ctx context.Context, cmd inquiryUsecases.InquiryCommand) (*inquiryDto.InquiryResponse, error) {
				return nil, errors.NewNotFoundError("inquiry not found")
			},
		}
		h := newTestInquiryHandler(inquiryMocks{respond: respond})
		c, w := testutil.NewTestContext(http.MethodPost, "/inquiries/inq_abc123/response", nil)
		testutil.SetURLParam(c, "sid", "inq_abc123")
		testutil.SetActor(c, 2, user.RoleAgent)

		h.RecordResponse(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInquiryHandler_GetSLA(t *testing.T) {
	sla := &mockInquirySLAReader{
		executeFn: func(ctx context.Context, sid string) (*inquiryDto.SLAResponse, error) {
			return &inquiryDto.SLAResponse{InquirySID: sid, State: "pending_breached"}, nil
		},
	}
	h := newTestInquiryHandler(inquiryMocks{sla: sla})
	c, w := testutil.NewTestContext(http.MethodGet, "/inquiries/inq_abc123/sla", nil)
	testutil.SetURLParam(c, "sid", "inq_abc123")

	h.GetSLA(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data inquiryDto.SLAResponse
	require.NoError(t, resp.DecodeData(&data))
	assert.Equal(t, "pending_breached", data.State)
}

func TestInquiryHandler_GetAgentCompliance(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		wantAgent  uint
		wantStatus int
	}{
		{name: "all agents", wantAgent: 0, wantStatus: http.StatusOK},
		{name: "single agent", query: map[string]string{"agent_id": "7"}, wantAgent: 7, wantStatus: http.StatusOK},
		{name: "non-numeric agent", query: map[string]string{"agent_id": "abc"}, wantStatus: http.StatusBadRequest},
		{name: "zero agent", query: map[string]string{"agent_id": "0"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uint
			called := false
			compliance := &mockComplianceReporter{
				executeFn: func(ctx context.Context, agentID uint) ([]inquiryDto.AgentComplianceResponse, error) {
					called = true
					got = agentID
					return []inquiryDto.AgentComplianceResponse{{AgentID: 7, Status: inquiryDto.ComplianceCompliant}}, nil
				},
			}
			h := newTestInquiryHandler(inquiryMocks{compliance: compliance})
			c, w := testutil.NewTestContext(http.MethodGet, "/agents/sla-compliance", nil)
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}

			h.GetAgentCompliance(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			if called {
				assert.Equal(t, tt.wantAgent, got)
			}
		})
	}
}
