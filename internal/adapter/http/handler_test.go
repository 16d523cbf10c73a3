package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
	"ad-exchange/internal/core/port/mocks"
)

type fixture struct {
	bidding  *mocks.MockBiddingUseCase
	auctions *mocks.MockAuctionUseCase
	learning *mocks.MockLearningUseCase
	campaign *mocks.MockCampaignUseCase
	srv      http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		bidding:  mocks.NewMockBiddingUseCase(t),
		auctions: mocks.NewMockAuctionUseCase(t),
		learning: mocks.NewMockLearningUseCase(t),
		campaign: mocks.NewMockCampaignUseCase(t),
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "test"}))
	f.srv = NewHandler(Services{
		Bidding:  f.bidding,
		Auctions: f.auctions,
		Learning: f.learning,
		Campaign: f.campaign,
	}, reg, slog.New(slog.NewTextHandler(io.Discard, nil))).Router()
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	f.srv.ServeHTTP(rec, httptest.NewRequest(method, target, rd))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func TestRunBidding(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.bidding.EXPECT().RunBidding(mock.Anything, id).
		Return(&port.RunResult{Success: true, SlotsEvaluated: 4, BidsPlaced: 2, CreditsAllocated: 180}, nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/run-bidding", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res port.RunResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.True(t, res.Success)
	assert.Equal(t, int64(180), res.CreditsAllocated)
}

func TestRunBiddingSkipped(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.bidding.EXPECT().RunBidding(mock.Anything, id).Return(port.Skip("No available slots"), nil)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/run-bidding", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"No available slots"`)
}

func TestRunBiddingErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"ledger conflict", domain.ErrLedgerConflict, http.StatusConflict, domain.ErrLedgerConflict.Error()},
		{"internal", fmt.Errorf("commit run: %w", io.ErrUnexpectedEOF), http.StatusInternalServerError, "internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			id := uuid.New()
			f.bidding.EXPECT().RunBidding(mock.Anything, id).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/run-bidding", "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.msg, decodeError(t, rec))
		})
	}
}

func TestInvalidCampaignID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/campaigns/42/run-bidding", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", decodeError(t, rec))
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.campaign.EXPECT().PauseCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.CampaignPaused}, nil)
	f.campaign.EXPECT().ResumeCampaign(mock.Anything, id).
		Return(nil, fmt.Errorf("resume: %w", domain.ErrCampaignCompleted))

	rec := f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/pause", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var c domain.Campaign
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	assert.Equal(t, domain.CampaignPaused, c.Status)

	rec = f.do(http.MethodPost, "/api/v1/campaigns/"+id.String()+"/resume", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCampaignDetail(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	missing := uuid.New()
	f.campaign.EXPECT().GetCampaignDetail(mock.Anything, id).
		Return(&port.CampaignDetail{Campaign: &domain.Campaign{ID: id, Name: "Spring"}}, nil)
	f.campaign.EXPECT().GetCampaignDetail(mock.Anything, missing).Return(nil, port.ErrNotFound)

	rec := f.do(http.MethodGet, "/api/v1/campaigns/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Spring"`)

	rec = f.do(http.MethodGet, "/api/v1/campaigns/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveAuction(t *testing.T) {
	f := newFixture(t)
	slotID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	f.auctions.EXPECT().ResolveAuction(mock.Anything, slotID, mock.MatchedBy(date.Equal)).
		Return(&port.AuctionResult{Success: true, TotalBids: 3}, nil)

	body := fmt.Sprintf(`{"slotId":%q,"auctionDate":"2026-03-02T00:00:00Z"}`, slotID)
	rec := f.do(http.MethodPost, "/api/v1/auctions/resolve", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalBids":3`)
}

func TestResolveAuctionBadRequest(t *testing.T) {
	tests := map[string]string{
		"not json":     `{`,
		"missing date": fmt.Sprintf(`{"slotId":%q}`, uuid.New()),
		"missing slot": `{"auctionDate":"2026-03-02T00:00:00Z"}`,
		"bad date":     fmt.Sprintf(`{"slotId":%q,"auctionDate":"monday"}`, uuid.New()),
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(http.MethodPost, "/api/v1/auctions/resolve", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCompleteRental(t *testing.T) {
	t.Run("with measurement", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		m := domain.Measurement{TrafficGenerated: 500, Conversions: 5, Clicks: 20}
		f.learning.EXPECT().CompleteRental(mock.Anything, id, m).
			Return(&port.LearningResult{ActualROI: 400, AverageROI: 400}, nil)

		rec := f.do(http.MethodPost, "/api/v1/rentals/"+id.String()+"/complete",
			`{"trafficGenerated":500,"conversions":5,"clicks":20}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"actualROI":400`)
	})

	t.Run("without body", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.learning.EXPECT().RecordRentalCompletion(mock.Anything, id).Return(nil, nil)

		rec := f.do(http.MethodPost, "/api/v1/rentals/"+id.String()+"/complete", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("all-zero measurement is stored", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.learning.EXPECT().CompleteRental(mock.Anything, id, domain.Measurement{}).
			Return(&port.LearningResult{ActualROI: -100}, nil)

		rec := f.do(http.MethodPost, "/api/v1/rentals/"+id.String()+"/complete",
			`{"trafficGenerated":0,"conversions":0}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"actualROI":-100`)
	})

	t.Run("negative measurement", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/rentals/"+uuid.NewString()+"/complete", `{"clicks":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_hits_total")
}
