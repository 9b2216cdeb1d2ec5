package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimpyjack/stream-donations/internal/gmail"
	"github.com/jimpyjack/stream-donations/internal/logger"
	"github.com/jimpyjack/stream-donations/internal/model"
	"github.com/jimpyjack/stream-donations/internal/parse"
	"github.com/jimpyjack/stream-donations/internal/repository/memory"
	"github.com/jimpyjack/stream-donations/internal/service"
)

var testLogger = logger.NewWithWriter(io.Discard)

func TestGetDonationsEmpty(t *testing.T) {
	e := echo.New()
	donationService := service.NewDonationService(memory.NewInMemoryDonationRepository(), testLogger)
	h := NewDonationHandler(donationService, e.Logger)

	req := httptest.NewRequest(http.MethodGet, "/api/donations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetDonations(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Donations []*model.Donation `json:"donations"`
		Total     float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Donations)
	assert.Equal(t, 0.0, resp.Total)
}

func TestAddTestDonationEndpoint(t *testing.T) {
	e := echo.New()
	donationRepo := memory.NewInMemoryDonationRepository()
	donationService := service.NewDonationService(donationRepo, testLogger)
	h := NewDonationHandler(donationService, e.Logger)

	req := httptest.NewRequest(http.MethodPost, "/api/donations/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AddTestDonation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var donation model.Donation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &donation))
	assert.Equal(t, "Test Donor", donation.Name)
	assert.Equal(t, model.SourceVenmo, donation.Source)

	ids, err := donationRepo.AllIDs(context.Background())
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestPollEndpoint(t *testing.T) {
	e := echo.New()
	donationRepo := memory.NewInMemoryDonationRepository()

	mailbox := gmail.NewMockMailClient()
	mailbox.SearchFunc = func(ctx context.Context, provider parse.Provider) ([]model.CandidateMessage, error) {
		if provider.Source != model.SourceVenmo {
			return nil, nil
		}
		return []model.CandidateMessage{{ID: "v1", Subject: "Jane Doe paid you $19.00"}}, nil
	}
	mailbox.GetFunc = func(ctx context.Context, id string) (*model.FetchedMessage, error) {
		return &model.FetchedMessage{
			Body:    `<p class="transaction-note-extra">Thanks for the stream!</p>`,
			Headers: model.MessageHeaders{Date: "Sat, 29 Aug 2026 09:01:30 -0700"},
		}, nil
	}

	pollService := service.NewPollService(donationRepo, mailbox, parse.Providers(), testLogger)
	h := NewPollHandler(pollService, e.Logger)

	req := httptest.NewRequest(http.MethodGet, "/api/poll", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Poll(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Donations []*model.Donation `json:"donations"`
		NewIDs    []string          `json:"newIds"`
		Total     float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"v1"}, resp.NewIDs)
	require.Len(t, resp.Donations, 1)
	assert.Equal(t, "Thanks for the stream!", resp.Donations[0].Message)
	assert.Equal(t, 19.00, resp.Total)
}

func TestRouletteVoteEndpoint(t *testing.T) {
	e := echo.New()
	settingsRepo := memory.NewInMemorySettingsRepository()
	rouletteService := service.NewRouletteService(settingsRepo, testLogger)
	h := NewRouletteHandler(rouletteService, e.Logger)

	// Voting against a closed session is a 200 with success=false.
	req := httptest.NewRequest(http.MethodPost, "/api/roulette",
		strings.NewReader(`{"voterId":"viewer-1","choice":"red"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.SubmitVote(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"closed"`)

	// Invalid choices are a 400.
	req = httptest.NewRequest(http.MethodPost, "/api/roulette",
		strings.NewReader(`{"voterId":"viewer-1","choice":"green"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	require.NoError(t, h.SubmitVote(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
