package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"caza_backend/internal/domain/entities"
	mock_interfaces "caza_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingDispatcher struct {
	INotificationUseCase
	calls []DispatchRequest
	fail  map[string]bool
}

func (d *recordingDispatcher) SendPaymentLink(_ context.Context, req DispatchRequest) (PaymentLinkResult, error) {
	d.calls = append(d.calls, req)
	if d.fail[req.EntityID] {
		return PaymentLinkResult{}, &DispatchError{Action: entities.ActionPaymentLink, Step: StepEmail, Err: ErrEmailDeliveryFailed}
	}
	return PaymentLinkResult{EntityID: req.EntityID}, nil
}

func TestSweepUseCase_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockIRecordStore(ctrl)
	sent := mock_interfaces.NewMockISentActionRepository(ctrl)

	records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "inscrip").Return([]entities.Record{
		{"numero_inscripcion": "INS-1", "email": "a@x.com", "tipo_establecimiento": "Criadero"},
		{"numero_inscripcion": "INS-2", "email": "b@x.com", "tipo_establecimiento": "Area Libre"},
		{"numero_inscripcion": "INS-3", "email": "", "tipo_establecimiento": "Criadero"},
		{"numero_inscripcion": "INS-4", "email": "d@x.com", "tipo_establecimiento": "Criadero"},
	}, nil)
	sent.EXPECT().ActionsFor(gomock.Any(), entities.EntityKindInscription, []string{"INS-1", "INS-2", "INS-4"}).
		Return(map[string][]entities.ActionKind{"INS-2": {entities.ActionCredential, entities.ActionPaymentLink}}, nil)
	records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "permisos").Return(nil, errors.New("quota"))

	dispatcher := &recordingDispatcher{fail: map[string]bool{"INS-4": true}}
	uc := NewSweepUseCase(records, newMemoryLedger(), sent, dispatcher, testCatalog(), testClassifier(t), time.Second)

	report, err := uc.RunOnce(context.Background())
	require.Error(t, err, "permit kind failed")
	assert.Equal(t, SweepReport{Candidates: 2, Sent: 1, Failed: 1}, report)
	require.Len(t, dispatcher.calls, 2)
	assert.Equal(t, "INS-1", dispatcher.calls[0].EntityID)
	assert.Equal(t, "Criadero", dispatcher.calls[0].Category)
}

func TestSweepUseCase_RunOnce_SkipsPaidEntities(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockIRecordStore(ctrl)
	sent := mock_interfaces.NewMockISentActionRepository(ctrl)

	records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "inscrip").Return([]entities.Record{
		{"numero_inscripcion": "INS-1", "email": "a@x.com", "tipo_establecimiento": "Criadero"},
		{"numero_inscripcion": "INS-2", "email": "b@x.com", "tipo_establecimiento": "Criadero"},
		{"numero_inscripcion": "INS-3", "email": "c@x.com", "tipo_establecimiento": "Criadero"},
	}, nil)
	records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "permisos").Return(nil, nil)
	sent.EXPECT().ActionsFor(gomock.Any(), entities.EntityKindInscription, gomock.Any()).
		Return(map[string][]entities.ActionKind{}, nil)

	ledger := newMemoryLedger()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.Upsert(context.Background(), entities.PaymentRecord{
		PaymentID: "p-1", EntityID: "INS-1", Kind: entities.EntityKindInscription, Status: "approved", CreatedAt: created,
	}))
	require.NoError(t, ledger.Upsert(context.Background(), entities.PaymentRecord{
		PaymentID: "p-2", EntityID: "INS-2", Kind: entities.EntityKindInscription, Status: "rejected", CreatedAt: created,
	}))

	dispatcher := &recordingDispatcher{}
	uc := NewSweepUseCase(records, ledger, sent, dispatcher, testCatalog(), testClassifier(t), time.Second)

	report, err := uc.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SweepReport{Candidates: 2, Sent: 2}, report)
	require.Len(t, dispatcher.calls, 2)
	assert.Equal(t, "INS-2", dispatcher.calls[0].EntityID)
	assert.Equal(t, "INS-3", dispatcher.calls[1].EntityID)
}

type panickingRecords struct {
	calls atomic.Int32
}

func (p *panickingRecords) AppendRows(context.Context, string, string, [][]string) error { return nil }

func (p *panickingRecords) UpdateCell(context.Context, string, string, string, string, string, string) error {
	return nil
}

func (p *panickingRecords) ReadRows(context.Context, string, string) ([]entities.Record, error) {
	p.calls.Add(1)
	panic("boom")
}

func TestSweepUseCase_Run_SurvivesPanics(t *testing.T) {
	records := &panickingRecords{}
	uc := NewSweepUseCase(records, nil, nil, &recordingDispatcher{}, testCatalog(), nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		uc.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return records.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestSweepUseCase_Run_DisabledInterval(t *testing.T) {
	uc := NewSweepUseCase(nil, nil, nil, nil, testCatalog(), nil, 0)
	uc.Run(context.Background(), 0)
}
