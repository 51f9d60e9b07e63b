package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"caza_backend/internal/domain/entities"
	"caza_backend/internal/usecase/interfaces"
	mock_interfaces "caza_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInspectionUseCase_SearchInscriptionsByCUIT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockIRecordStore(ctrl)
	records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "inscrip").Return([]entities.Record{
		{"CUIT": "20-12345678-9", "numero_inscripcion": "INS-1"},
		{"CUIT": "27-99999999-1", "numero_inscripcion": "INS-2"},
		{"CUIT": "20123456789", "numero_inscripcion": ""},
	}, nil)

	ledger := newMemoryLedger()
	paidAt := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	_ = ledger.Upsert(context.Background(), entities.PaymentRecord{PaymentID: "5", EntityID: "INS-1", Kind: entities.EntityKindInscription, Status: "approved", CreatedAt: paidAt})

	uc := NewInspectionUseCase(records, ledger, testCatalog(), testClassifier(t), time.Second)
	res, err := uc.SearchInscriptionsByCUIT(context.Background(), "20 12345678-9")
	require.NoError(t, err)

	assert.True(t, res.Found)
	require.Equal(t, 2, res.Total)
	assert.Equal(t, entities.DerivedStatusPaid, res.Results[0].PaymentStatus)
	assert.Equal(t, "5", res.Results[0].PaymentID)
	require.NotNil(t, res.Results[0].PaymentDate)
	assert.True(t, res.Results[0].PaymentDate.Equal(paidAt))
	assert.Equal(t, entities.DerivedStatusNoID, res.Results[1].PaymentStatus)
}

func TestInspectionUseCase_SearchInscriptionsByCUIT_Errors(t *testing.T) {
	uc := NewInspectionUseCase(nil, nil, testCatalog(), nil, 0)
	_, err := uc.SearchInscriptionsByCUIT(context.Background(), " - ")
	assert.ErrorIs(t, err, ErrMissingSearchTerm)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	records := mock_interfaces.NewMockIRecordStore(ctrl)
	records.EXPECT().ReadRows(gomock.Any(), gomock.Any(), gomock.Any()).Return([]entities.Record{{"numero_inscripcion": "INS-1", "razon_social": "x"}}, nil)

	uc = NewInspectionUseCase(records, newMemoryLedger(), testCatalog(), nil, 0)
	_, err = uc.SearchInscriptionsByCUIT(context.Background(), "20123")
	assert.ErrorIs(t, err, interfaces.ErrColumnNotFound)
	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"numero_inscripcion", "razon_social"}, mce.Available)
}

func TestInspectionUseCase_SearchPermits(t *testing.T) {
	rows := []entities.Record{
		{"ID": "15.0", "DNI Titular": "30.111.222"},
		{"ID": "16", "DNI Titular": "30111223"},
		{"ID": "17", "DNI Titular": ""},
	}

	t.Run("missing terms", func(t *testing.T) {
		uc := NewInspectionUseCase(nil, nil, testCatalog(), nil, 0)
		_, err := uc.SearchPermits(context.Background(), "", " ")
		assert.ErrorIs(t, err, ErrMissingSearchTerm)
	})

	cases := []struct {
		name, id, dni string
		want          []string
	}{
		{"by id", "15", "", []string{"15"}},
		{"by dni", "", "30111222", []string{"15"}},
		{"id or dni", "17", "30.111.223", []string{"16", "17"}},
		{"no match", "99", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			records := mock_interfaces.NewMockIRecordStore(ctrl)
			records.EXPECT().ReadRows(gomock.Any(), "sheet-1", "permisos").Return(rows, nil)

			uc := NewInspectionUseCase(records, newMemoryLedger(), testCatalog(), testClassifier(t), 0)
			res, err := uc.SearchPermits(context.Background(), tc.id, tc.dni)
			require.NoError(t, err)

			var got []string
			for _, m := range res.Results {
				got = append(got, m.EntityID)
				assert.Equal(t, entities.DerivedStatusPending, m.PaymentStatus)
			}
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want) > 0, res.Found)
		})
	}
}
