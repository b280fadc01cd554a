package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trip-planner/trip-offer-aggregation-service/internal/domain"
)

func testNewTrip() domain.NewTrip {
	return domain.NewTrip{
		Destination:   "파리",
		DestinationID: "paris",
		Country:       "프랑스",
		Airport:       "CDG",
		Duration:      7,
		Month:         "2024-04",
		Flight:        domain.Offer{ID: "flight-1", Airline: "대한항공", AirlineCode: "KE", Price: 950_000},
	}
}

func testSavedTrip(id string) domain.SavedTrip {
	return domain.SavedTrip{
		ID:            id,
		Destination:   "파리",
		DestinationID: "paris",
		SavedAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSavedTrips_ListPrefersRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	want := []domain.SavedTrip{testSavedTrip("1")}
	remote.EXPECT().List(gomock.Any()).Return(want, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	trips, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, trips)
}

func TestSavedTrips_ListFallsBackOnNotImplemented(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	want := []domain.SavedTrip{testSavedTrip("2")}
	remote.EXPECT().List(gomock.Any()).Return(nil, domain.ErrNotImplemented)
	local.EXPECT().List(gomock.Any()).Return(want, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	trips, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, trips)
}

func TestSavedTrips_ListFallsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))
	local.EXPECT().List(gomock.Any()).Return(nil, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	trips, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestSavedTrips_SaveFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	trip := testNewTrip()
	saved := testSavedTrip("local-1")

	remote.EXPECT().Save(gomock.Any(), trip).Return(nil, domain.ErrNotImplemented)
	local.EXPECT().Save(gomock.Any(), trip).Return(&saved, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	got, err := uc.Save(context.Background(), trip)
	require.NoError(t, err)
	assert.Equal(t, &saved, got)
}

func TestSavedTrips_SaveSurfacesLocalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	trip := testNewTrip()
	remote.EXPECT().Save(gomock.Any(), trip).Return(nil, errors.New("refused"))
	local.EXPECT().Save(gomock.Any(), trip).Return(nil, errors.New("disk full"))

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	_, err := uc.Save(context.Background(), trip)
	assert.Error(t, err)
}

func TestSavedTrips_DeleteFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	remote.EXPECT().Delete(gomock.Any(), "trip-9").Return(false, domain.ErrNotImplemented)
	local.EXPECT().Delete(gomock.Any(), "trip-9").Return(true, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	removed, err := uc.Delete(context.Background(), "trip-9")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestSavedTrips_DeleteMissingIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := domain.NewMockTripStore(ctrl)
	local := domain.NewMockTripStore(ctrl)

	remote.EXPECT().Delete(gomock.Any(), "ghost").Return(false, domain.ErrNotImplemented)
	local.EXPECT().Delete(gomock.Any(), "ghost").Return(false, nil)

	uc := NewSavedTripsUseCase(remote, local, zerolog.Nop())
	removed, err := uc.Delete(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, removed)
}
