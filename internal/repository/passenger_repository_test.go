package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyops/airline-backoffice/internal/model"
)

// seedBookingFixtures creates the user and flight every passenger row
// needs to reference.
func seedBookingFixtures(t *testing.T, db *sql.DB) (uint64, *model.Flight) {
	t.Helper()
	uid, err := NewUserRepo(db).Create(context.Background(), "traveler", "pw", "traveler@example.com", 4)
	require.NoError(t, err)
	f := seedFlight(t, NewFlightRepo(db), "FL700", "Berlin", "2025-07-01 07:00:00", 250, 10)
	return uid, f
}

func insertPassenger(t *testing.T, db *sql.DB, repo *PassengerRepo, p *model.Passenger) {
	t.Helper()
	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.CreateTx(ctx, tx, p))
	require.NoError(t, tx.Commit())
}

func TestPassengerCreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	uid, f := seedBookingFixtures(t, db)
	repo := NewPassengerRepo(db)
	ctx := context.Background()

	p := &model.Passenger{
		UserID:         uid,
		Name:           "John Doe",
		Age:            30,
		PassportNumber: "A1234567",
		TicketID:       "tkt-1",
		FlightID:       f.ID,
	}
	insertPassenger(t, db, repo, p)
	assert.NotZero(t, p.ID)

	byTicket, err := repo.GetByTicketID(ctx, "tkt-1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", byTicket.Name)
	assert.False(t, byTicket.Insurance)

	byPassport, err := repo.GetByPassport(ctx, "A1234567")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byPassport.ID)

	_, err = repo.GetByTicketID(ctx, "nope")
	assert.ErrorIs(t, err, ErrPassengerNotFound)
	_, err = repo.GetByPassport(ctx, "nope")
	assert.ErrorIs(t, err, ErrPassengerNotFound)
}

func TestPassengerDuplicatePassport(t *testing.T) {
	db := newTestDB(t)
	uid, f := seedBookingFixtures(t, db)
	repo := NewPassengerRepo(db)
	ctx := context.Background()

	insertPassenger(t, db, repo, &model.Passenger{
		UserID: uid, Name: "First", Age: 20, PassportNumber: "DUP", TicketID: "t-1", FlightID: f.ID,
	})

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	err = repo.CreateTx(ctx, tx, &model.Passenger{
		UserID: uid, Name: "Second", Age: 21, PassportNumber: "DUP", TicketID: "t-2", FlightID: f.ID,
	})
	assert.ErrorIs(t, err, ErrPassportExists)
	require.NoError(t, tx.Rollback())
}

func TestAddInsuranceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	uid, f := seedBookingFixtures(t, db)
	repo := NewPassengerRepo(db)
	ctx := context.Background()

	insertPassenger(t, db, repo, &model.Passenger{
		UserID: uid, Name: "Insured", Age: 40, PassportNumber: "INS1", TicketID: "t-ins", FlightID: f.ID,
	})

	require.NoError(t, repo.AddInsurance(ctx, "t-ins"))
	require.NoError(t, repo.AddInsurance(ctx, "t-ins"))

	p, err := repo.GetByTicketID(ctx, "t-ins")
	require.NoError(t, err)
	assert.True(t, p.Insurance)

	// unknown tickets are not an error either
	assert.NoError(t, repo.AddInsurance(ctx, "ghost"))
}

func TestPassengerListings(t *testing.T) {
	db := newTestDB(t)
	uid, f := seedBookingFixtures(t, db)
	repo := NewPassengerRepo(db)
	ctx := context.Background()

	other, err := NewUserRepo(db).Create(ctx, "other", "pw", "other@example.com", 4)
	require.NoError(t, err)

	insertPassenger(t, db, repo, &model.Passenger{
		UserID: uid, Name: "Mine A", Age: 30, PassportNumber: "M1", TicketID: "tm-1", FlightID: f.ID,
	})
	insertPassenger(t, db, repo, &model.Passenger{
		UserID: uid, Name: "Mine B", Age: 31, PassportNumber: "M2", TicketID: "tm-2", FlightID: f.ID,
	})
	insertPassenger(t, db, repo, &model.Passenger{
		UserID: other, Name: "Theirs", Age: 50, PassportNumber: "T1", TicketID: "tt-1", FlightID: f.ID,
	})

	mine, err := repo.ListByUser(ctx, uid)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Mine A", mine[0].Name)
	assert.Equal(t, "FL700", mine[0].FlightNumber)
	assert.Equal(t, "Berlin", mine[0].Destination)
	assert.Equal(t, 250.0, mine[0].Price)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
