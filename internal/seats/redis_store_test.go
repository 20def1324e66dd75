package seats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbus/internal/seats"
)

func TestSeatKey_RedisKey(t *testing.T) {
	key := seats.NewSeatKey(7, "3B", "2024-05-01")
	assert.Equal(t, "seat_hold:7:3B:2024-05-01", key.RedisKey())
}

func TestTryHold_SeatFree(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	// Token is generated inside TryHold, so match it by pattern.
	mock.Regexp().ExpectSetNX(key.RedisKey(), `[a-f0-9-]{36}`, 15*time.Minute).SetVal(true)

	token, ok, err := store.TryHold(context.Background(), key, 15*time.Minute)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTryHold_SeatAlreadyHeld(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	mock.Regexp().ExpectSetNX(key.RedisKey(), `[a-f0-9-]{36}`, 15*time.Minute).SetVal(false)

	token, ok, err := store.TryHold(context.Background(), key, 15*time.Minute)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestTryHold_StoreDown(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	mock.Regexp().ExpectSetNX(key.RedisKey(), `[a-f0-9-]{36}`, 15*time.Minute).
		SetErr(errors.New("connection refused"))

	_, ok, err := store.TryHold(context.Background(), key, 15*time.Minute)

	assert.False(t, ok)
	assert.ErrorIs(t, err, seats.ErrStoreUnavailable)
}

func TestTryHold_NoClient(t *testing.T) {
	store := seats.NewHoldStore(nil)

	_, _, err := store.TryHold(context.Background(), seats.NewSeatKey(1, "1A", "2024-05-01"), time.Minute)

	assert.ErrorIs(t, err, seats.ErrStoreUnavailable)
}

func TestRelease_TokenMatches(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")
	token := "11111111-2222-3333-4444-555555555555"

	mock.Regexp().ExpectEval(`.*`, []string{key.RedisKey()}, token).SetVal(int64(1))

	require.NoError(t, store.Release(context.Background(), key, token))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelease_TokenMismatchIsNoop(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	// The compare-and-delete script returns 0 when the stored token differs;
	// that is not an error for the caller.
	mock.Regexp().ExpectEval(`.*`, []string{key.RedisKey()}, "stale-token").SetVal(int64(0))

	assert.NoError(t, store.Release(context.Background(), key, "stale-token"))
}

func TestForceRelease(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	mock.ExpectDel(key.RedisKey()).SetVal(1)

	require.NoError(t, store.ForceRelease(context.Background(), key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsHeld(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := seats.NewHoldStore(db)

	key := seats.NewSeatKey(7, "3B", "2024-05-01")

	mock.ExpectExists(key.RedisKey()).SetVal(1)

	held, err := store.IsHeld(context.Background(), key)

	require.NoError(t, err)
	assert.True(t, held)

	mock.ExpectExists(key.RedisKey()).SetVal(0)

	held, err = store.IsHeld(context.Background(), key)

	require.NoError(t, err)
	assert.False(t, held)
}
