package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

func testSnapshot() Snapshot {
	return Snapshot{
		AuthUser: &entity.AuthUser{UID: "u1", Email: "a@example.com"},
		Profile:  &entity.Profile{ID: "u1", Role: entity.RoleRestaurant, Name: "Cafe", Location: &entity.Location{Lat: 1, Lng: 2}},
		Location: &entity.Location{Lat: 1, Lng: 2},
	}
}

func TestSession_NotReadyBeforePublish(t *testing.T) {
	s, _ := New()

	select {
	case <-s.Ready():
		t.Fatal("session should not be ready")
	default:
	}
	assert.False(t, s.Snapshot().IsAuthenticated())
	assert.Equal(t, entity.RoleNone, s.Snapshot().Role())
}

func TestSession_PublishSignalsOnce(t *testing.T) {
	s, w := New()

	w.Publish(testSnapshot())
	w.Publish(testSnapshot())

	select {
	case <-s.Ready():
	default:
		t.Fatal("session should be ready")
	}
	assert.True(t, s.Snapshot().IsAuthenticated())
	assert.Equal(t, entity.RoleRestaurant, s.Snapshot().Role())
}

func TestSession_SnapshotIsCopy(t *testing.T) {
	s, w := New()
	w.Publish(testSnapshot())

	snap := s.Snapshot()
	snap.Profile.Name = "changed"
	snap.Location.Lat = 99
	snap.AuthUser.UID = "other"

	again := s.Snapshot()
	assert.Equal(t, "Cafe", again.Profile.Name)
	assert.Equal(t, 1.0, again.Location.Lat)
	assert.Equal(t, "u1", again.AuthUser.UID)
}

func TestSession_Wait(t *testing.T) {
	s, w := New()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		snap, err := s.Wait(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "u1", snap.Profile.ID)
	}()

	w.Publish(testSnapshot())
	wg.Wait()
}

func TestSession_WaitCancelled(t *testing.T) {
	s, _ := New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Wait(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWriter_Clear(t *testing.T) {
	s, w := New()
	w.Publish(testSnapshot())
	w.Clear()

	assert.False(t, s.Snapshot().IsAuthenticated())
	select {
	case <-s.Ready():
	default:
		t.Fatal("readiness must not be reset")
	}
}
