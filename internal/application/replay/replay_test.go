package replay

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spearfall/internal/application/system"
	"github.com/younwookim/spearfall/internal/domain/entity"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder(42, "demo")
	assert.True(t, r.IsRecording())

	cmds := []entity.Command{entity.CmdMoveLeft}
	r.Record(1.0/60, cmds)
	cmds[0] = entity.CmdJump // caller reuses its buffer
	r.Record(1.0/60, nil)

	r.Stop()
	r.Record(1.0/60, cmds)
	assert.False(t, r.IsRecording())

	data := r.Data()
	require.Equal(t, 2, r.FrameCount())
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int64(42), data.Seed)
	assert.Equal(t, []entity.Command{entity.CmdMoveLeft}, data.Frames[0].Cmds)
	assert.Nil(t, data.Frames[1].Cmds)
	assert.Equal(t, 1, data.Frames[1].F)
}

func TestSaveAndLoad(t *testing.T) {
	r := NewRecorder(7, "demo")
	r.Record(0.016, []entity.Command{entity.CmdMoveRight, entity.CmdFire})
	r.Record(0.017, nil)

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, r.Save(path))

	data, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, r.Data().Frames, data.Frames)
	assert.Equal(t, "demo", data.Stage)

	_, err = LoadReplay(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestReplayer(t *testing.T) {
	data := ReplayData{
		Seed:  3,
		Stage: "demo",
		Frames: []Frame{
			{F: 0, DT: 0.5, Cmds: []entity.Command{entity.CmdJump}},
			{F: 1, DT: 0.25},
		},
	}
	r := NewReplayer(data)
	assert.Equal(t, 2, r.TotalFrames())
	assert.Equal(t, int64(3), r.Seed())
	assert.Equal(t, "demo", r.Stage())

	dt, cmds, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 0.5, dt)
	assert.Equal(t, []entity.Command{entity.CmdJump}, cmds)

	_, _, ok = r.Next()
	require.True(t, ok)
	assert.True(t, r.Done())

	_, _, ok = r.Next()
	assert.False(t, ok)

	r.Reset()
	assert.Equal(t, 0, r.CurrentFrame())
	assert.False(t, r.Done())
}

func newTestWorld() *system.World {
	w := system.NewWorld(config.Defaults())
	w.AddObstacle(geom.R(0, 200, 800, 32), nil)
	w.AddObstacle(geom.R(500, 0, 32, 200), nil)
	w.SpawnPlayer(geom.V(100, 100))
	return w
}

// A recorded session replayed on a fresh world lands in the same state.
func TestReplay_Deterministic(t *testing.T) {
	script := func(i int) []entity.Command {
		switch {
		case i == 90 || i == 150:
			return []entity.Command{entity.CmdMoveRight, entity.CmdJump}
		case i%40 == 0:
			return []entity.Command{entity.CmdFire}
		case i > 60 && i < 200:
			return []entity.Command{entity.CmdMoveRight}
		case i == 200:
			return []entity.Command{entity.CmdStopHorizontal}
		}
		return nil
	}

	live := newTestWorld()
	rec := NewRecorder(1, "test")
	for i := 0; i < 300; i++ {
		cmds := script(i)
		rec.Record(1.0/60, cmds)
		live.Step(1.0/60, cmds)
	}

	replayed := newTestWorld()
	rp := NewReplayer(rec.Data())
	for {
		dt, cmds, ok := rp.Next()
		if !ok {
			break
		}
		replayed.Step(dt, cmds)
	}

	assert.Equal(t, live.Player().Rect, replayed.Player().Rect)
	assert.Equal(t, live.Player().Velocity, replayed.Player().Velocity)
	require.Equal(t, len(live.Spears()), len(replayed.Spears()))
	for i := range live.Spears() {
		assert.Equal(t, live.Spears()[i].Rect, replayed.Spears()[i].Rect)
		assert.Equal(t, live.Spears()[i].Stuck, replayed.Spears()[i].Stuck)
	}
}
