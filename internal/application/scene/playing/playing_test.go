package playing

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spearfall/internal/application/replay"
	"github.com/younwookim/spearfall/internal/application/scene"
	"github.com/younwookim/spearfall/internal/application/state"
	"github.com/younwookim/spearfall/internal/application/system"
	"github.com/younwookim/spearfall/internal/domain/geom"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

const frame = 1.0 / 60

func createTestStage() *config.StageConfig {
	return &config.StageConfig{
		ID:          "test",
		TileSize:    16,
		PlayerSpawn: config.PositionConfig{X: 200, Y: 100},
		Platforms: []config.PlatformConfig{
			{X: 100, Y: 200, TileW: 10},
		},
		Enemies: []config.EnemySpawnConfig{
			{X: 120, Y: 150, Policy: "idle"},
		},
	}
}

func createTestPlaying(t *testing.T, mutate func(*Options)) *Playing {
	t.Helper()
	opts := Options{
		Physics:   config.Defaults(),
		Stage:     createTestStage(),
		StageName: "test",
		Seed:      1,
	}
	if mutate != nil {
		mutate(&opts)
	}
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func press(k ebiten.Key) system.InputEvent   { return system.InputEvent{Key: k, Down: true} }
func release(k ebiten.Key) system.InputEvent { return system.InputEvent{Key: k, Down: false} }

// run steps p n frames with no input
func run(t *testing.T, p *Playing, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, p.step(frame, nil))
	}
}

func TestPlaying_ImplementsScene(t *testing.T) {
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, nil)

	assert.Equal(t, state.StatePlaying, p.State())
	require.NotNil(t, p.World().Player())
	assert.Equal(t, geom.V(200, 100), p.World().Player().Rect.Pos())
	assert.Len(t, p.World().Obstacles(), 1)
	assert.Len(t, p.World().Enemies(), 1)
	assert.Len(t, p.Stage().Platforms, 1)
}

func TestNewPlaying_BadPolicy(t *testing.T) {
	_, err := New(Options{
		Physics: config.Defaults(),
		Stage: &config.StageConfig{
			TileSize: 16,
			Enemies:  []config.EnemySpawnConfig{{Policy: "teleport"}},
		},
		StageName: "broken",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load stage broken")
}

func TestPlaying_PlayerLands(t *testing.T) {
	p := createTestPlaying(t, nil)

	run(t, p, 120)

	pl := p.World().Player()
	assert.True(t, pl.Grounded)
	assert.Equal(t, 200.0, pl.Rect.Bottom())
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_MoveAndFire(t *testing.T) {
	p := createTestPlaying(t, nil)
	run(t, p, 120)
	x := p.World().Player().Rect.X

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyD)}))
	run(t, p, 5)
	assert.Greater(t, p.World().Player().Rect.X, x, "held key keeps moving")

	require.NoError(t, p.step(frame, []system.InputEvent{release(ebiten.KeyD), press(ebiten.KeyF)}))
	assert.Len(t, p.World().Spears(), 1)
}

func TestPlaying_Pause(t *testing.T) {
	p := createTestPlaying(t, nil)

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyP)}))
	assert.Equal(t, state.StatePaused, p.State())

	before := p.World().Player().Rect
	run(t, p, 10)
	assert.Equal(t, before, p.World().Player().Rect, "paused world does not advance")

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyP)}))
	assert.Equal(t, state.StatePlaying, p.State())
	assert.NotEqual(t, before, p.World().Player().Rect)
}

func TestPlaying_Quit(t *testing.T) {
	p := createTestPlaying(t, nil)

	err := p.step(frame, []system.InputEvent{press(ebiten.KeyEscape)})
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestPlaying_GameOverAndRestart(t *testing.T) {
	stage := createTestStage()
	stage.Platforms = nil
	p := createTestPlaying(t, func(o *Options) { o.Stage = stage })

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyR)}))
	assert.Equal(t, state.StatePlaying, p.State(), "reload only after game over")

	run(t, p, 300)
	require.Equal(t, state.StateGameOver, p.State())
	fallen := p.World().Player().Rect
	run(t, p, 5)
	assert.Equal(t, fallen, p.World().Player().Rect, "world is frozen on game over")

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyR)}))
	assert.Equal(t, state.StatePlaying, p.State())
	assert.Less(t, p.World().Player().Rect.Y, 200.0)
	assert.False(t, p.World().FellOut())
}

// mockSaver counts saves
type mockSaver struct {
	saved []string
}

func (s *mockSaver) SaveStage(name string, cfg *config.StageConfig) error {
	s.saved = append(s.saved, name)
	return nil
}

func TestPlaying_Editor(t *testing.T) {
	saver := &mockSaver{}
	p := createTestPlaying(t, func(o *Options) {
		o.Editor = true
		o.Saver = saver
	})
	p.cursor = func() geom.Vec2 { return geom.V(500, 500) }

	assert.Equal(t, state.StateEditing, p.State())

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyDigit1)}))
	assert.Len(t, p.World().Obstacles(), 2)
	assert.Len(t, p.Stage().Config.Platforms, 2)
	assert.Equal(t, []string{"test"}, saver.saved)

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyDigit4)}))
	assert.Len(t, p.World().Obstacles(), 1)

	// physics keeps running while editing
	run(t, p, 120)
	assert.True(t, p.World().Player().Grounded)

	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyP)}))
	assert.Equal(t, state.StatePaused, p.State())
	require.NoError(t, p.step(frame, []system.InputEvent{press(ebiten.KeyP)}))
	assert.Equal(t, state.StateEditing, p.State())
}

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#C8FFFD", color.RGBA{200, 255, 253, 255}},
		{"#003300", color.RGBA{0, 51, 0, 255}},
		{"C8FFFD", fallback},
		{"#12345", fallback},
		{"#zzzzzz", fallback},
		{"", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHexColor(tt.in, fallback))
		})
	}
}

func TestPlaying_RecordAndReplay(t *testing.T) {
	rec := replay.NewRecorder(1, "test")
	live := createTestPlaying(t, func(o *Options) { o.Recorder = rec })

	run(t, live, 30)
	require.NoError(t, live.step(frame, []system.InputEvent{press(ebiten.KeyD)}))
	run(t, live, 20)
	require.NoError(t, live.step(frame, []system.InputEvent{release(ebiten.KeyD), press(ebiten.KeyF)}))
	run(t, live, 10)
	require.Equal(t, 62, rec.FrameCount())

	rp := replay.NewReplayer(rec.Data())
	replayed := createTestPlaying(t, func(o *Options) { o.Replayer = rp })
	// live input is ignored while replaying
	require.NoError(t, replayed.step(frame, []system.InputEvent{press(ebiten.KeyA)}))
	run(t, replayed, 61)

	assert.True(t, rp.Done())
	assert.Equal(t, live.World().Player().Rect, replayed.World().Player().Rect)
	assert.Len(t, replayed.World().Spears(), len(live.World().Spears()))

	run(t, replayed, 1)
	assert.Equal(t, state.StateGameOver, replayed.State())
}
