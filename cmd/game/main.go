package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spearfall/internal/application/game"
	"github.com/younwookim/spearfall/internal/application/replay"
	"github.com/younwookim/spearfall/internal/application/scene/playing"
	"github.com/younwookim/spearfall/internal/infrastructure/asset"
	"github.com/younwookim/spearfall/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

//go:embed assets
var assetFS embed.FS

func main() {
	configDir := flag.String("config", "", "Config directory (default: built-in configs, read-only)")
	stageName := flag.String("stage", "demo", "Stage to load")
	editor := flag.Bool("editor", false, "Enable the platform editor (1: add, 3: save, 4: delete)")
	assetsDir := flag.String("assets", "", "Asset directory (default: built-in assets)")
	seed := flag.Int64("seed", 0, "Seed for enemy decisions (default: time based)")
	record := flag.Bool("record", false, "Record the session to a replay file")
	replayFile := flag.String("replay", "", "Play back a recorded replay file")
	flag.Parse()

	var replayer *replay.Replayer
	if *replayFile != "" {
		data, err := replay.LoadReplay(*replayFile)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		replayer = replay.NewReplayer(*data)
		*stageName = data.Stage
		*seed = data.Seed
		*editor = false
		*record = false
		log.Printf("Replaying %s (%d frames)", *replayFile, replayer.TotalFrames())
	}
	if *record && *editor {
		log.Fatalf("Failed to start: -record cannot be combined with -editor")
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	if *editor && *configDir == "" {
		log.Printf("Editor enabled without -config: edits will not be saved")
	}

	physics, err := loader.LoadPhysics()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var stage *config.StageConfig
	if *editor {
		stage, err = loader.LoadStageOrEmpty(*stageName)
	} else {
		stage, err = loader.LoadStage(*stageName)
	}
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	assets, err := newAssetFS(*assetsDir)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	cache := asset.NewCache(assets)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var recorder *replay.Recorder
	if *record {
		recorder = replay.NewRecorder(*seed, *stageName)
	}

	scene, err := playing.New(playing.Options{
		Physics:   physics,
		Stage:     stage,
		StageName: *stageName,
		Saver:     loader,
		Editor:    *editor,
		Composer:  asset.NewComposer(cache, "platform"),
		Sprites:   cache,
		Seed:      *seed,
		Recorder:  recorder,
		Replayer:  replayer,
	})
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	log.Printf("Stage %s loaded (%d platforms, seed %d)", *stageName, len(stage.Platforms), *seed)

	disp := physics.Display
	g := game.New(scene, disp.ScreenWidth, disp.ScreenHeight, disp.Framerate)

	ebiten.SetWindowSize(disp.ScreenWidth*disp.Scale, disp.ScreenHeight*disp.Scale)
	ebiten.SetWindowTitle(disp.Title)
	ebiten.SetTPS(disp.Framerate)

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		filename := replay.GenerateFilename()
		if err := recorder.Save(filename); err != nil {
			log.Printf("Failed to save replay: %v", err)
		} else {
			log.Printf("Replay saved: %s (%d frames)", filename, recorder.FrameCount())
		}
	}

	if runErr != nil && runErr != ebiten.Termination {
		log.Fatal(runErr)
	}
}

// newLoader reads configs from dir, or from the embedded copy when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, ""), nil
}

func newAssetFS(dir string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(assetFS, "assets")
}
