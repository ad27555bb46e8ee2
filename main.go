package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"doodlepet/internal/audio"
	"doodlepet/internal/behavior"
	"doodlepet/internal/config"
	"doodlepet/internal/i18n"
	"doodlepet/internal/pet"
	"doodlepet/internal/storage"
	"doodlepet/internal/ui"
)

type options struct {
	configPath string
	stats      bool
	exportPath string
	importPath string
	seed       int64
	language   string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("doodlepet", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", config.DefaultPath(), "path to config file")
	fs.BoolVar(&opts.stats, "stats", false, "show the pet's stats and exit")
	fs.StringVar(&opts.exportPath, "export", "", "write the saved stats to `file` (- for stdout) and exit")
	fs.StringVar(&opts.importPath, "import", "", "replace the saved stats with `file` and exit")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed for the pet's behavior (0 picks one)")
	fs.StringVar(&opts.language, "lang", "", "language for the pet, e.g. en-US")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.exportPath != "" && opts.importPath != "" {
		return options{}, fmt.Errorf("-export and -import cannot be used together")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintf(os.Stderr, "doodlepet: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "doodlepet: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.language != "" {
		cfg.Pet.Language = opts.language
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "doodlepet")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	store, err := storage.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	catalog, err := i18n.Load()
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}

	repo := pet.NewRepository(store)
	ctx := context.Background()

	switch {
	case opts.importPath != "":
		return importStats(ctx, repo, cfg, opts.importPath, stdout)
	case opts.exportPath != "":
		return exportStats(ctx, repo, opts.exportPath, stdout)
	}

	language := cfg.Pet.Language
	if language == "" {
		language = os.Getenv("LANG")
	}
	prefs := repo.LoadPrefs(ctx, cfg.DefaultPrefs(catalog.Match(language)))
	prefs.Language = catalog.Match(prefs.Language)

	engine := pet.NewEngine(repo.LoadStats(ctx), cfg.Policy, pet.WithSaver(repo))

	if opts.stats {
		text := func(key string) string { return catalog.Text(prefs.Language, key) }
		return ui.DisplayStats(engine.Stats(), pet.LookupSkin(prefs.Skin), text)
	}

	var player audio.Player = audio.Muted{}
	var bell *audio.Bell
	if cfg.UI.Bell {
		bell = &audio.Bell{}
		player = bell
	}

	controller := behavior.New(engine, behavior.TerminalConfig(),
		behavior.WithRand(behavior.NewRand(cfg.Seed)),
		behavior.WithPlayer(player),
		behavior.WithMessages(catalog),
		behavior.WithLocale(prefs.Language, prefs.Skin),
		behavior.WithReactionHooks(nil, func(c behavior.Category) {
			log.Printf("Reaction %s ended", c)
		}),
	)

	model := ui.NewModel(ui.Deps{
		Engine:             engine,
		Controller:         controller,
		Repo:               repo,
		Catalog:            catalog,
		Prefs:              prefs,
		Bell:               bell,
		FrameInterval:      cfg.UI.FrameInterval,
		CheckpointInterval: cfg.UI.CheckpointInterval,
	})

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		engine.Checkpoint()
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func exportStats(ctx context.Context, repo *pet.Repository, path string, stdout io.Writer) error {
	if path == "-" {
		return repo.ExportStats(ctx, stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := repo.ExportStats(ctx, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	fmt.Fprintf(stdout, "Exported pet to %s\n", path)
	return nil
}

func importStats(ctx context.Context, repo *pet.Repository, cfg *config.Config, path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open import: %w", err)
	}
	defer f.Close()

	s, err := repo.ImportStats(ctx, f, time.Now(), cfg.Policy)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Imported pet at level %d (%s)\n", s.Level, pet.GetStatusWithLabel(pet.Baseline(s), s))
	return nil
}
