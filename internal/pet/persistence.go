package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"doodlepet/internal/storage"
)

// Storage keys
const (
	KeyStats    = "doodle-pet-stats"
	KeySkin     = "doodle-pet-skin"
	KeyScale    = "doodle-pet-scale"
	KeyVisible  = "doodle-pet-visible"
	KeyLanguage = "doodle-language"
)

// saveTimeout bounds a fire-and-forget save.
const saveTimeout = 5 * time.Second

// Repository loads and saves the pet's stats and preferences.
type Repository struct {
	store storage.Store
}

// NewRepository returns a Repository backed by store.
func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store}
}

// LoadStats returns the saved stats, or nil when there are none or they
// cannot be read. Fields missing from the blob take their defaults.
func (r *Repository) LoadStats(ctx context.Context) *Stats {
	data, ok, err := r.store.Get(ctx, KeyStats)
	if err != nil {
		log.Printf("Error reading stats: %v. Adopting a new pet.", err)
		return nil
	}
	if !ok {
		log.Printf("No saved stats. Adopting a new pet.")
		return nil
	}

	s, err := decodeStats(data)
	if err != nil {
		log.Printf("Error loading stats: %v. Adopting a new pet.", err)
		return nil
	}
	return &s
}

// SaveStats implements Saver. Errors are logged and otherwise ignored.
func (r *Repository) SaveStats(s Stats) {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Error saving stats: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := r.store.Put(ctx, KeyStats, data); err != nil {
		log.Printf("Error writing stats: %v", err)
	}
}

// LoadPrefs returns the saved preferences. Each one falls back to its
// default on its own when missing or unreadable.
func (r *Repository) LoadPrefs(ctx context.Context, defaults Prefs) Prefs {
	p := defaults

	var skin string
	if r.load(ctx, KeySkin, &skin) {
		p.Skin = LookupSkin(skin).ID
	}
	var scale float64
	if r.load(ctx, KeyScale, &scale) {
		p.Scale = ClampScale(scale)
	}
	var visible bool
	if r.load(ctx, KeyVisible, &visible) {
		p.Visible = visible
	}
	var language string
	if r.load(ctx, KeyLanguage, &language) && language != "" {
		p.Language = language
	}
	return p
}

// SavePrefs writes every preference under its own key.
func (r *Repository) SavePrefs(ctx context.Context, p Prefs) error {
	values := []struct {
		key   string
		value any
	}{
		{KeySkin, p.Skin},
		{KeyScale, ClampScale(p.Scale)},
		{KeyVisible, p.Visible},
		{KeyLanguage, p.Language},
	}
	for _, v := range values {
		data, err := json.Marshal(v.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", v.key, err)
		}
		if err := r.store.Put(ctx, v.key, data); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// ExportStats writes the saved stats blob to w as indented JSON.
func (r *Repository) ExportStats(ctx context.Context, w io.Writer) error {
	data, ok, err := r.store.Get(ctx, KeyStats)
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	if !ok {
		return fmt.Errorf("no saved stats to export")
	}
	s, err := decodeStats(data)
	if err != nil {
		return fmt.Errorf("decode stats: %w", err)
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(out)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// ImportStats reads a stats blob from rd, repairs it the way a load would
// and saves it. A blob that is not valid JSON is rejected.
func (r *Repository) ImportStats(ctx context.Context, rd io.Reader, now time.Time, policy Policy) (Stats, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return Stats{}, fmt.Errorf("read import: %w", err)
	}
	s, err := decodeStats(data)
	if err != nil {
		return Stats{}, fmt.Errorf("decode import: %w", err)
	}
	s = sanitize(s, now, policy)

	out, err := json.Marshal(s)
	if err != nil {
		return Stats{}, fmt.Errorf("encode stats: %w", err)
	}
	if err := r.store.Put(ctx, KeyStats, out); err != nil {
		return Stats{}, fmt.Errorf("save stats: %w", err)
	}
	log.Printf("Imported pet: level %d", s.Level)
	return s, nil
}

func (r *Repository) load(ctx context.Context, key string, v any) bool {
	data, ok, err := r.store.Get(ctx, key)
	if err != nil {
		log.Printf("Error reading %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Error loading %s: %v", key, err)
		return false
	}
	return true
}

// decodeStats overlays a blob on the new-pet defaults.
func decodeStats(data []byte) (Stats, error) {
	s := Stats{
		Hunger:    DefaultHunger,
		Happiness: DefaultHappiness,
		Health:    DefaultHealth,
		Level:     StartingLevel,
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Stats{}, err
	}
	return s, nil
}
