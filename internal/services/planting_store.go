package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/andreicarpen/planting-calendar/internal/models"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrPeriodRequired   = errors.New("a valid period slot is required")
	ErrImageRequired    = errors.New("image data is required")
	ErrPlantingNotFound = errors.New("planting not found")
)

// PlantingRepository is the persistence service the store mutates through.
// internal/db provides the SQLite implementation; tests inject an in-memory
// fake.
type PlantingRepository interface {
	ListAll() ([]models.Planting, error)
	ListByYear(year int) ([]models.Planting, error)
	FindByID(id int64) (models.Planting, bool, error)
	Create(planting *models.Planting) error
	Save(planting *models.Planting) error
	DeleteByID(id int64) error
	ReplaceAll(plantings []models.Planting) error
	MaxID() (int64, error)
}

type AddPlantingInput struct {
	Title       string
	Description string
	Image       string
	Date        string
	Year        int
}

// PlantingStore owns mutation policy over the planting collection. Every
// mutation is persisted before it returns, and a single mutex serializes
// mutations so each one runs to completion before the next begins.
type PlantingStore struct {
	mu          sync.Mutex
	repo        PlantingRepository
	emojis      *EmojiPicker
	decorations bool
	now         func() time.Time
	lastID      int64
}

func NewPlantingStore(repo PlantingRepository, emojis *EmojiPicker, decorations bool) (*PlantingStore, error) {
	maxID, err := repo.MaxID()
	if err != nil {
		return nil, err
	}

	return &PlantingStore{
		repo:        repo,
		emojis:      emojis,
		decorations: decorations,
		now:         time.Now,
		lastID:      maxID,
	}, nil
}

func (store *PlantingStore) Decorations() bool {
	return store.decorations
}

func (store *PlantingStore) List() ([]models.Planting, error) {
	return store.repo.ListAll()
}

func (store *PlantingStore) ListYear(year int) ([]models.Planting, error) {
	return store.repo.ListByYear(year)
}

// Add validates the candidate, stamps identity and creation time, decorates
// imageless entries in the emoji-bearing variant, and persists the record.
func (store *PlantingStore) Add(input AddPlantingInput) (models.Planting, error) {
	if strings.TrimSpace(input.Title) == "" {
		return models.Planting{}, ErrTitleRequired
	}
	if !IsValidPeriodLabel(input.Date) {
		return models.Planting{}, ErrPeriodRequired
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	planting := models.Planting{
		ID:          store.nextID(),
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Date:        input.Date,
		Year:        input.Year,
		CreatedAt:   store.now().UTC().Format(time.RFC3339),
	}

	if store.decorations && planting.Image == "" {
		glyph, err := store.emojis.Next()
		if err != nil {
			return models.Planting{}, err
		}
		planting.Emoji = glyph
	}

	if err := store.repo.Create(&planting); err != nil {
		return models.Planting{}, err
	}
	return planting, nil
}

// Remove deletes by id. A missing id is not an error; deleting twice ends in
// the same state as deleting once.
func (store *PlantingStore) Remove(id int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.repo.DeleteByID(id)
}

// ReplaceImage attaches a photo to the record and drops its emoji; a record
// never displays both.
func (store *PlantingStore) ReplaceImage(id int64, imageData string) (models.Planting, error) {
	if strings.TrimSpace(imageData) == "" {
		return models.Planting{}, ErrImageRequired
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	planting, found, err := store.repo.FindByID(id)
	if err != nil {
		return models.Planting{}, err
	}
	if !found {
		return models.Planting{}, ErrPlantingNotFound
	}

	planting.Image = imageData
	planting.Emoji = ""
	if err := store.repo.Save(&planting); err != nil {
		return models.Planting{}, err
	}
	return planting, nil
}

// ClearImage removes the photo and, in the emoji-bearing variant, assigns a
// fresh decoration in its place.
func (store *PlantingStore) ClearImage(id int64) (models.Planting, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	planting, found, err := store.repo.FindByID(id)
	if err != nil {
		return models.Planting{}, err
	}
	if !found {
		return models.Planting{}, ErrPlantingNotFound
	}

	planting.Image = ""
	planting.Emoji = ""
	if store.decorations {
		glyph, err := store.emojis.Next()
		if err != nil {
			return models.Planting{}, err
		}
		planting.Emoji = glyph
	}

	if err := store.repo.Save(&planting); err != nil {
		return models.Planting{}, err
	}
	return planting, nil
}

// ReplaceAll swaps the whole collection for an imported one. The id clock is
// re-seeded past the imported ids so later adds stay unique.
func (store *PlantingStore) ReplaceAll(plantings []models.Planting) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.repo.ReplaceAll(plantings); err != nil {
		return err
	}

	for _, planting := range plantings {
		if planting.ID > store.lastID {
			store.lastID = planting.ID
		}
	}
	return nil
}

// nextID is a monotonic millisecond clock: the wall clock when it moves
// forward, the previous id plus one when several adds land in the same
// millisecond. Caller must hold the mutex.
func (store *PlantingStore) nextID() int64 {
	candidate := store.now().UnixMilli()
	if candidate <= store.lastID {
		candidate = store.lastID + 1
	}
	store.lastID = candidate
	return candidate
}
