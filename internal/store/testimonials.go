package store

import (
	"encoding/json"
	"sync"
	"time"

	"nutrisnap/internal/database"
	"nutrisnap/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TestimonialsKey is the fixed storage key for the testimonial list.
const TestimonialsKey = "nutrisnap_testimonials"

// Testimonials is the append-only store of user testimonials.
type Testimonials struct {
	mu      sync.Mutex
	backend database.Backend
	logger  *zap.Logger
	items   []models.Testimonial
}

// NewTestimonials loads the persisted testimonial list.
func NewTestimonials(backend database.Backend, logger *zap.Logger) *Testimonials {
	t := &Testimonials{
		backend: backend,
		logger:  logger,
		items:   []models.Testimonial{},
	}

	data, err := t.backend.Load(TestimonialsKey)
	if err != nil {
		if err != database.ErrNotFound {
			t.logger.Warn("failed to load testimonials, starting empty", zap.Error(err))
		}
		return t
	}
	if err := json.Unmarshal(data, &t.items); err != nil {
		t.logger.Warn("corrupt testimonials, starting empty", zap.Error(err))
		t.items = []models.Testimonial{}
	}
	return t
}

// Add assigns an id, appends and persists.
func (t *Testimonials) Add(item models.Testimonial) models.Testimonial {
	item.ID = time.Now().UTC().Format(time.RFC3339Nano) + "-" + uuid.NewString()[:8]

	t.mu.Lock()
	defer t.mu.Unlock()
	t.items = append(t.items, item)

	data, err := json.Marshal(t.items)
	if err == nil {
		err = t.backend.Store(TestimonialsKey, data)
	}
	if err != nil {
		t.logger.Error("failed to persist testimonials", zap.Error(err))
	}
	return item
}

// List returns all testimonials in insertion order.
func (t *Testimonials) List() []models.Testimonial {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]models.Testimonial, len(t.items))
	copy(out, t.items)
	return out
}
