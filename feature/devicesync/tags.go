package devicesync

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"device-sync/feature/dcim/models"

	"github.com/gosimple/slug"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// ErrTagNotFound is returned by lookup-only tag access when the exemption tag was never created.
var ErrTagNotFound = errors.New("exemption tag not found")

const (
	// TagColor is the color of every exemption tag.
	TagColor = "ffe4e1"

	// Clockwise open circle arrow with a combining long solidus overlay.
	tagNamePrefix = "\u21bb\u0338"
	tagSlugPrefix = "no-device-type-sync-"
)

// TagName returns the display name of the category's exemption tag, e.g. "↻̸Power Ports".
func TagName(c Category) string {
	return tagNamePrefix + cases.Title(language.English).String(c.Plural())
}

// TagSlug returns the unique identifier of the category's exemption tag,
// e.g. "no-device-type-sync-power-ports".
func TagSlug(c Category) string {
	return tagSlugPrefix + slug.Make(c.Plural())
}

// TagDescription returns the description of the category's exemption tag.
func TagDescription(c Category) string {
	return "Device tag to exempt devices and device types from automatic synchronization of " + c.Plural()
}

// ExemptionTag returns the tag record for a category, unsaved.
func ExemptionTag(c Category) models.Tag {
	return models.Tag{
		Name:         TagName(c),
		Slug:         TagSlug(c),
		Description:  TagDescription(c),
		Color:        TagColor,
		ContentTypes: []string{models.ContentTypeDevice, models.ContentTypeDeviceType},
	}
}

// TagRegistry creates and looks up exemption tags, caching them by slug.
type TagRegistry struct {
	db    *gorm.DB
	mu    sync.RWMutex
	cache map[string]*models.Tag
	sf    singleflight.Group
}

// NewTagRegistry creates a registry backed by db.
func NewTagRegistry(db *gorm.DB) *TagRegistry {
	return &TagRegistry{
		db:    db,
		cache: make(map[string]*models.Tag),
	}
}

// Ensure fetches the category's exemption tag, creating it when absent.
// The returned flag reports whether the tag was created by this call.
func (r *TagRegistry) Ensure(ctx context.Context, c Category) (*models.Tag, bool, error) {
	key := TagSlug(c)
	db := r.db.WithContext(ctx)

	tag, err := r.find(db, key)
	if err == nil {
		return tag, false, nil
	}
	if !errors.Is(err, ErrTagNotFound) {
		return nil, false, err
	}

	created := ExemptionTag(c)
	if cerr := db.Create(&created).Error; cerr != nil {
		// Another writer may have created it between the lookup and the insert.
		if tag, err := r.find(db, key); err == nil {
			return tag, false, nil
		}
		return nil, false, fmt.Errorf("failed to create tag %s: %w", key, cerr)
	}

	r.store(&created)
	return &created, true, nil
}

// EnsureAll ensures the exemption tag of every category, in table order.
func (r *TagRegistry) EnsureAll(ctx context.Context) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(categories))
	for _, c := range categories {
		tag, _, err := r.Ensure(ctx, c)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// Lookup fetches the category's exemption tag without creating it.
// It fails with ErrTagNotFound when the tag does not exist.
func (r *TagRegistry) Lookup(ctx context.Context, c Category) (*models.Tag, error) {
	key := TagSlug(c)

	r.mu.RLock()
	tag, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return tag, nil
	}

	v, err, _ := r.sf.Do(key, func() (interface{}, error) {
		return r.find(r.db.WithContext(ctx), key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Tag), nil
}

// find loads a tag by slug and caches it.
func (r *TagRegistry) find(db *gorm.DB, key string) (*models.Tag, error) {
	var tag models.Tag
	err := db.Where("slug = ?", key).Take(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrTagNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up tag %s: %w", key, err)
	}
	r.store(&tag)
	return &tag, nil
}

// Invalidate drops every cached tag.
func (r *TagRegistry) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string]*models.Tag)
	r.mu.Unlock()
}

func (r *TagRegistry) store(tag *models.Tag) {
	r.mu.Lock()
	r.cache[tag.Slug] = tag
	r.mu.Unlock()
}
