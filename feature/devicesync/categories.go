package devicesync

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"device-sync/feature/dcim/models"

	"gorm.io/gorm"
)

// ErrUnknownCategory is returned when a category name matches no table entry.
var ErrUnknownCategory = errors.New("unknown component category")

// Category is one row of the component dispatch table: how to read a device's
// component names, how to read its device type's template names, and how to
// instantiate and persist missing components.
type Category interface {
	// Name is the human readable singular name, e.g. "power port".
	Name() string
	// Plural is the human readable plural name, e.g. "power ports".
	Plural() string
	// Key is the identifier used in reports, e.g. "power_port".
	Key() string
	// DeviceNames returns the names of the components the device owns.
	DeviceNames(ctx context.Context, db *gorm.DB, deviceID uint) ([]string, error)
	// TemplateNames returns the names of the templates the device type defines.
	TemplateNames(ctx context.Context, db *gorm.DB, deviceTypeID uint) ([]string, error)
	// Instantiate creates, in one bulk insert, a component for every template of the
	// device's type whose name is in names. It returns the number created.
	Instantiate(ctx context.Context, tx *gorm.DB, device *models.Device, names []string) (int, error)
}

// instantiator is satisfied by every template model for its component model C.
type instantiator[C any] interface {
	TemplateName() string
	Instantiate(tx *gorm.DB, device *models.Device) (C, error)
}

type category[T instantiator[C], C any] struct {
	name     string
	plural   string
	preloads []string
}

func (k category[T, C]) Name() string   { return k.name }
func (k category[T, C]) Plural() string { return k.plural }
func (k category[T, C]) Key() string    { return strings.ReplaceAll(k.name, " ", "_") }

func (k category[T, C]) DeviceNames(ctx context.Context, db *gorm.DB, deviceID uint) ([]string, error) {
	var names []string
	if err := db.WithContext(ctx).Model(new(C)).Where("device_id = ?", deviceID).Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s of device %d: %w", k.plural, deviceID, err)
	}
	return names, nil
}

func (k category[T, C]) TemplateNames(ctx context.Context, db *gorm.DB, deviceTypeID uint) ([]string, error) {
	var names []string
	if err := db.WithContext(ctx).Model(new(T)).Where("device_type_id = ?", deviceTypeID).Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s templates of device type %d: %w", k.name, deviceTypeID, err)
	}
	return names, nil
}

func (k category[T, C]) Instantiate(ctx context.Context, tx *gorm.DB, device *models.Device, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}
	tx = tx.WithContext(ctx)

	q := tx.Where("device_type_id = ? AND name IN ?", device.DeviceTypeID, names)
	for _, p := range k.preloads {
		q = q.Preload(p)
	}

	var templates []T
	if err := q.Order("id").Find(&templates).Error; err != nil {
		return 0, fmt.Errorf("failed to load %s templates: %w", k.name, err)
	}

	items := make([]C, 0, len(templates))
	for _, tmpl := range templates {
		item, err := tmpl.Instantiate(tx, device)
		if err != nil {
			return 0, fmt.Errorf("failed to instantiate %s %s: %w", k.name, tmpl.TemplateName(), err)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return 0, nil
	}

	if err := tx.Create(&items).Error; err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", k.plural, err)
	}
	return len(items), nil
}

// categories is the dispatch table in creation order. Power ports precede power
// outlets and rear ports precede front ports because the later templates resolve
// the earlier components by name.
var categories = []Category{
	category[models.ConsolePortTemplate, models.ConsolePort]{name: "console port", plural: "console ports"},
	category[models.ConsoleServerPortTemplate, models.ConsoleServerPort]{name: "console server port", plural: "console server ports"},
	category[models.PowerPortTemplate, models.PowerPort]{name: "power port", plural: "power ports"},
	category[models.PowerOutletTemplate, models.PowerOutlet]{name: "power outlet", plural: "power outlets", preloads: []string{"PowerPortTemplate"}},
	category[models.InterfaceTemplate, models.Interface]{name: "interface", plural: "interfaces"},
	category[models.RearPortTemplate, models.RearPort]{name: "rear port", plural: "rear ports"},
	category[models.FrontPortTemplate, models.FrontPort]{name: "front port", plural: "front ports", preloads: []string{"RearPortTemplate"}},
	category[models.DeviceBayTemplate, models.DeviceBay]{name: "device bay", plural: "device bays"},
}

// Categories returns the dispatch table in creation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByName resolves a category by its name, plural or key.
func CategoryByName(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if n == c.Name() || n == c.Plural() || n == c.Key() {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// CategoryInfo describes a category and its exemption tag.
type CategoryInfo struct {
	Order   int    `json:"order"`
	Name    string `json:"name"`
	Plural  string `json:"plural"`
	Key     string `json:"key"`
	TagName string `json:"tag_name"`
	TagSlug string `json:"tag_slug"`
}

// DescribeCategories returns the dispatch table as serializable rows.
func DescribeCategories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(categories))
	for i, c := range categories {
		out = append(out, CategoryInfo{
			Order:   i + 1,
			Name:    c.Name(),
			Plural:  c.Plural(),
			Key:     c.Key(),
			TagName: TagName(c),
			TagSlug: TagSlug(c),
		})
	}
	return out
}
