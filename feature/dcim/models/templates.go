package models

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrRearPortMissing is returned when a front port is instantiated on a device
// that lacks the rear port its template maps onto.
var ErrRearPortMissing = errors.New("rear port missing on device")

// ErrPowerPortMissing is returned when a power outlet is instantiated on a device
// that lacks the power port its template feeds from.
var ErrPowerPortMissing = errors.New("power port missing on device")

// TemplateBase holds the columns shared by every component template.
type TemplateBase struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	DeviceTypeID uint   `gorm:"column:device_type_id;not null;index" json:"device_type_id"`
	Name         string `gorm:"column:name;size:64;not null" json:"name"`
	Label        string `gorm:"column:label;size:64" json:"label"`
	Description  string `gorm:"column:description;size:200" json:"description"`
}

// TemplateName returns the name the instantiated component will carry.
func (t TemplateBase) TemplateName() string {
	return t.Name
}

func (t TemplateBase) component(device *Device) ComponentBase {
	return ComponentBase{
		DeviceID:    device.ID,
		Name:        t.Name,
		Label:       t.Label,
		Description: t.Description,
	}
}

// ConsolePortTemplate defines a console port of a device type.
type ConsolePortTemplate struct {
	TemplateBase
	Type string `gorm:"column:type;size:50" json:"type"`
}

// TableName overrides the table name.
func (ConsolePortTemplate) TableName() string { return "dcim_consoleporttemplate" }

// Instantiate builds the console port for device.
func (t ConsolePortTemplate) Instantiate(_ *gorm.DB, device *Device) (ConsolePort, error) {
	return ConsolePort{ComponentBase: t.component(device), Type: t.Type}, nil
}

// ConsoleServerPortTemplate defines a console server port of a device type.
type ConsoleServerPortTemplate struct {
	TemplateBase
	Type string `gorm:"column:type;size:50" json:"type"`
}

// TableName overrides the table name.
func (ConsoleServerPortTemplate) TableName() string { return "dcim_consoleserverporttemplate" }

// Instantiate builds the console server port for device.
func (t ConsoleServerPortTemplate) Instantiate(_ *gorm.DB, device *Device) (ConsoleServerPort, error) {
	return ConsoleServerPort{ComponentBase: t.component(device), Type: t.Type}, nil
}

// PowerPortTemplate defines a power port of a device type.
type PowerPortTemplate struct {
	TemplateBase
	Type          string `gorm:"column:type;size:50" json:"type"`
	MaximumDraw   *int   `gorm:"column:maximum_draw" json:"maximum_draw"`
	AllocatedDraw *int   `gorm:"column:allocated_draw" json:"allocated_draw"`
}

// TableName overrides the table name.
func (PowerPortTemplate) TableName() string { return "dcim_powerporttemplate" }

// Instantiate builds the power port for device.
func (t PowerPortTemplate) Instantiate(_ *gorm.DB, device *Device) (PowerPort, error) {
	return PowerPort{
		ComponentBase: t.component(device),
		Type:          t.Type,
		MaximumDraw:   t.MaximumDraw,
		AllocatedDraw: t.AllocatedDraw,
	}, nil
}

// PowerOutletTemplate defines a power outlet of a device type.
type PowerOutletTemplate struct {
	TemplateBase
	Type                string             `gorm:"column:type;size:50" json:"type"`
	PowerPortTemplateID *uint              `gorm:"column:power_port_template_id" json:"power_port_template_id"`
	PowerPortTemplate   *PowerPortTemplate `json:"power_port_template,omitempty"`
	FeedLeg             string             `gorm:"column:feed_leg;size:50" json:"feed_leg"`
}

// TableName overrides the table name.
func (PowerOutletTemplate) TableName() string { return "dcim_poweroutlettemplate" }

// Instantiate builds the power outlet for device. An outlet whose template feeds
// from a power port template is linked to the device's power port of the same
// name, which must exist. PowerPortTemplate must be preloaded.
func (t PowerOutletTemplate) Instantiate(tx *gorm.DB, device *Device) (PowerOutlet, error) {
	outlet := PowerOutlet{ComponentBase: t.component(device), Type: t.Type, FeedLeg: t.FeedLeg}
	if t.PowerPortTemplateID == nil {
		return outlet, nil
	}
	if t.PowerPortTemplate == nil {
		return outlet, fmt.Errorf("power outlet template %s: power port template not loaded", t.Name)
	}

	var port PowerPort
	err := tx.Where("device_id = ? AND name = ?", device.ID, t.PowerPortTemplate.Name).Take(&port).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return outlet, fmt.Errorf("%w: %s needed by power outlet %s", ErrPowerPortMissing, t.PowerPortTemplate.Name, t.Name)
	case err != nil:
		return outlet, fmt.Errorf("failed to resolve power port %s: %w", t.PowerPortTemplate.Name, err)
	}

	outlet.PowerPortID = &port.ID
	return outlet, nil
}

// InterfaceTemplate defines a network interface of a device type.
type InterfaceTemplate struct {
	TemplateBase
	Type     string `gorm:"column:type;size:50" json:"type"`
	MgmtOnly bool   `gorm:"column:mgmt_only" json:"mgmt_only"`
}

// TableName overrides the table name.
func (InterfaceTemplate) TableName() string { return "dcim_interfacetemplate" }

// Instantiate builds the interface for device. New interfaces are enabled.
func (t InterfaceTemplate) Instantiate(_ *gorm.DB, device *Device) (Interface, error) {
	return Interface{
		ComponentBase: t.component(device),
		Type:          t.Type,
		Enabled:       true,
		MgmtOnly:      t.MgmtOnly,
	}, nil
}

// RearPortTemplate defines a rear port of a device type.
type RearPortTemplate struct {
	TemplateBase
	Type      string `gorm:"column:type;size:50" json:"type"`
	Positions int    `gorm:"column:positions" json:"positions"`
}

// TableName overrides the table name.
func (RearPortTemplate) TableName() string { return "dcim_rearporttemplate" }

// Instantiate builds the rear port for device.
func (t RearPortTemplate) Instantiate(_ *gorm.DB, device *Device) (RearPort, error) {
	positions := t.Positions
	if positions < 1 {
		positions = 1
	}
	return RearPort{ComponentBase: t.component(device), Type: t.Type, Positions: positions}, nil
}

// FrontPortTemplate defines a front port of a device type, mapped onto a rear port template.
type FrontPortTemplate struct {
	TemplateBase
	Type               string            `gorm:"column:type;size:50" json:"type"`
	RearPortTemplateID uint              `gorm:"column:rear_port_template_id;not null" json:"rear_port_template_id"`
	RearPortTemplate   *RearPortTemplate `json:"rear_port_template,omitempty"`
	RearPortPosition   int               `gorm:"column:rear_port_position" json:"rear_port_position"`
}

// TableName overrides the table name.
func (FrontPortTemplate) TableName() string { return "dcim_frontporttemplate" }

// Instantiate builds the front port for device. The device must already own the
// rear port named like the template's rear port template. RearPortTemplate must be preloaded.
func (t FrontPortTemplate) Instantiate(tx *gorm.DB, device *Device) (FrontPort, error) {
	port := FrontPort{ComponentBase: t.component(device), Type: t.Type, RearPortPosition: t.RearPortPosition}
	if t.RearPortTemplate == nil {
		return port, fmt.Errorf("front port template %s: rear port template not loaded", t.Name)
	}

	var rear RearPort
	err := tx.Where("device_id = ? AND name = ?", device.ID, t.RearPortTemplate.Name).Take(&rear).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return port, fmt.Errorf("%w: %s needed by front port %s", ErrRearPortMissing, t.RearPortTemplate.Name, t.Name)
	case err != nil:
		return port, fmt.Errorf("failed to resolve rear port %s: %w", t.RearPortTemplate.Name, err)
	}

	port.RearPortID = rear.ID
	return port, nil
}

// DeviceBayTemplate defines a device bay of a device type.
type DeviceBayTemplate struct {
	TemplateBase
}

// TableName overrides the table name.
func (DeviceBayTemplate) TableName() string { return "dcim_devicebaytemplate" }

// Instantiate builds the device bay for device.
func (t DeviceBayTemplate) Instantiate(_ *gorm.DB, device *Device) (DeviceBay, error) {
	return DeviceBay{ComponentBase: t.component(device)}, nil
}
