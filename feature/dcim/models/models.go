package models

import (
	"strconv"
	"time"
)

// Content type labels used for tag applicability and report attribution.
const (
	ContentTypeDevice     = "dcim.device"
	ContentTypeDeviceType = "dcim.devicetype"
)

// Tag is a label attachable to devices and device types.
type Tag struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Name        string `gorm:"column:name;size:100;not null;uniqueIndex" json:"name"`
	Slug        string `gorm:"column:slug;size:100;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"column:description;size:200" json:"description"`
	Color       string `gorm:"column:color;size:6" json:"color"`
	// ContentTypes lists the object types the tag may be applied to.
	ContentTypes []string  `gorm:"column:content_types;serializer:json;type:text" json:"content_types"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (Tag) TableName() string {
	return "extras_tag"
}

// DeviceType is the hardware template for a class of devices.
type DeviceType struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Manufacturer string    `gorm:"column:manufacturer;size:100;not null" json:"manufacturer"`
	Model        string    `gorm:"column:model;size:100;not null" json:"model"`
	Slug         string    `gorm:"column:slug;size:100;uniqueIndex" json:"slug"`
	Tags         []Tag     `gorm:"many2many:dcim_devicetype_tags;" json:"tags,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the table name.
func (DeviceType) TableName() string {
	return "dcim_devicetype"
}

// Device is a physical piece of equipment of exactly one DeviceType.
type Device struct {
	ID           uint        `gorm:"column:id;primaryKey" json:"id"`
	Name         string      `gorm:"column:name;size:64;index" json:"name"`
	DeviceTypeID uint        `gorm:"column:device_type_id;not null;index" json:"device_type_id"`
	DeviceType   *DeviceType `json:"device_type,omitempty"`
	Tags         []Tag       `gorm:"many2many:dcim_device_tags;" json:"tags,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName overrides the table name.
func (Device) TableName() string {
	return "dcim_device"
}

// HasTag reports whether the tag is attached to the device or to its device type.
// The device type must be preloaded with its tags for the latter to be seen.
func (d *Device) HasTag(tagID uint) bool {
	for _, t := range d.Tags {
		if t.ID == tagID {
			return true
		}
	}
	if d.DeviceType != nil {
		for _, t := range d.DeviceType.Tags {
			if t.ID == tagID {
				return true
			}
		}
	}
	return false
}

// DisplayName returns the device name, falling back to its ID.
func (d *Device) DisplayName() string {
	if d.Name != "" {
		return d.Name
	}
	return "device-" + strconv.FormatUint(uint64(d.ID), 10)
}

// All returns every model for schema migration, in dependency order.
func All() []any {
	return []any{
		&Tag{},
		&DeviceType{},
		&Device{},
		&ConsolePortTemplate{},
		&ConsoleServerPortTemplate{},
		&PowerPortTemplate{},
		&PowerOutletTemplate{},
		&InterfaceTemplate{},
		&RearPortTemplate{},
		&FrontPortTemplate{},
		&DeviceBayTemplate{},
		&ConsolePort{},
		&ConsoleServerPort{},
		&PowerPort{},
		&PowerOutlet{},
		&Interface{},
		&RearPort{},
		&FrontPort{},
		&DeviceBay{},
	}
}
