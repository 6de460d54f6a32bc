package models

// ComponentBase holds the columns shared by every concrete component.
type ComponentBase struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	DeviceID    uint   `gorm:"column:device_id;not null;index" json:"device_id"`
	Name        string `gorm:"column:name;size:64;not null" json:"name"`
	Label       string `gorm:"column:label;size:64" json:"label"`
	Description string `gorm:"column:description;size:200" json:"description"`
}

// ConsolePort is a console port on a device.
type ConsolePort struct {
	ComponentBase
	Type string `gorm:"column:type;size:50" json:"type"`
}

// TableName overrides the table name.
func (ConsolePort) TableName() string { return "dcim_consoleport" }

// ConsoleServerPort is a console server port on a device.
type ConsoleServerPort struct {
	ComponentBase
	Type string `gorm:"column:type;size:50" json:"type"`
}

// TableName overrides the table name.
func (ConsoleServerPort) TableName() string { return "dcim_consoleserverport" }

// PowerPort is a power inlet on a device.
type PowerPort struct {
	ComponentBase
	Type          string `gorm:"column:type;size:50" json:"type"`
	MaximumDraw   *int   `gorm:"column:maximum_draw" json:"maximum_draw"`
	AllocatedDraw *int   `gorm:"column:allocated_draw" json:"allocated_draw"`
}

// TableName overrides the table name.
func (PowerPort) TableName() string { return "dcim_powerport" }

// PowerOutlet is a power outlet on a device, optionally fed by one of its power ports.
type PowerOutlet struct {
	ComponentBase
	Type        string `gorm:"column:type;size:50" json:"type"`
	PowerPortID *uint  `gorm:"column:power_port_id" json:"power_port_id"`
	FeedLeg     string `gorm:"column:feed_leg;size:50" json:"feed_leg"`
}

// TableName overrides the table name.
func (PowerOutlet) TableName() string { return "dcim_poweroutlet" }

// Interface is a network interface on a device.
type Interface struct {
	ComponentBase
	Type     string `gorm:"column:type;size:50" json:"type"`
	Enabled  bool   `gorm:"column:enabled" json:"enabled"`
	MgmtOnly bool   `gorm:"column:mgmt_only" json:"mgmt_only"`
}

// TableName overrides the table name.
func (Interface) TableName() string { return "dcim_interface" }

// RearPort is a rear pass-through port on a device.
type RearPort struct {
	ComponentBase
	Type      string `gorm:"column:type;size:50" json:"type"`
	Positions int    `gorm:"column:positions" json:"positions"`
}

// TableName overrides the table name.
func (RearPort) TableName() string { return "dcim_rearport" }

// FrontPort is a front pass-through port mapped onto a position of a rear port.
type FrontPort struct {
	ComponentBase
	Type             string `gorm:"column:type;size:50" json:"type"`
	RearPortID       uint   `gorm:"column:rear_port_id;not null" json:"rear_port_id"`
	RearPortPosition int    `gorm:"column:rear_port_position" json:"rear_port_position"`
}

// TableName overrides the table name.
func (FrontPort) TableName() string { return "dcim_frontport" }

// DeviceBay is a slot on a device that can hold a child device.
type DeviceBay struct {
	ComponentBase
}

// TableName overrides the table name.
func (DeviceBay) TableName() string { return "dcim_devicebay" }
