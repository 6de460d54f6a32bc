// Package devicesync keeps devices in line with the component templates of their device types.
//
// The scanner reports, per device and component category, the template names that have no
// matching component on the device. The applier creates those components for selected devices.
// Categories are processed from an ordered dispatch table: power ports precede power outlets and
// rear ports precede front ports, because outlets and front ports resolve their parent component
// by name when instantiated.
//
// Each category has an exemption tag. A device carrying the tag, directly or through its device
// type, is reported with an info note by the scanner and left untouched by the applier. The tags
// are created by EnsureTags, which the server and CLI run before any job.
package devicesync
