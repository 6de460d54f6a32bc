// Package models defines the GORM models of the DCIM inventory: devices, device
// types, tags, and for each of the eight component categories the concrete
// component and the device type template it is instantiated from.
//
// # Templates
//
// Every template type has an Instantiate method that builds the concrete
// component for a given device. Templates that reference another template
// resolve the reference by name on the target device:
//
//   - PowerOutletTemplate links the device's power port of the same name as its
//     PowerPortTemplate, or none when the device has no such port.
//   - FrontPortTemplate requires the device's rear port of the same name as its
//     RearPortTemplate and fails with ErrRearPortMissing otherwise.
//
// Power ports must therefore exist before power outlets are instantiated, and
// rear ports before front ports.
package models
