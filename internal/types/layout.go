package types

import "fmt"

// MobileScale converts desktop slot geometry to mobile geometry when a layout
// does not store a dedicated mobile slot list.
const MobileScale = 0.6

// Device selects which slot geometry of a layout is rendered.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

// ParseDevice parses a device name. An empty name means desktop.
func ParseDevice(s string) (Device, error) {
	switch Device(s) {
	case "", DeviceDesktop:
		return DeviceDesktop, nil
	case DeviceMobile:
		return DeviceMobile, nil
	default:
		return "", fmt.Errorf("unknown device type %q", s)
	}
}

// Position is the top-left corner of a slot on the background, in pixels.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the width and height of a slot, in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Slot is a placement target ("cell") on a layout background.
type Slot struct {
	ID            string   `json:"id"`
	RequiredCodes []Code   `json:"requiredCodes"`
	Strict        bool     `json:"strict,omitempty"`
	Position      Position `json:"position"`
	Size          Size     `json:"size"`
}

// Requires reports whether code is one of the slot's required codes.
func (s Slot) Requires(code Code) bool {
	for _, rc := range s.RequiredCodes {
		if rc == code {
			return true
		}
	}
	return false
}

// Scaled returns a copy of the slot with position and size multiplied by f.
func (s Slot) Scaled(f float64) Slot {
	out := s
	out.RequiredCodes = append([]Code(nil), s.RequiredCodes...)
	out.Position = Position{X: s.Position.X * f, Y: s.Position.Y * f}
	out.Size = Size{Width: s.Size.Width * f, Height: s.Size.Height * f}
	return out
}

// Layout is the background and slot list used by a portal.
type Layout struct {
	ID         string `json:"id"`
	Background string `json:"background"`
	Desktop    []Slot `json:"desktop"`
	Mobile     []Slot `json:"mobile,omitempty"`
}

// SlotsFor returns the slot list for a device. Mobile slots fall back to the
// desktop slots scaled by MobileScale.
func (l *Layout) SlotsFor(device Device) []Slot {
	if device == DeviceMobile {
		if len(l.Mobile) > 0 {
			return copySlots(l.Mobile)
		}
		out := make([]Slot, len(l.Desktop))
		for i, s := range l.Desktop {
			out[i] = s.Scaled(MobileScale)
		}
		return out
	}
	return copySlots(l.Desktop)
}

func copySlots(in []Slot) []Slot {
	out := make([]Slot, len(in))
	for i, s := range in {
		out[i] = s
		out[i].RequiredCodes = append([]Code(nil), s.RequiredCodes...)
	}
	return out
}
