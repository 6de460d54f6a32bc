package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	on := &stubFeature{name: "devicesync", enabled: true}
	off := &stubFeature{name: "integrity", enabled: false}

	m := NewManager()
	m.Register(on)
	m.Register(off)

	loaded, err := m.LoadAll(fiber.New())
	require.NoError(t, err)
	assert.Equal(t, []string{"devicesync"}, loaded)
	assert.True(t, on.loaded)
	assert.False(t, off.loaded)
	assert.Len(t, m.Features(), 2)
}

func TestManager_LoadAll_Error(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

	_, err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken")
}

func TestManager_LoadAll_Duplicate(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "devicesync", enabled: true})
	m.Register(&stubFeature{name: "devicesync", enabled: true})

	_, err := m.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "registered twice")
}
