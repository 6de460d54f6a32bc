package devicesync

import (
	"context"
	"testing"

	"device-sync/feature/dcim/dcimtest"
	"device-sync/feature/dcim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCategory(t *testing.T, name string) Category {
	t.Helper()
	c, err := CategoryByName(name)
	require.NoError(t, err)
	return c
}

func TestTagIdentity(t *testing.T) {
	c := mustCategory(t, "console server port")

	assert.Equal(t, "\u21bb\u0338Console Server Ports", TagName(c))
	assert.Equal(t, "no-device-type-sync-console-server-ports", TagSlug(c))
	assert.Equal(t, "Device tag to exempt devices and device types from automatic synchronization of console server ports", TagDescription(c))

	tag := ExemptionTag(c)
	assert.Equal(t, "ffe4e1", tag.Color)
	assert.Equal(t, []string{"dcim.device", "dcim.devicetype"}, tag.ContentTypes)
	assert.Zero(t, tag.ID)
}

func TestTagRegistry_EnsureIsIdempotent(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := NewTagRegistry(db)
	c := mustCategory(t, "interface")

	first, created, err := reg.Ensure(context.Background(), c)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	second, created, err := NewTagRegistry(db).Ensure(context.Background(), c)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, []string{models.ContentTypeDevice, models.ContentTypeDeviceType}, second.ContentTypes)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTagRegistry_LookupOnly(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := NewTagRegistry(db)
	c := mustCategory(t, "device bay")

	_, err := reg.Lookup(context.Background(), c)
	assert.ErrorIs(t, err, ErrTagNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Zero(t, count, "lookup must not create the tag")

	ensured, _, err := reg.Ensure(context.Background(), c)
	require.NoError(t, err)

	found, err := reg.Lookup(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, ensured.ID, found.ID)
}

func TestTagRegistry_LookupIsCached(t *testing.T) {
	db := dcimtest.NewDB(t)
	c := mustCategory(t, "power port")
	_, _, err := NewTagRegistry(db).Ensure(context.Background(), c)
	require.NoError(t, err)

	reg := NewTagRegistry(db)
	_, err = reg.Lookup(context.Background(), c)
	require.NoError(t, err)

	require.NoError(t, db.Where("slug = ?", TagSlug(c)).Delete(&models.Tag{}).Error)

	_, err = reg.Lookup(context.Background(), c)
	assert.NoError(t, err)

	reg.Invalidate()
	_, err = reg.Lookup(context.Background(), c)
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestTagRegistry_EnsureAll(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := NewTagRegistry(db)

	tags, err := reg.EnsureAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 8)
	assert.Equal(t, "no-device-type-sync-console-ports", tags[0].Slug)
	assert.Equal(t, "no-device-type-sync-device-bays", tags[7].Slug)

	_, err = reg.EnsureAll(context.Background())
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestExemptViaDeviceOrDeviceType(t *testing.T) {
	db := dcimtest.NewDB(t)
	reg := NewTagRegistry(db)
	tag, _, err := reg.Ensure(context.Background(), mustCategory(t, "interface"))
	require.NoError(t, err)

	dt := dcimtest.DeviceType(t, db, "c9300")
	tagged := dcimtest.Device(t, db, "sw1", dt)
	plain := dcimtest.Device(t, db, "sw2", dt)
	dcimtest.Tag(t, db, tagged, tag)

	load := func(id uint) *models.Device {
		var d models.Device
		require.NoError(t, db.Preload("Tags").Preload("DeviceType.Tags").First(&d, id).Error)
		return &d
	}

	assert.True(t, load(tagged.ID).HasTag(tag.ID))
	assert.False(t, load(plain.ID).HasTag(tag.ID))

	dcimtest.Tag(t, db, dt, tag)
	assert.True(t, load(plain.ID).HasTag(tag.ID))
}
