package gen

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M0 0"/></svg>`

func assetTree(paths ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range paths {
		fsys[p] = &fstest.MapFile{Data: []byte(testSVG)}
	}
	return fsys
}

func TestScanCategory(t *testing.T) {
	fsys := assetTree(
		"action/home/materialicons/24px.svg",
		"action/home/materialiconsround/24px.svg",
		"action/settings/materialiconsoutlined/24px.svg",
	)
	s := NewScanner(fsys, testLogger())

	icons := s.ScanCategory("action")
	require.Len(t, icons, 2)

	assert.Equal(t, "home", icons[0].Name)
	assert.Equal(t, "action", icons[0].Category)
	assert.Equal(t, map[IconVariant]string{
		VariantFilled: "action/home/materialicons/24px.svg",
		VariantRound:  "action/home/materialiconsround/24px.svg",
	}, icons[0].Variants)

	assert.Equal(t, "settings", icons[1].Name)
	assert.Equal(t, map[IconVariant]string{
		VariantOutlined: "action/settings/materialiconsoutlined/24px.svg",
	}, icons[1].Variants)
}

func TestScanCategoryNaturalOrder(t *testing.T) {
	fsys := assetTree(
		"device/wifi_10_bar/materialicons/24px.svg",
		"device/wifi_2_bar/materialicons/24px.svg",
		"device/3d_rotation/materialicons/24px.svg",
		"device/access_time/materialicons/24px.svg",
	)
	s := NewScanner(fsys, testLogger())

	icons := s.ScanCategory("device")
	var names []string
	for _, icon := range icons {
		names = append(names, icon.Name)
	}
	assert.Equal(t, []string{"3d_rotation", "access_time", "wifi_2_bar", "wifi_10_bar"}, names)
}

func TestScanCategoryDropsIconsWithoutVariants(t *testing.T) {
	fsys := assetTree("alert/warning/materialicons/24px.svg")
	// directory with an unknown variant dir and no 24px.svg leaf
	fsys["alert/empty_icon/materialiconsbold/other.svg"] = &fstest.MapFile{Data: []byte(testSVG)}
	s := NewScanner(fsys, testLogger())

	icons := s.ScanCategory("alert")
	require.Len(t, icons, 1)
	assert.Equal(t, "warning", icons[0].Name)
}

func TestScanCategoryMissingDirIsEmpty(t *testing.T) {
	s := NewScanner(fstest.MapFS{}, testLogger())
	assert.Empty(t, s.ScanCategory("action"))
}

func TestScanAllFollowsCategoryOrder(t *testing.T) {
	fsys := assetTree(
		"action/home/materialicons/24px.svg",
		"toggle/star/materialicons/24px.svg",
	)
	s := NewScanner(fsys, testLogger())

	all := s.ScanAll()
	assert.Len(t, all, len(Categories))
	assert.Len(t, all["action"], 1)
	assert.Len(t, all["toggle"], 1)
	assert.Empty(t, all["maps"])
}
