package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"2x", "10x", -1},
		{"10x", "2x", 1},
		{"battery_2_bar", "battery_10_bar", -1},
		{"home", "home", 0},
		{"a", "b", -1},
		{"icon2", "icon2", 0},
		{"icon", "icon2", -1},
		{"3d_rotation", "30fps", -1},
		{"v1_2", "v1_10", -1},
		{"02", "2", 1}, // equal value, longer digit run of zeros sorts after
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NaturalCompare(tt.a, tt.b), "compare(%q, %q)", tt.a, tt.b)
	}
}

func TestSortNatural(t *testing.T) {
	names := []string{"wifi_10_bar", "wifi_2_bar", "access_time", "3d_rotation", "wifi_1_bar"}
	SortNatural(names)
	assert.Equal(t, []string{"3d_rotation", "access_time", "wifi_1_bar", "wifi_2_bar", "wifi_10_bar"}, names)
}
