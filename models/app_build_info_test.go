package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.2.0", "", "c0ffee")

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: c0ffee\n", info.String())
	assert.Empty(t, info.BuildDate())
}

func TestAppBuildInfo_Zero(t *testing.T) {
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", AppBuildInfo{}.String())
}
