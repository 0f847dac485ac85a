package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, ApplicationStatusPending.Valid())
	assert.True(t, ApplicationStatusAccepted.Valid())
	assert.True(t, ApplicationStatusDenied.Valid())
	assert.False(t, ApplicationStatus("maybe").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestValidRegion(t *testing.T) {
	for _, region := range Regions {
		assert.True(t, ValidRegion(region), region)
	}
	assert.False(t, ValidRegion("Tashkent"))
	assert.False(t, ValidRegion(""))
}
