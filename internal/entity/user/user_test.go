package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParsePayFrequency(t *testing.T) {
	f, err := ParsePayFrequency(" 2 Weeks ")
	assert.NoError(t, err)
	assert.Equal(t, PayBiweekly, f)

	_, err = ParsePayFrequency("daily")
	assert.ErrorIs(t, err, ErrUnknownPayFrequency)
}

func Test_ParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Friday")
	assert.NoError(t, err)
	assert.Equal(t, Weekday("friday"), d)

	_, err = ParseWeekday("someday")
	assert.ErrorIs(t, err, ErrUnknownWeekday)
}

func Test_HasPaySchedule(t *testing.T) {
	p := NewProfile(1)
	assert.False(t, p.HasPaySchedule())

	p.PayFrequency = PayMonthly
	assert.False(t, p.HasPaySchedule())

	p.Payday = "monday"
	assert.True(t, p.HasPaySchedule())
}
