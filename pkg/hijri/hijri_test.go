package hijri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	d := Date{Year: 1447, Month: 3, Day: 9}
	assert.Equal(t, "1447-03-09", d.String())
}

func TestDateLong(t *testing.T) {
	d := Date{Year: 1447, Month: 3, Day: 9}
	assert.Equal(t, "9 Rabi' al-Awwal 1447 AH", d.Long())
}

func TestMonthNameOutOfRange(t *testing.T) {
	assert.Equal(t, "", Date{Month: 0}.MonthName())
	assert.Equal(t, "", Date{Month: 13}.MonthName())
}
