package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths_ClampsToEndOfMonth(t *testing.T) {
	// 31 Jan + 1 bulan harus jatuh di akhir Februari, bukan meluber ke Maret
	assert.Equal(t, date(2025, time.February, 28), AddMonths(date(2025, time.January, 31), 1))
	assert.Equal(t, date(2024, time.February, 29), AddMonths(date(2024, time.January, 31), 1), "tahun kabisat")
	assert.Equal(t, date(2024, time.April, 30), AddMonths(date(2024, time.March, 31), 1))
}

func TestAddMonths_CrossesYearBoundary(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 15), AddMonths(date(2024, time.January, 15), 12))
	assert.Equal(t, date(2025, time.March, 10), AddMonths(date(2024, time.December, 10), 3))
}

func TestAddMonths_Negative(t *testing.T) {
	assert.Equal(t, date(2024, time.November, 15), AddMonths(date(2025, time.January, 15), -2))
	assert.Equal(t, date(2024, time.February, 29), AddMonths(date(2024, time.March, 31), -1), "mundur juga clamp")
	assert.Equal(t, date(2023, time.December, 10), AddMonths(date(2024, time.February, 10), -2))
}

func TestAddMonths_Zero(t *testing.T) {
	d := date(2024, time.June, 1)
	assert.Equal(t, d, AddMonths(d, 0))
}
