package eligibility

import "time"

// AddMonths menggeser tanggal per bulan kalender dengan clamping akhir bulan:
// 31 Jan + 1 bulan = 28/29 Feb, bukan 3 Mar. time.AddDate tidak clamp,
// jadi hitung manual.
func AddMonths(d time.Time, months int) time.Time {
	y, m, day := d.Date()
	total := int(m) - 1 + months
	y += total / 12
	m = time.Month(total%12 + 1)
	if total%12 < 0 {
		y--
		m += 12
	}
	if last := daysInMonth(y, m); day > last {
		day = last
	}
	return time.Date(y, m, day, 0, 0, 0, 0, d.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Truncate ke tanggal saja; perbandingan status memakai presisi hari.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
