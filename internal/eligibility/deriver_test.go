package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

func intPtr(v int) *int              { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func ruleWith(validity, reminder, wajib *int) model.CertificationRule {
	return model.CertificationRule{
		Model:             gorm.Model{ID: 1},
		ValidityMonths:    validity,
		ReminderMonths:    reminder,
		WajibSetelahMasuk: wajib,
		IsActive:          true,
	}
}

func certOn(id uint, certDate time.Time) model.EmployeeCertification {
	return model.EmployeeCertification{
		Model:               gorm.Model{ID: id},
		EmployeeID:          1,
		CertificationRuleID: 1,
		CertDate:            timePtr(certDate),
	}
}

func TestDerive_StatusBoundaries(t *testing.T) {
	// validity 12 bulan, reminder 2 bulan, sertifikat 15 Jan 2024:
	// expiry 15 Jan 2025, jendela DUE mulai 15 Nov 2024
	rule := ruleWith(intPtr(12), intPtr(2), nil)
	certs := []model.EmployeeCertification{certOn(1, date(2024, time.January, 15))}
	expiry := date(2025, time.January, 15)

	cases := []struct {
		name   string
		today  time.Time
		status model.EligibilityStatus
	}{
		{"hari sertifikasi", date(2024, time.January, 15), model.StatusActive},
		{"sehari sebelum jendela reminder", date(2024, time.November, 14), model.StatusActive},
		{"awal jendela reminder", date(2024, time.November, 15), model.StatusDue},
		{"di tengah jendela reminder", date(2024, time.December, 20), model.StatusDue},
		{"tepat hari kadaluarsa", date(2025, time.January, 15), model.StatusDue},
		{"sehari setelah kadaluarsa", date(2025, time.January, 16), model.StatusExpired},
		{"jauh setelah kadaluarsa", date(2026, time.June, 1), model.StatusExpired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, dueDate := Derive(rule, model.Employee{}, certs, tc.today)
			assert.Equal(t, tc.status, status)
			require.NotNil(t, dueDate)
			assert.Equal(t, expiry, *dueDate, "due date selalu = expiry saat ada sertifikat")
		})
	}
}

func TestDerive_NoCertificate(t *testing.T) {
	joinDate := date(2024, time.March, 1)
	employee := model.Employee{JoinDate: timePtr(joinDate)}

	t.Run("dengan wajib setelah masuk", func(t *testing.T) {
		rule := ruleWith(intPtr(12), intPtr(2), intPtr(6))
		status, dueDate := Derive(rule, employee, nil, date(2024, time.June, 1))

		assert.Equal(t, model.StatusNotYetCertified, status)
		require.NotNil(t, dueDate)
		assert.Equal(t, date(2024, time.September, 1), *dueDate)
	})

	t.Run("tanpa wajib setelah masuk", func(t *testing.T) {
		rule := ruleWith(intPtr(12), intPtr(2), nil)
		status, dueDate := Derive(rule, employee, nil, date(2024, time.June, 1))

		assert.Equal(t, model.StatusNotYetCertified, status)
		assert.Nil(t, dueDate)
	})

	t.Run("wajib diisi tapi join date kosong", func(t *testing.T) {
		rule := ruleWith(intPtr(12), intPtr(2), intPtr(6))
		status, dueDate := Derive(rule, model.Employee{}, nil, date(2024, time.June, 1))

		assert.Equal(t, model.StatusNotYetCertified, status)
		assert.Nil(t, dueDate)
	})
}

func TestDerive_LatestCertificateGoverns(t *testing.T) {
	rule := ruleWith(intPtr(12), intPtr(2), nil)
	older := certOn(1, date(2023, time.January, 1))
	newer := certOn(2, date(2024, time.June, 1))

	// Urutan insert tidak boleh berpengaruh
	for _, certs := range [][]model.EmployeeCertification{{older, newer}, {newer, older}} {
		status, dueDate := Derive(rule, model.Employee{}, certs, date(2024, time.August, 1))
		assert.Equal(t, model.StatusActive, status)
		require.NotNil(t, dueDate)
		assert.Equal(t, date(2025, time.June, 1), *dueDate)
	}
}

func TestDerive_SameDateTieBrokenByHighestID(t *testing.T) {
	sameDay := date(2024, time.June, 1)
	certs := []model.EmployeeCertification{certOn(7, sameDay), certOn(3, sameDay)}

	got := latestCertificate(certs)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID, "tanggal sama: yang terakhir dibuat (ID terbesar) menang")
}

func TestDerive_NoValidityMeansLifetimeActive(t *testing.T) {
	rule := ruleWith(nil, nil, nil)
	certs := []model.EmployeeCertification{certOn(1, date(2010, time.January, 1))}

	status, dueDate := Derive(rule, model.Employee{}, certs, date(2026, time.January, 1))
	assert.Equal(t, model.StatusActive, status)
	assert.Nil(t, dueDate)
}

func TestDerive_MonthEndClampOnExpiry(t *testing.T) {
	// Sertifikat 31 Jan 2024 + 1 bulan berlaku -> expiry 29 Feb 2024
	rule := ruleWith(intPtr(1), nil, nil)
	certs := []model.EmployeeCertification{certOn(1, date(2024, time.January, 31))}

	status, dueDate := Derive(rule, model.Employee{}, certs, date(2024, time.February, 29))
	assert.Equal(t, model.StatusActive, status)
	require.NotNil(t, dueDate)
	assert.Equal(t, date(2024, time.February, 29), *dueDate)

	status, _ = Derive(rule, model.Employee{}, certs, date(2024, time.March, 1))
	assert.Equal(t, model.StatusExpired, status)
}
