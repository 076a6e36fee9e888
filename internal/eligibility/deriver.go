package eligibility

import (
	"certification-backend/internal/model"
	"time"
)

// Derive menghitung status dan due date untuk satu (pegawai, rule) dari
// riwayat sertifikat pegawai untuk rule tersebut.
//
// Tanpa sertifikat: NOT_YET_CERTIFIED, due date = joinDate + wajibSetelahMasuk
// kalau field itu diisi, selain itu nil.
//
// Dengan sertifikat (certDate terbaru yang berlaku, seri sama tanggal dipecah
// dengan ID terbesar = yang terakhir dibuat):
//
//	expiry = certDate + validityMonths (kalender, clamp akhir bulan)
//	today >  expiry                    -> EXPIRED
//	today >= expiry - reminderMonths   -> DUE
//	selain itu                         -> ACTIVE
//
// Sertifikat pada rule tanpa validityMonths dianggap berlaku seumur hidup:
// ACTIVE tanpa due date.
func Derive(rule model.CertificationRule, employee model.Employee, certs []model.EmployeeCertification, today time.Time) (model.EligibilityStatus, *time.Time) {
	today = dateOnly(today)

	cert := latestCertificate(certs)
	if cert == nil {
		if rule.WajibSetelahMasuk != nil && employee.JoinDate != nil {
			due := AddMonths(dateOnly(*employee.JoinDate), *rule.WajibSetelahMasuk)
			return model.StatusNotYetCertified, &due
		}
		return model.StatusNotYetCertified, nil
	}

	if rule.ValidityMonths == nil || cert.CertDate == nil {
		return model.StatusActive, nil
	}

	expiry := AddMonths(dateOnly(*cert.CertDate), *rule.ValidityMonths)

	if today.After(expiry) {
		return model.StatusExpired, &expiry
	}
	if rule.ReminderMonths != nil {
		reminderStart := AddMonths(expiry, -*rule.ReminderMonths)
		if !today.Before(reminderStart) {
			return model.StatusDue, &expiry
		}
	}
	return model.StatusActive, &expiry
}

// latestCertificate memilih sertifikat dengan certDate terbaru; sertifikat
// tanpa certDate kalah dari yang bertanggal.
func latestCertificate(certs []model.EmployeeCertification) *model.EmployeeCertification {
	var best *model.EmployeeCertification
	for i := range certs {
		c := &certs[i]
		if best == nil {
			best = c
			continue
		}
		switch {
		case c.CertDate == nil:
			continue
		case best.CertDate == nil:
			best = c
		case c.CertDate.After(*best.CertDate):
			best = c
		case c.CertDate.Equal(*best.CertDate) && c.ID > best.ID:
			best = c
		}
	}
	return best
}
