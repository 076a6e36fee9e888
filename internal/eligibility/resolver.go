package eligibility

import (
	"sort"

	"certification-backend/internal/model"
)

// ApplicableRule adalah satu kewajiban sertifikasi hasil resolve untuk
// satu pegawai, beserta asal kewajibannya.
type ApplicableRule struct {
	Rule   model.CertificationRule
	Source model.EligibilitySource
}

// ResolveApplicable menggabungkan rule dari mapping jabatan dengan rule dari
// penunjukan manual untuk satu pegawai:
//   - mapping jabatan hanya mengikat saat mapping DAN rule sama-sama aktif (BY_JOB)
//   - penunjukan manual aktif selalu mengikat (BY_NAME)
//   - kalau rule yang sama datang dari keduanya, manual yang menang dan baris
//     ditandai BY_NAME (bukan dua baris)
//
// Pegawai tanpa jabatan dan tanpa penunjukan manual menghasilkan slice kosong.
// Hasil diurutkan per rule ID agar rebuild deterministik.
func ResolveApplicable(mappings []model.JobCertificationMapping, exceptions []model.EmployeeCertificationException) []ApplicableRule {
	byRule := make(map[uint]ApplicableRule)

	for _, m := range mappings {
		if !m.IsActive || !m.CertificationRule.IsActive {
			continue
		}
		byRule[m.CertificationRuleID] = ApplicableRule{
			Rule:   m.CertificationRule,
			Source: model.SourceByJob,
		}
	}

	for _, exc := range exceptions {
		if !exc.IsActive {
			continue
		}
		// Manual override menang atas BY_JOB untuk rule yang sama
		byRule[exc.CertificationRuleID] = ApplicableRule{
			Rule:   exc.CertificationRule,
			Source: model.SourceByName,
		}
	}

	result := make([]ApplicableRule, 0, len(byRule))
	for _, r := range byRule {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Rule.ID < result[j].Rule.ID })
	return result
}
