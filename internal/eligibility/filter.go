package eligibility

import (
	"strings"

	"certification-backend/internal/model"
)

// Filter untuk query read model. Antar dimensi AND, di dalam satu dimensi
// multi-select berlaku IN (OR). Slice kosong berarti dimensi itu tidak
// difilter.
type Filter struct {
	EmployeeIDs []uint
	JobIDs      []uint
	CertCodes   []string
	Levels      []int
	SubCodes    []string
	Statuses    []model.EligibilityStatus
	Sources     []model.EligibilitySource
	Search      string // cocok sebagian di NIP / nama / jabatan / kode & nama sertifikasi
}

// Matches mengevaluasi filter terhadap satu baris yang relasinya sudah
// ter-preload. Repository menerjemahkan filter yang sama ke SQL; versi
// in-memory ini dipakai store memori di test engine.
func (f Filter) Matches(rec model.EmployeeEligibility) bool {
	if len(f.EmployeeIDs) > 0 && !containsUint(f.EmployeeIDs, rec.EmployeeID) {
		return false
	}
	if len(f.JobIDs) > 0 {
		if rec.Employee.JobPositionID == nil || !containsUint(f.JobIDs, *rec.Employee.JobPositionID) {
			return false
		}
	}
	if len(f.CertCodes) > 0 && !containsString(f.CertCodes, rec.CertificationRule.Certification.Code) {
		return false
	}
	if len(f.Levels) > 0 {
		lvl := rec.CertificationRule.CertificationLevel
		if lvl == nil || !containsInt(f.Levels, lvl.Level) {
			return false
		}
	}
	if len(f.SubCodes) > 0 {
		sub := rec.CertificationRule.SubField
		if sub == nil || !containsString(f.SubCodes, sub.Code) {
			return false
		}
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if rec.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Sources) > 0 {
		found := false
		for _, s := range f.Sources {
			if rec.Source == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" && !f.matchesSearch(rec) {
		return false
	}
	return true
}

func (f Filter) matchesSearch(rec model.EmployeeEligibility) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}
	haystacks := []string{
		rec.Employee.NIP,
		rec.Employee.Name,
		rec.CertificationRule.Certification.Code,
		rec.CertificationRule.Certification.Name,
		string(rec.Source),
	}
	if rec.Employee.JobPosition != nil {
		haystacks = append(haystacks, rec.Employee.JobPosition.Name)
	}
	if rec.CertificationRule.SubField != nil {
		haystacks = append(haystacks, rec.CertificationRule.SubField.Name)
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func containsUint(list []uint, v uint) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
