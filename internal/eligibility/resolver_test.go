package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

func activeRule(id uint) model.CertificationRule {
	return model.CertificationRule{Model: gorm.Model{ID: id}, IsActive: true}
}

func mapping(ruleID uint, mappingActive, ruleActive bool) model.JobCertificationMapping {
	rule := activeRule(ruleID)
	rule.IsActive = ruleActive
	return model.JobCertificationMapping{
		JobPositionID:       10,
		CertificationRuleID: ruleID,
		IsActive:            mappingActive,
		CertificationRule:   rule,
	}
}

func exception(ruleID uint, active bool) model.EmployeeCertificationException {
	return model.EmployeeCertificationException{
		EmployeeID:          1,
		CertificationRuleID: ruleID,
		IsActive:            active,
		CertificationRule:   activeRule(ruleID),
	}
}

func TestResolveApplicable_JobMappingOnly(t *testing.T) {
	got := ResolveApplicable([]model.JobCertificationMapping{mapping(1, true, true)}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].Rule.ID)
	assert.Equal(t, model.SourceByJob, got[0].Source)
}

func TestResolveApplicable_ManualWinsOverMapping(t *testing.T) {
	// Rule yang sama dari mapping jabatan DAN penunjukan manual:
	// hasilnya tepat satu baris, bertanda BY_NAME
	got := ResolveApplicable(
		[]model.JobCertificationMapping{mapping(1, true, true)},
		[]model.EmployeeCertificationException{exception(1, true)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, model.SourceByName, got[0].Source)
}

func TestResolveApplicable_InactiveMappingDropped(t *testing.T) {
	got := ResolveApplicable([]model.JobCertificationMapping{mapping(1, false, true)}, nil)
	assert.Empty(t, got, "mapping nonaktif tanpa manual tidak menghasilkan baris")
}

func TestResolveApplicable_InactiveRuleDroppedFromJob(t *testing.T) {
	got := ResolveApplicable([]model.JobCertificationMapping{mapping(1, true, false)}, nil)
	assert.Empty(t, got, "rule nonaktif tidak mengikat lewat mapping")
}

func TestResolveApplicable_ManualSurvivesInactiveMapping(t *testing.T) {
	// Mapping dinonaktifkan (misal pegawai pindah jabatan) tapi penunjukan
	// manual masih ada: kewajiban tetap, BY_NAME
	got := ResolveApplicable(
		[]model.JobCertificationMapping{mapping(1, false, true)},
		[]model.EmployeeCertificationException{exception(1, true)},
	)

	require.Len(t, got, 1)
	assert.Equal(t, model.SourceByName, got[0].Source)
}

func TestResolveApplicable_InactiveExceptionDropped(t *testing.T) {
	got := ResolveApplicable(nil, []model.EmployeeCertificationException{exception(1, false)})
	assert.Empty(t, got)
}

func TestResolveApplicable_EmptyInputs(t *testing.T) {
	got := ResolveApplicable(nil, nil)
	assert.Empty(t, got, "pegawai tanpa jabatan dan tanpa manual: kosong, bukan error")
}

func TestResolveApplicable_SortedByRuleID(t *testing.T) {
	got := ResolveApplicable(
		[]model.JobCertificationMapping{mapping(5, true, true), mapping(2, true, true)},
		[]model.EmployeeCertificationException{exception(9, true), exception(3, true)},
	)

	require.Len(t, got, 4)
	ids := []uint{got[0].Rule.ID, got[1].Rule.ID, got[2].Rule.ID, got[3].Rule.ID}
	assert.Equal(t, []uint{2, 3, 5, 9}, ids)
}
