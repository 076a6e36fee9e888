package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewRuleHistory_FreezesRuleState(t *testing.T) {
	level := 2
	rule := CertificationRule{
		Model:              gorm.Model{ID: 7},
		ValidityMonths:     intp(48),
		ReminderMonths:     intp(6),
		IsActive:           true,
		Certification:      Certification{Code: "MR", Name: "Manajemen Risiko"},
		CertificationLevel: &CertificationLevel{Level: level},
		SubField:           &SubField{Code: "TRS"},
	}
	at := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	h := NewRuleHistory(rule, ActionToggled, at)

	assert.Equal(t, uint(7), h.CertificationRuleID)
	assert.Equal(t, "MR", h.CertificationCode)
	assert.Equal(t, "Manajemen Risiko", h.CertificationName)
	assert.Equal(t, &level, h.CertificationLevel)
	assert.Equal(t, "TRS", *h.SubFieldCode)
	assert.Equal(t, 48, *h.ValidityMonths)
	assert.Equal(t, ActionToggled, h.Action)
	assert.Equal(t, at, h.ActionAt)
}

func TestNewRuleHistory_NilLevelAndSubField(t *testing.T) {
	rule := CertificationRule{
		Model:         gorm.Model{ID: 3},
		Certification: Certification{Code: "TRS"},
	}

	h := NewRuleHistory(rule, ActionDeleted, time.Now())

	assert.Nil(t, h.CertificationLevel)
	assert.Nil(t, h.SubFieldCode)
	assert.Equal(t, ActionDeleted, h.Action)
	assert.False(t, h.IsActive)
}

func TestNewMappingHistory_FreezesMappingState(t *testing.T) {
	level := 1
	m := JobCertificationMapping{
		Model:       gorm.Model{ID: 11},
		IsActive:    true,
		JobPosition: JobPosition{Name: "Dealer Treasury"},
		CertificationRule: CertificationRule{
			Certification:      Certification{Code: "MR"},
			CertificationLevel: &CertificationLevel{Level: level},
		},
	}
	at := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	h := NewMappingHistory(m, ActionCreated, at)

	assert.Equal(t, uint(11), h.MappingID)
	assert.Equal(t, "Dealer Treasury", h.JobName)
	assert.Equal(t, "MR", h.CertificationCode)
	assert.Equal(t, &level, h.CertificationLevel)
	assert.Nil(t, h.SubFieldCode)
	assert.True(t, h.IsActive)
	assert.Equal(t, ActionCreated, h.Action)
}

func TestHistoryAction_Valid(t *testing.T) {
	for _, a := range []HistoryAction{ActionCreated, ActionUpdated, ActionToggled, ActionDeleted} {
		assert.True(t, a.Valid(), string(a))
	}
	assert.False(t, HistoryAction("ARCHIVED").Valid())
}

func intp(v int) *int { return &v }
