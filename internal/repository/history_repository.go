package repository

import (
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"certification-backend/internal/helper"
	"certification-backend/internal/model"
)

type RuleHistoryFilter struct {
	RuleID uint   // 0 = semua rule
	Action string // CREATED/UPDATED/TOGGLED/DELETED, kosong = semua
	Search string
}

type MappingHistoryFilter struct {
	MappingID uint
	Action    string
	Search    string
}

// HistoryRepository menyimpan jejak perubahan rule dan mapping.
// Snapshot* sengaja tidak mengembalikan error: gagal menulis history tidak
// boleh menggagalkan aksi utamanya, cukup dicatat di log.
type HistoryRepository interface {
	SnapshotRule(rule model.CertificationRule, action model.HistoryAction)
	SnapshotMapping(m model.JobCertificationMapping, action model.HistoryAction)
	GetRulePaged(f RuleHistoryFilter, p helper.PageParams) ([]model.CertificationRuleHistory, int64, error)
	GetMappingPaged(f MappingHistoryFilter, p helper.PageParams) ([]model.JobCertificationMappingHistory, int64, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db}
}

func (r *historyRepository) SnapshotRule(rule model.CertificationRule, action model.HistoryAction) {
	h := model.NewRuleHistory(rule, action, time.Now())
	if err := r.db.Create(&h).Error; err != nil {
		log.Printf("history: gagal simpan rule history (rule %d, %s): %v", rule.ID, action, err)
	}
}

func (r *historyRepository) SnapshotMapping(m model.JobCertificationMapping, action model.HistoryAction) {
	h := model.NewMappingHistory(m, action, time.Now())
	if err := r.db.Create(&h).Error; err != nil {
		log.Printf("history: gagal simpan mapping history (mapping %d, %s): %v", m.ID, action, err)
	}
}

func (r *historyRepository) GetRulePaged(f RuleHistoryFilter, p helper.PageParams) ([]model.CertificationRuleHistory, int64, error) {
	apply := func(q *gorm.DB) *gorm.DB {
		if f.RuleID != 0 {
			q = q.Where("certification_rule_id = ?", f.RuleID)
		}
		if a := strings.ToUpper(strings.TrimSpace(f.Action)); a != "" && a != "ALL" {
			q = q.Where("action = ?", a)
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(certification_code) LIKE ? OR LOWER(certification_name) LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := apply(r.db.Model(&model.CertificationRuleHistory{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.CertificationRuleHistory
	err := apply(r.db.Model(&model.CertificationRuleHistory{})).
		Order("action_at desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}

func (r *historyRepository) GetMappingPaged(f MappingHistoryFilter, p helper.PageParams) ([]model.JobCertificationMappingHistory, int64, error) {
	apply := func(q *gorm.DB) *gorm.DB {
		if f.MappingID != 0 {
			q = q.Where("mapping_id = ?", f.MappingID)
		}
		if a := strings.ToUpper(strings.TrimSpace(f.Action)); a != "" && a != "ALL" {
			q = q.Where("action = ?", a)
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(job_name) LIKE ? OR LOWER(certification_code) LIKE ?", like, like)
		}
		return q
	}

	var total int64
	if err := apply(r.db.Model(&model.JobCertificationMappingHistory{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.JobCertificationMappingHistory
	err := apply(r.db.Model(&model.JobCertificationMappingHistory{})).
		Order("action_at desc").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&list).Error
	return list, total, err
}
