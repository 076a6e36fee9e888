package repository

import (
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

type DashboardStats struct {
	TotalEmployees    int64                             `json:"total_employees"`
	TotalRules        int64                             `json:"total_rules"`
	TotalMappings     int64                             `json:"total_mappings"`
	TotalExceptions   int64                             `json:"total_exceptions"`
	EligibilityCounts map[model.EligibilityStatus]int64 `json:"eligibility_counts"`
	SourceCounts      map[model.EligibilitySource]int64 `json:"source_counts"`
}

type DashboardRepository interface {
	GetStats() (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		EligibilityCounts: make(map[model.EligibilityStatus]int64),
		SourceCounts:      make(map[model.EligibilitySource]int64),
	}

	if err := r.db.Model(&model.Employee{}).Where("is_active = ?", true).Count(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.CertificationRule{}).Where("is_active = ?", true).Count(&stats.TotalRules).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.JobCertificationMapping{}).Where("is_active = ?", true).Count(&stats.TotalMappings).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.EmployeeCertificationException{}).Where("is_active = ?", true).Count(&stats.TotalExceptions).Error; err != nil {
		return nil, err
	}

	type statusRow struct {
		Status model.EligibilityStatus
		Total  int64
	}
	var statusRows []statusRow
	err := r.db.Model(&model.EmployeeEligibility{}).
		Select("status, COUNT(*) as total").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.EligibilityCounts[row.Status] = row.Total
	}

	type sourceRow struct {
		Source model.EligibilitySource
		Total  int64
	}
	var sourceRows []sourceRow
	err = r.db.Model(&model.EmployeeEligibility{}).
		Select("source, COUNT(*) as total").
		Group("source").
		Scan(&sourceRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range sourceRows {
		stats.SourceCounts[row.Source] = row.Total
	}

	return stats, nil
}
