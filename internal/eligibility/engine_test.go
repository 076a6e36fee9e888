package eligibility

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"certification-backend/internal/model"
)

// memoryStore mengimplementasikan Store untuk test, tanpa DB.
type memoryStore struct {
	mu      sync.Mutex
	snap    *Snapshot
	records []model.EmployeeEligibility

	failReplace bool
	loadStarted chan struct{}
	loadRelease chan struct{}
}

func (s *memoryStore) LoadSnapshot() (*Snapshot, error) {
	if s.loadStarted != nil {
		s.loadStarted <- struct{}{}
		<-s.loadRelease
	}
	return s.snap, nil
}

func (s *memoryStore) ReplaceAll(records []model.EmployeeEligibility) error {
	if s.failReplace {
		return errors.New("simulated integrity error")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	return nil
}

func (s *memoryStore) query(f Filter) []model.EmployeeEligibility {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.EmployeeEligibility
	for _, rec := range s.records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

type dueRecorder struct {
	mu  sync.Mutex
	due []model.EmployeeEligibility
}

func (d *dueRecorder) NotifyDue(records []model.EmployeeEligibility) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.due = append(d.due, records...)
}

// testSnapshot: dua pegawai, dua rule.
//
//	emp 1 (jabatan 10): rule 1 via mapping (sertifikat kadaluarsa),
//	                    rule 2 via mapping + manual (belum sertifikasi)
//	emp 2 (tanpa jabatan, tanpa manual): tidak menghasilkan baris
func testSnapshot() *Snapshot {
	rule1 := model.CertificationRule{
		Model:          gorm.Model{ID: 1},
		ValidityMonths: intPtr(12),
		ReminderMonths: intPtr(2),
		IsActive:       true,
		Certification:  model.Certification{Code: "MR", Name: "Manajemen Risiko"},
	}
	rule2 := model.CertificationRule{
		Model:             gorm.Model{ID: 2},
		ValidityMonths:    intPtr(24),
		ReminderMonths:    intPtr(3),
		WajibSetelahMasuk: intPtr(6),
		IsActive:          true,
		Certification:     model.Certification{Code: "AAJI", Name: "Sertifikasi AAJI"},
	}

	jobID := uint(10)
	emp1 := model.Employee{
		Model:         gorm.Model{ID: 1},
		NIP:           "199001012015011001",
		Name:          "Budi Santoso",
		JoinDate:      timePtr(date(2020, time.February, 1)),
		JobPositionID: &jobID,
		JobPosition:   &model.JobPosition{Model: gorm.Model{ID: 10}, Name: "Relationship Manager"},
		IsActive:      true,
	}
	emp2 := model.Employee{
		Model:    gorm.Model{ID: 2},
		NIP:      "199202022016022002",
		Name:     "Siti Aminah",
		IsActive: true,
	}

	return &Snapshot{
		Employees: []model.Employee{emp1, emp2},
		MappingsByJob: map[uint][]model.JobCertificationMapping{
			10: {
				{JobPositionID: 10, CertificationRuleID: 1, IsActive: true, CertificationRule: rule1},
				{JobPositionID: 10, CertificationRuleID: 2, IsActive: true, CertificationRule: rule2},
			},
		},
		ExceptionsByEmployee: map[uint][]model.EmployeeCertificationException{
			1: {{EmployeeID: 1, CertificationRuleID: 2, IsActive: true, CertificationRule: rule2}},
		},
		Certifications: map[CertKey][]model.EmployeeCertification{
			{EmployeeID: 1, CertificationRuleID: 1}: {
				{Model: gorm.Model{ID: 1}, EmployeeID: 1, CertificationRuleID: 1, CertDate: timePtr(date(2022, time.March, 10))},
			},
		},
	}
}

func TestCompute_SourcePrecedenceAndStatuses(t *testing.T) {
	today := date(2025, time.June, 1)
	records := Compute(testSnapshot(), today)

	require.Len(t, records, 2, "emp 2 tanpa kewajiban tidak boleh menghasilkan baris")

	// rule 1: sertifikat Mar 2022 + 12 bulan -> kadaluarsa Mar 2023
	assert.Equal(t, uint(1), records[0].CertificationRuleID)
	assert.Equal(t, model.StatusExpired, records[0].Status)
	assert.Equal(t, model.SourceByJob, records[0].Source)
	require.NotNil(t, records[0].DueDate)
	assert.Equal(t, date(2023, time.March, 10), *records[0].DueDate)

	// rule 2: mapping + manual -> tepat satu baris BY_NAME, belum sertifikasi
	assert.Equal(t, uint(2), records[1].CertificationRuleID)
	assert.Equal(t, model.StatusNotYetCertified, records[1].Status)
	assert.Equal(t, model.SourceByName, records[1].Source)
	require.NotNil(t, records[1].DueDate)
	assert.Equal(t, date(2020, time.August, 1), *records[1].DueDate, "joinDate + wajibSetelahMasuk")
}

func TestCompute_Idempotent(t *testing.T) {
	snap := testSnapshot()
	today := date(2025, time.June, 1)

	first := Compute(snap, today)
	second := Compute(snap, today)

	assert.Equal(t, first, second, "input sama harus menghasilkan baris identik, urutan pun sama")
}

func TestRebuilder_ReplacesReadModel(t *testing.T) {
	store := &memoryStore{
		snap: testSnapshot(),
		records: []model.EmployeeEligibility{
			{EmployeeID: 99, CertificationRuleID: 99, Status: model.StatusActive, Source: model.SourceByJob},
		},
	}
	rb := NewRebuilder(store, nil)
	rb.now = func() time.Time { return date(2025, time.June, 1) }

	require.NoError(t, rb.Rebuild())

	require.Len(t, store.records, 2)
	for _, rec := range store.records {
		assert.NotEqual(t, uint(99), rec.EmployeeID, "baris lama harus diganti seluruhnya, bukan digabung")
	}
}

func TestRebuilder_FailureKeepsLastGoodReadModel(t *testing.T) {
	old := []model.EmployeeEligibility{
		{EmployeeID: 99, CertificationRuleID: 99, Status: model.StatusActive, Source: model.SourceByJob},
	}
	store := &memoryStore{snap: testSnapshot(), records: old, failReplace: true}
	rb := NewRebuilder(store, nil)
	rb.now = func() time.Time { return date(2025, time.June, 1) }

	err := rb.Rebuild()
	require.Error(t, err)
	assert.Equal(t, old, store.records, "rebuild gagal tidak boleh menyentuh read model lama")
}

func TestRebuilder_ConcurrentRefreshRejected(t *testing.T) {
	store := &memoryStore{
		snap:        testSnapshot(),
		loadStarted: make(chan struct{}),
		loadRelease: make(chan struct{}),
	}
	rb := NewRebuilder(store, nil)
	rb.now = func() time.Time { return date(2025, time.June, 1) }

	done := make(chan error, 1)
	go func() { done <- rb.Rebuild() }()

	<-store.loadStarted // rebuild pertama sedang jalan

	err := rb.Rebuild()
	assert.ErrorIs(t, err, ErrRebuildInProgress)

	close(store.loadRelease)
	require.NoError(t, <-done)
}

func TestRebuilder_NotifiesDueRecords(t *testing.T) {
	snap := testSnapshot()
	// Geser "hari ini" ke jendela reminder rule 1: kadaluarsa 10 Mar 2023,
	// reminder 2 bulan -> DUE mulai 10 Jan 2023
	store := &memoryStore{snap: snap}
	notifier := &dueRecorder{}
	rb := NewRebuilder(store, notifier)
	rb.now = func() time.Time { return date(2023, time.February, 1) }

	require.NoError(t, rb.Rebuild())
	rb.notifyWG.Wait()

	require.Len(t, notifier.due, 1)
	assert.Equal(t, uint(1), notifier.due[0].CertificationRuleID)
	assert.Equal(t, model.StatusDue, notifier.due[0].Status)
}

// Notifier yang macet (SMTP lambat / tidak bisa connect) tidak boleh
// menahan Rebuild: read model sudah terganti, kirim email jalan sendiri.
type stuckNotifier struct {
	release chan struct{}
}

func (n *stuckNotifier) NotifyDue([]model.EmployeeEligibility) { <-n.release }

func TestRebuilder_SlowNotifierDoesNotBlockRebuild(t *testing.T) {
	store := &memoryStore{snap: testSnapshot()}
	notifier := &stuckNotifier{release: make(chan struct{})}
	rb := NewRebuilder(store, notifier)
	rb.now = func() time.Time { return date(2023, time.February, 1) }

	done := make(chan error, 1)
	go func() { done <- rb.Rebuild() }()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.NotEmpty(t, store.records, "read model harus sudah terganti walau email belum terkirim")
	case <-time.After(2 * time.Second):
		t.Fatal("Rebuild menunggu notifier selesai, harusnya langsung balik")
	}

	close(notifier.release)
	rb.notifyWG.Wait()
}

func TestFilter_CombinedDimensions(t *testing.T) {
	store := &memoryStore{snap: testSnapshot()}
	rb := NewRebuilder(store, nil)
	rb.now = func() time.Time { return date(2025, time.June, 1) }
	require.NoError(t, rb.Rebuild())

	t.Run("AND antar dimensi", func(t *testing.T) {
		got := store.query(Filter{
			Statuses: []model.EligibilityStatus{model.StatusExpired},
			Sources:  []model.EligibilitySource{model.SourceByJob},
		})
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].CertificationRuleID)
	})

	t.Run("IN di dalam satu dimensi", func(t *testing.T) {
		got := store.query(Filter{
			Statuses: []model.EligibilityStatus{model.StatusExpired, model.StatusNotYetCertified},
		})
		assert.Len(t, got, 2)
	})

	t.Run("kombinasi tanpa hasil", func(t *testing.T) {
		got := store.query(Filter{
			Statuses: []model.EligibilityStatus{model.StatusExpired},
			Sources:  []model.EligibilitySource{model.SourceByName},
		})
		assert.Empty(t, got)
	})

	t.Run("search NIP", func(t *testing.T) {
		got := store.query(Filter{Search: "19900101"})
		require.Len(t, got, 2)
		for _, rec := range got {
			assert.Equal(t, uint(1), rec.EmployeeID)
		}
	})

	t.Run("filter kode sertifikasi", func(t *testing.T) {
		got := store.query(Filter{CertCodes: []string{"AAJI"}})
		require.Len(t, got, 1)
		assert.Equal(t, uint(2), got[0].CertificationRuleID)
	})
}
