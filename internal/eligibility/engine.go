package eligibility

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"certification-backend/internal/model"
)

// ErrRebuildInProgress dikembalikan saat refresh dipanggil padahal rebuild
// lain masih jalan. Handler memetakan ini ke 409, bukan 500, supaya UI bisa
// bilang "sedang refresh" dan bukan "gagal".
var ErrRebuildInProgress = errors.New("rebuild eligibility sedang berjalan")

// CertKey mengidentifikasi pasangan (employee, rule).
type CertKey struct {
	EmployeeID          uint
	CertificationRuleID uint
}

// Snapshot adalah potret seluruh input engine pada satu titik waktu.
// Compute murni terhadap snapshot ini, tidak menyentuh DB.
type Snapshot struct {
	Employees            []model.Employee
	MappingsByJob        map[uint][]model.JobCertificationMapping
	ExceptionsByEmployee map[uint][]model.EmployeeCertificationException
	Certifications       map[CertKey][]model.EmployeeCertification
}

// Store memuat snapshot input dan mengganti seluruh read model secara atomik.
// Implementasi produksi ada di repository (GORM); test memakai store memori.
type Store interface {
	LoadSnapshot() (*Snapshot, error)
	ReplaceAll(records []model.EmployeeEligibility) error
}

// Notifier dipanggil setelah rebuild sukses dengan baris berstatus DUE.
type Notifier interface {
	NotifyDue(records []model.EmployeeEligibility)
}

const computeWorkers = 8

// Compute menghasilkan read model lengkap dari snapshot: resolve kewajiban
// per pegawai lalu derive status per rule. Murni dan deterministik: input
// sama selalu menghasilkan baris yang sama dengan urutan yang sama.
func Compute(snap *Snapshot, today time.Time) []model.EmployeeEligibility {
	perEmployee := make([][]model.EmployeeEligibility, len(snap.Employees))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < computeWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perEmployee[i] = computeEmployee(snap, snap.Employees[i], today)
			}
		}()
	}
	for i := range snap.Employees {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var records []model.EmployeeEligibility
	for _, rows := range perEmployee {
		records = append(records, rows...)
	}
	return records
}

func computeEmployee(snap *Snapshot, emp model.Employee, today time.Time) []model.EmployeeEligibility {
	var mappings []model.JobCertificationMapping
	if emp.JobPositionID != nil {
		mappings = snap.MappingsByJob[*emp.JobPositionID]
	}
	exceptions := snap.ExceptionsByEmployee[emp.ID]

	applicable := ResolveApplicable(mappings, exceptions)
	if len(applicable) == 0 {
		return nil
	}

	rows := make([]model.EmployeeEligibility, 0, len(applicable))
	for _, ar := range applicable {
		certs := snap.Certifications[CertKey{EmployeeID: emp.ID, CertificationRuleID: ar.Rule.ID}]
		status, dueDate := Derive(ar.Rule, emp, certs, today)

		rows = append(rows, model.EmployeeEligibility{
			EmployeeID:          emp.ID,
			CertificationRuleID: ar.Rule.ID,
			Status:              status,
			Source:              ar.Source,
			DueDate:             dueDate,
			ValidityMonths:      ar.Rule.ValidityMonths,
			ReminderMonths:      ar.Rule.ReminderMonths,
			WajibSetelahMasuk:   ar.Rule.WajibSetelahMasuk,
			IsActive:            true,
			Employee:            emp,
			CertificationRule:   ar.Rule,
		})
	}
	return rows
}

// Rebuilder adalah entry point "Refresh Eligibility": load snapshot, hitung
// ulang semuanya, lalu ganti read model sekali jalan. Hanya satu rebuild
// boleh jalan pada satu waktu.
type Rebuilder struct {
	store    Store
	notifier Notifier
	now      func() time.Time
	running  atomic.Bool
	notifyWG sync.WaitGroup
}

func NewRebuilder(store Store, notifier Notifier) *Rebuilder {
	return &Rebuilder{store: store, notifier: notifier, now: time.Now}
}

// Rebuild menghitung ulang seluruh EmployeeEligibility. Gagal di tengah
// berarti read model lama tetap utuh (ReplaceAll transaksional, all-or-nothing).
func (r *Rebuilder) Rebuild() error {
	if !r.running.CompareAndSwap(false, true) {
		return ErrRebuildInProgress
	}
	defer r.running.Store(false)

	snap, err := r.store.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load snapshot eligibility: %w", err)
	}

	records := Compute(snap, r.now())

	if err := r.store.ReplaceAll(records); err != nil {
		return fmt.Errorf("replace read model eligibility: %w", err)
	}

	if r.notifier != nil {
		var due []model.EmployeeEligibility
		for _, rec := range records {
			if rec.Status == model.StatusDue {
				due = append(due, rec)
			}
		}
		if len(due) > 0 {
			// Kirim di goroutine: gagal/lambatnya SMTP tidak boleh
			// menahan response refresh, read model sudah terganti.
			r.notifyWG.Add(1)
			go func() {
				defer r.notifyWG.Done()
				r.notifier.NotifyDue(due)
			}()
		}
	}
	return nil
}
