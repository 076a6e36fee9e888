package mailer

import (
	"fmt"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"certification-backend/config"
	"certification-backend/internal/model"
)

// Mailer mengirim notifikasi via SMTP. Kalau SMTP_HOST kosong, semua kirim
// jadi no-op supaya lingkungan dev tanpa mail server tetap jalan.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host:     config.GetEnv("SMTP_HOST", ""),
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USERNAME", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "no-reply@certification.local"),
	}
}

func (m *Mailer) Enabled() bool { return m.host != "" }

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

// NotifyDue mengimplementasikan eligibility.Notifier: satu email per pegawai
// berisi daftar sertifikasi yang masuk jendela reminder. Gagal kirim hanya
// dicatat di log, tidak menggagalkan rebuild.
func (m *Mailer) NotifyDue(records []model.EmployeeEligibility) {
	if !m.Enabled() {
		return
	}

	byEmployee := make(map[uint][]model.EmployeeEligibility)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	for _, rows := range byEmployee {
		emp := rows[0].Employee
		if emp.Email == "" {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Halo %s,\n\nSertifikasi berikut akan segera kadaluarsa:\n\n", emp.Name)
		for _, rec := range rows {
			name := rec.CertificationRule.Certification.Name
			if rec.DueDate != nil {
				fmt.Fprintf(&b, "- %s (batas: %s)\n", name, rec.DueDate.Format("02 Jan 2006"))
			} else {
				fmt.Fprintf(&b, "- %s\n", name)
			}
		}
		b.WriteString("\nSegera jadwalkan refreshment sebelum batas waktu.\n")

		if err := m.send(emp.Email, "Pengingat Sertifikasi Akan Kadaluarsa", b.String()); err != nil {
			log.Printf("mailer: gagal kirim reminder ke %s: %v", emp.Email, err)
		}
	}
}

// SendPasswordReset mengirim password sementara untuk alur forgot-password.
func (m *Mailer) SendPasswordReset(email, tempPassword string) error {
	if !m.Enabled() {
		return fmt.Errorf("SMTP belum dikonfigurasi")
	}
	body := fmt.Sprintf(
		"Password akun Anda sudah direset.\n\nPassword sementara: %s\n\nSegera login dan ganti password.\n",
		tempPassword,
	)
	return m.send(email, "Reset Password Portal Sertifikasi", body)
}
