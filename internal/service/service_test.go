package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/TanujDonkal/RavidassiaAbroad-sub000/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.ConnectSubmission{},
		&model.MatrimonialProfile{},
		&model.BlogCategory{},
		&model.BlogPost{},
		&model.Comment{},
		&model.NotificationRecipient{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

type sentMail struct {
	To      []string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (m *fakeMailer) lastMail() *sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return nil
	}
	last := m.sent[len(m.sent)-1]
	return &last
}

// fakeNotifier records subjects on a channel, callers fire it from
// goroutines.
type fakeNotifier struct {
	subjects chan string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{subjects: make(chan string, 16)}
}

func (n *fakeNotifier) Notify(ctx context.Context, subject, htmlBody string) {
	n.subjects <- subject
}

func (n *fakeNotifier) waitForNotification(t *testing.T) string {
	t.Helper()
	select {
	case subject := <-n.subjects:
		return subject
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return ""
	}
}

func (n *fakeNotifier) assertNoNotification(t *testing.T) {
	t.Helper()
	select {
	case subject := <-n.subjects:
		t.Fatalf("unexpected notification: %s", subject)
	case <-time.After(100 * time.Millisecond):
	}
}

type fakeImageStorage struct {
	mu       sync.Mutex
	uploads  int
	deleted  []string
}

func (s *fakeImageStorage) UploadImage(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads++
	return fmt.Sprintf("https://images.test/%s/%d-%s", folder, s.uploads, fileName), nil
}

func (s *fakeImageStorage) DeleteImage(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func (s *fakeImageStorage) deletedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}
