package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"portfolio/models"
)

type fakeContactStore struct {
	contacts []models.Contact
}

func (s *fakeContactStore) Create(contact *models.Contact) error { return nil }

func (s *fakeContactStore) All() ([]models.Contact, error) { return s.contacts, nil }

type fakeSubscriberStore struct {
	subscribers []models.Subscriber
}

func (s *fakeSubscriberStore) Subscribe(email string, now time.Time) (*models.Subscriber, bool, error) {
	return nil, false, nil
}

func (s *fakeSubscriberStore) All() ([]models.Subscriber, error) { return s.subscribers, nil }

func testStores() (*fakeContactStore, *fakeSubscriberStore) {
	contacts := &fakeContactStore{contacts: []models.Contact{
		{
			ID:        1,
			Name:      "Sita Sharma",
			Email:     "sita@example.com",
			Message:   "Hello",
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	subscribers := &fakeSubscriberStore{subscribers: []models.Subscriber{
		{ID: 1, Email: "reader@example.com", SubscribedAt: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)},
	}}
	return contacts, subscribers
}

func TestJSONExport(t *testing.T) {
	contacts, subscribers := testStores()
	var out bytes.Buffer

	command := NewJSONExportCommand(contacts, subscribers, &out)
	if err := command.Execute(); err != nil {
		t.Fatalf("Execute err: %v", err)
	}

	var doc ExportDocument
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}

	if len(doc.Contacts) != 1 || len(doc.Subscribers) != 1 {
		t.Fatalf("unexpected document sizes: %d contacts, %d subscribers", len(doc.Contacts), len(doc.Subscribers))
	}
	if doc.Contacts[0].CreatedAt != "2025-06-01T12:00:00Z" {
		t.Fatalf("contact created_at = %q, want 2025-06-01T12:00:00Z", doc.Contacts[0].CreatedAt)
	}
	if doc.Subscribers[0].SubscribedAt != "2025-06-02T09:30:00Z" {
		t.Fatalf("subscriber subscribed_at = %q, want 2025-06-02T09:30:00Z", doc.Subscribers[0].SubscribedAt)
	}
}

func TestCSVExport(t *testing.T) {
	contacts, subscribers := testStores()
	var out bytes.Buffer

	command := NewCSVExportCommand(contacts, subscribers, &out)
	if err := command.Execute(); err != nil {
		t.Fatalf("Execute err: %v", err)
	}

	reader := csv.NewReader(&out)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	// hai bảng: header + 1 dòng mỗi bảng
	if len(records) != 4 {
		t.Fatalf("expected 4 csv records, got %d", len(records))
	}
	if records[0][0] != "name" {
		t.Fatalf("first header = %v, want contact header", records[0])
	}
	if records[1][1] != "sita@example.com" {
		t.Fatalf("contact row = %v", records[1])
	}
	if records[3][0] != "reader@example.com" {
		t.Fatalf("subscriber row = %v", records[3])
	}
}
