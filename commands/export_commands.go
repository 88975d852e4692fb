package commands

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log"
	"time"

	"portfolio/models"
	"portfolio/services"
)

// ExportCommand định nghĩa interface cho các command xuất dữ liệu
type ExportCommand interface {
	Execute() error
}

// ExportContact là một liên hệ trong tài liệu xuất
type ExportContact struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// ExportSubscriber là một người đăng ký trong tài liệu xuất
type ExportSubscriber struct {
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
}

// ExportDocument gom toàn bộ liên hệ và người đăng ký thành một tài liệu
type ExportDocument struct {
	Contacts    []ExportContact    `json:"contacts"`
	Subscribers []ExportSubscriber `json:"subscribers"`
}

// BuildExportDocument dựng tài liệu xuất với timestamp dạng ISO-8601
func BuildExportDocument(contacts []models.Contact, subscribers []models.Subscriber) ExportDocument {
	doc := ExportDocument{
		Contacts:    make([]ExportContact, 0, len(contacts)),
		Subscribers: make([]ExportSubscriber, 0, len(subscribers)),
	}

	for _, contact := range contacts {
		doc.Contacts = append(doc.Contacts, ExportContact{
			Name:      contact.Name,
			Email:     contact.Email,
			Message:   contact.Message,
			CreatedAt: contact.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	for _, subscriber := range subscribers {
		doc.Subscribers = append(doc.Subscribers, ExportSubscriber{
			Email:        subscriber.Email,
			SubscribedAt: subscriber.SubscribedAt.UTC().Format(time.RFC3339),
		})
	}

	return doc
}

// JSONExportCommand command xuất dữ liệu dạng JSON
type JSONExportCommand struct {
	contacts    services.ContactStore
	subscribers services.SubscriberStore
	out         io.Writer
}

func NewJSONExportCommand(contacts services.ContactStore, subscribers services.SubscriberStore, out io.Writer) *JSONExportCommand {
	return &JSONExportCommand{
		contacts:    contacts,
		subscribers: subscribers,
		out:         out,
	}
}

func (c *JSONExportCommand) Execute() error {
	contacts, err := c.contacts.All()
	if err != nil {
		return err
	}
	subscribers, err := c.subscribers.All()
	if err != nil {
		return err
	}

	doc := BuildExportDocument(contacts, subscribers)
	encoder := json.NewEncoder(c.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}

	log.Printf("Exported %d contacts and %d subscribers", len(contacts), len(subscribers))
	return nil
}

// CSVExportCommand command xuất dữ liệu dạng CSV, hai bảng nối tiếp nhau
type CSVExportCommand struct {
	contacts    services.ContactStore
	subscribers services.SubscriberStore
	out         io.Writer
}

func NewCSVExportCommand(contacts services.ContactStore, subscribers services.SubscriberStore, out io.Writer) *CSVExportCommand {
	return &CSVExportCommand{
		contacts:    contacts,
		subscribers: subscribers,
		out:         out,
	}
}

func (c *CSVExportCommand) Execute() error {
	contacts, err := c.contacts.All()
	if err != nil {
		return err
	}
	subscribers, err := c.subscribers.All()
	if err != nil {
		return err
	}

	doc := BuildExportDocument(contacts, subscribers)
	writer := csv.NewWriter(c.out)

	if err := writer.Write([]string{"name", "email", "message", "created_at"}); err != nil {
		return err
	}
	for _, contact := range doc.Contacts {
		if err := writer.Write([]string{contact.Name, contact.Email, contact.Message, contact.CreatedAt}); err != nil {
			return err
		}
	}

	if err := writer.Write([]string{"email", "subscribed_at"}); err != nil {
		return err
	}
	for _, subscriber := range doc.Subscribers {
		if err := writer.Write([]string{subscriber.Email, subscriber.SubscribedAt}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	log.Printf("Exported %d contacts and %d subscribers", len(contacts), len(subscribers))
	return nil
}
