package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"lawncare/internal/repository"
)

const (
	bookingsSheetName = "Bookings"
	contactsSheetName = "Contacts"
)

// Exporter mirrors the full bookings and contacts tables into a Google
// spreadsheet. Each export clears the sheet and rewrites it, so repeated runs
// are idempotent and a missed run loses nothing.
type Exporter struct {
	store         repository.Store
	svc           *sheets.Service
	spreadsheetID string
	log           *zap.Logger
}

var _ Channel = (*Exporter)(nil)

// NewExporter returns a working exporter, or an unconfigured one (every call
// logs and skips) when the spreadsheet id or credentials are absent.
func NewExporter(ctx context.Context, store repository.Store, spreadsheetID, credentialsFile string, log *zap.Logger) (*Exporter, error) {
	e := &Exporter{store: store, spreadsheetID: spreadsheetID, log: log}
	if spreadsheetID == "" || credentialsFile == "" {
		log.Warn("google sheets not configured, exports disabled")
		return e, nil
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	e.svc = svc
	return e, nil
}

func (e *Exporter) Configured() bool { return e.svc != nil }

func (e *Exporter) Name() string { return "sheets" }

// Send keeps the spreadsheet current as bookings and contacts arrive.
func (e *Exporter) Send(ctx context.Context, ev Event) error {
	switch ev.Type {
	case TypeBookingCreated:
		return e.ExportBookings(ctx)
	case TypeContactCreated:
		return e.ExportContacts(ctx)
	}
	return fmt.Errorf("unknown event type %q", ev.Type)
}

func (e *Exporter) ExportAll(ctx context.Context) error {
	if err := e.ExportBookings(ctx); err != nil {
		return err
	}
	return e.ExportContacts(ctx)
}

func (e *Exporter) ExportBookings(ctx context.Context) error {
	if e.svc == nil {
		e.log.Info("sheets export skipped, not configured")
		return nil
	}

	bookings, err := e.store.ListBookings(ctx)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}

	rows := [][]interface{}{{
		"ID", "Date Created", "Customer Name", "Email", "Phone",
		"Address", "Service Type", "Subscription", "Property Size (acres)",
		"Special Requests", "Price", "Status", "Payment ID", "Paid",
	}}
	for _, b := range bookings {
		paymentID := ""
		if b.PaymentID != nil {
			paymentID = *b.PaymentID
		}
		paid := "No"
		if b.Paid {
			paid = "Yes"
		}
		rows = append(rows, []interface{}{
			b.ID,
			b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			b.Name,
			b.Email,
			b.Phone,
			b.Address,
			string(b.ServiceType),
			string(b.SubscriptionType),
			b.PropertySize.String(),
			b.SpecialRequests,
			b.Price.StringFixed(2),
			string(b.Status),
			paymentID,
			paid,
		})
	}

	if err := e.writeSheet(ctx, bookingsSheetName, rows); err != nil {
		return err
	}
	e.log.Info("exported bookings to sheets", zap.Int("count", len(bookings)))
	return nil
}

func (e *Exporter) ExportContacts(ctx context.Context) error {
	if e.svc == nil {
		e.log.Info("sheets export skipped, not configured")
		return nil
	}

	contacts, err := e.store.ListContacts(ctx)
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	rows := [][]interface{}{{
		"ID", "Date Created", "Name", "Email", "Phone",
		"Service Interest", "Address", "Message",
	}}
	for _, c := range contacts {
		rows = append(rows, []interface{}{
			c.ID,
			c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			c.Name,
			c.Email,
			strOrEmpty(c.Phone),
			strOrEmpty(c.Service),
			strOrEmpty(c.Address),
			c.Message,
		})
	}

	if err := e.writeSheet(ctx, contactsSheetName, rows); err != nil {
		return err
	}
	e.log.Info("exported contacts to sheets", zap.Int("count", len(contacts)))
	return nil
}

func (e *Exporter) writeSheet(ctx context.Context, sheetName string, rows [][]interface{}) error {
	_, err := e.svc.Spreadsheets.Values.
		Clear(e.spreadsheetID, sheetName+"!A:Z", &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", sheetName, err)
	}

	_, err = e.svc.Spreadsheets.Values.
		Update(e.spreadsheetID, sheetName+"!A1", &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", sheetName, err)
	}
	return nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
