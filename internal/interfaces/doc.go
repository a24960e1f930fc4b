// Package interfaces documents the core abstractions used throughout the application.
//
// Interfaces are declared by the package that consumes them, so the same
// concrete type often satisfies several small interfaces.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - services.HistoryStore: excluded words, recording a batch, statistics (internal/services/interfaces.go)
//   - http.HistoryStore: listing, info, cleanup and reset (internal/http/stores.go)
//   - tasks.HistoryCleaner: retention cleanup (internal/tasks/cleanup_sent_words.go)
//   - services.DeliverySettingsStore / http.DeliverySettingsStore: effective settings and last-run status
//
// All history interfaces are implemented by *database.Database; the settings
// interfaces by *settingsstore.SettingsStore.
//
// ## External Service Interfaces
//
//   - dictionary.Client: word lookups (internal/dictionary/client.go)
//   - emailer.Sender: SMTP and SendGrid delivery (internal/emailer/emailer.go)
//
// ## Pipeline Interfaces
//
//   - services.WordSelector: implemented by *selector.Selector
//   - scheduler.DeliveryRunner / tasks.DeliveryRunner: implemented by *services.DeliveryService
//
// # Adding a New Email Backend
//
//  1. Implement Sender in internal/emailer/
//
//     type MailgunSender struct {
//         client *resty.Client
//     }
//
//     func (s *MailgunSender) Send(ctx context.Context, msg Message) error
//     func (s *MailgunSender) TestConnection(ctx context.Context) error
//     func (s *MailgunSender) Name() string
//
//  2. Select it in emailer.NewSender
//
//  3. Add a compile-time check to checks.go
//
// # Adding a New Dictionary Provider
//
//  1. Implement Client in internal/dictionary/
//
//     func (c *WordnikClient) Lookup(ctx context.Context, word string) (*LookupResult, error)
//     func (c *WordnikClient) Name() string
//
//     var _ Client = (*WordnikClient)(nil)
//
//  2. Pass it to selector.New in entrypoint/app.go
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
