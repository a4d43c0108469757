// Package timezone provides timezone utilities for the console.
//
// Usage Examples:
//
//  1. Initialization from configuration:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Basic usage:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  3. Formatting and parsing:
//     formatted := timezone.Format(time.Now(), "2006-01-02 15:04:05")
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Asia/Jakarta", "America/New_York", "Europe/London"
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// Until Init is called every helper works in UTC.
package timezone
