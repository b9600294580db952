// Package services contains the application use cases that sit between the
// CLI and the history, storage and upload layers.
//
// UploadService enforces the client id requirement, sends images to the
// configured provider and records successful uploads. SettingsService
// validates and persists user preferences.
package services
