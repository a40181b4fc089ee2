// Package domain contains the core entities shared across the application:
// incidents pulled from the alert feed, their lifecycle status, geographic
// points, and operator identities. The types are free of infrastructure
// concerns so every layer can depend on them.
package domain
