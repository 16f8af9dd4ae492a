package bootstrap

import "context"

// AuditLog is one operational audit event. Distinct from the tender history
// ledger: audit events are operator-facing and carry no durability guarantee.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

//go:generate mockgen -source=audit.go -destination=mock/audit_mock.go -package=mock
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
