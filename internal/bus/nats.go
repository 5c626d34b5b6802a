// Package bus publishes console events to NATS so downstream consumers
// (alerting, audit) can react to uploads and snapshot refreshes. Publishing
// is optional: a nil Publisher drops events silently.
package bus

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
)

// Subjects emitted by the console.
const (
	SubjectReportUploaded    = "reports.uploaded"
	SubjectSnapshotRefreshed = "reports.snapshot.refreshed"
)

type Publisher struct {
	Conn *nats.Conn
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{Conn: conn}, nil
}

func (p *Publisher) Close() {
	if p == nil || p.Conn == nil {
		return
	}
	p.Conn.Drain()
	p.Conn.Close()
}

func (p *Publisher) Publish(subject string, payload any) error {
	if p == nil || p.Conn == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return p.Conn.Publish(subject, data)
}
