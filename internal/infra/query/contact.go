package query

import (
	"context"

	"github.com/google/uuid"
)

const createContactMessage = `
INSERT INTO contact_messages (name, email, subject, body)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (q *Queries) CreateContactMessage(ctx context.Context, db DBTX, arg CreateContactMessageParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createContactMessage, arg.Name, arg.Email, arg.Subject, arg.Body)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const createNotificationJob = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}
