package model

// Notification is a message for a user, written by the booking event
// consumer into the `notifications` table and read back through the
// API.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user the message is addressed to.
//  Message   – human-readable notification text.
//  CreatedAt – when the consumer wrote the row.
type Notification struct {
    ID        uint64 // notifications.notification_id
    UserID    uint64 // notifications.user_id
    Message   string // notifications.message
    CreatedAt string // notifications.created_at
}
